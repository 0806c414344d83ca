package domain

import (
	m "github.com/maxport/maxcensus/internal/model"
)

// Summarize computes frequency counts and category buckets for the index.
// patchCount is the number of documents that contributed to idx. Each key
// lands in at most one bucket, decided by the classifier's rule order.
func Summarize(idx m.NodeIndex, patchCount int, classifier Classifier) m.Summary {
	sum := m.NewSummary()
	sum.TotalPatches = patchCount
	sum.UniqueObjects = len(idx)

	for key, nodes := range idx {
		sum.ObjectCounts[key] = len(nodes)

		if category, ok := classifier.Classify(key); ok {
			sum.Bucket(category)[key] = len(nodes)
		}
	}

	return sum
}

// SampleInstances caps the index at limit instances per key and strips the
// source-file field, producing the shape persisted as the instance dump.
func SampleInstances(idx m.NodeIndex, limit int) map[string][]m.Node {
	out := make(map[string][]m.Node, len(idx))

	for key, nodes := range idx {
		n := len(nodes)
		if n > limit {
			n = limit
		}

		samples := make([]m.Node, n)
		copy(samples, nodes[:n])

		for i := range samples {
			samples[i].SourceFile = ""
		}

		out[key] = samples
	}

	return out
}
