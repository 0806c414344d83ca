package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/maxport/maxcensus/internal/model"
)

const (
	topObjectLimit    = 20
	exampleGroupLimit = 10
)

type keyCount struct {
	key   string
	count int
}

// topObjects returns the n highest counts, descending, ties broken by key
// ascending so the rendering is stable across runs.
func topObjects(counts map[string]int, n int) []keyCount {
	entries := make([]keyCount, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, keyCount{key: key, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}

		return entries[i].key < entries[j].key
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// RenderMappingReport produces the narrative object-usage report.
func RenderMappingReport(sum m.Summary, idx m.NodeIndex) string {
	var b strings.Builder

	b.WriteString("# Max MSP to SuperCollider Object Mapping Analysis\n\n")
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total patches analyzed: %d\n", sum.TotalPatches)
	fmt.Fprintf(&b, "- Unique object types: %d\n\n", sum.UniqueObjects)

	b.WriteString("## Most Used Objects\n\n")

	for i, entry := range topObjects(sum.ObjectCounts, topObjectLimit) {
		fmt.Fprintf(&b, "%d. `%s`: %d instances\n", i+1, entry.key, entry.count)
	}

	b.WriteString("\n## Spatial Audio Objects\n\n")

	if len(sum.NamespacedObjects) > 0 {
		b.WriteString("### SPAT5 Objects\n")
		writeBucket(&b, sum.NamespacedObjects, idx)
	}

	if len(sum.SpatialObjects) > 0 {
		b.WriteString("\n### Native Spatial Objects\n")
		writeBucket(&b, sum.SpatialObjects, nil)
	}

	b.WriteString("\n## Multichannel Objects\n\n")
	writeBucket(&b, sum.MultichannelObjects, nil)

	b.WriteString("\n## Audio I/O Objects\n\n")
	writeBucket(&b, sum.AudioIOObjects, nil)

	b.WriteString("\n## Routing Objects\n\n")
	writeBucket(&b, sum.RoutingObjects, nil)

	return b.String()
}

// writeBucket lists a category's keys in lexicographic order. When idx is
// provided, the first instance, when it carries args, contributes an
// example line.
func writeBucket(b *strings.Builder, bucket map[string]int, idx m.NodeIndex) {
	for _, key := range sortedKeys(bucket) {
		fmt.Fprintf(b, "- `%s`: %d instances\n", key, bucket[key])

		if idx == nil {
			continue
		}

		if instances := idx[key]; len(instances) > 0 && instances[0].Args != "" {
			fmt.Fprintf(b, "  - Example: `%s %s`\n", key, instances[0].Args)
		}
	}
}

// RenderNamespaceReport produces the narrative namespace report. Top-level
// entries are the directly observed two-segment prefixes, visited in
// lexicographic order; deeper prefixes are grouped under them by their third
// segment, listing up to ten per group.
func RenderNamespaceReport(ns m.NamespaceIndex) string {
	var b strings.Builder

	b.WriteString("# OSC Namespace Analysis\n\n")

	var topLevel []string
	for prefix := range ns {
		if m.SegmentCount(prefix) == 2 {
			topLevel = append(topLevel, prefix)
		}
	}

	sort.Strings(topLevel)

	for _, top := range topLevel {
		fmt.Fprintf(&b, "## %s\n\n", top)

		groups := make(map[string][]string)

		for prefix := range ns {
			if !strings.HasPrefix(prefix, top+"/") {
				continue
			}

			segments := strings.Split(strings.TrimPrefix(prefix, "/"), "/")
			if len(segments) < 3 {
				continue
			}

			groups[segments[2]] = append(groups[segments[2]], prefix)
		}

		for _, group := range sortedKeys(groups) {
			fmt.Fprintf(&b, "### %s\n", group)

			paths := groups[group]
			sort.Strings(paths)

			limit := len(paths)
			if limit > exampleGroupLimit {
				limit = exampleGroupLimit
			}

			for _, path := range paths[:limit] {
				fmt.Fprintf(&b, "- `%s`\n", path)
			}

			if len(paths) > limit {
				fmt.Fprintf(&b, "- ... (+%d more)\n", len(paths)-limit)
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}
