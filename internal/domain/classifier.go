package domain

import (
	"slices"
	"strings"

	m "github.com/maxport/maxcensus/internal/model"
)

// Classifier assigns effective keys to at most one category bucket.
type Classifier struct {
	tables m.Tables
}

// NewClassifier creates a Classifier backed by the given tables.
func NewClassifier(tables m.Tables) Classifier {
	return Classifier{tables: tables}
}

// Classify returns the category for key. Rule order is fixed: multichannel
// prefix, namespaced prefix, audio-I/O set, spatial set, routing set. The
// first matching rule wins; keys matching no rule report ok == false.
func (c Classifier) Classify(key string) (m.Category, bool) {
	switch {
	case c.tables.MultichannelPrefix != "" && strings.HasPrefix(key, c.tables.MultichannelPrefix):
		return m.CategoryMultichannel, true
	case c.tables.NamespacedPrefix != "" && strings.HasPrefix(key, c.tables.NamespacedPrefix):
		return m.CategoryNamespaced, true
	case slices.Contains(c.tables.AudioIO, key):
		return m.CategoryAudioIO, true
	case slices.Contains(c.tables.Spatial, key):
		return m.CategorySpatial, true
	case slices.Contains(c.tables.Routing, key):
		return m.CategoryRouting, true
	}

	return "", false
}
