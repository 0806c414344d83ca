package model

// Category labels one classification bucket for an effective key.
type Category string

const (
	// CategoryMultichannel groups keys carrying the multichannel prefix.
	CategoryMultichannel Category = "multichannel"
	// CategoryNamespaced groups keys carrying the namespaced-library prefix.
	CategoryNamespaced Category = "namespaced"
	// CategoryAudioIO groups the fixed audio input/output set.
	CategoryAudioIO Category = "audio_io"
	// CategorySpatial groups the fixed spatial-processing set.
	CategorySpatial Category = "spatial"
	// CategoryRouting groups the fixed routing/switching set.
	CategoryRouting Category = "routing"
)

// Summary holds the aggregate census for one analysis run. The JSON field
// names match the summary artifact consumed by the porting workflow.
type Summary struct {
	TotalPatches  int            `json:"total_patches"`
	UniqueObjects int            `json:"unique_objects"`
	ObjectCounts  map[string]int `json:"object_counts"`

	SpatialObjects      map[string]int `json:"spatial_objects"`
	MultichannelObjects map[string]int `json:"multichannel_objects"`
	NamespacedObjects   map[string]int `json:"spat5_objects"`
	RoutingObjects      map[string]int `json:"routing_objects"`
	AudioIOObjects      map[string]int `json:"audio_io_objects"`
}

// NewSummary creates a Summary with all maps allocated.
func NewSummary() Summary {
	return Summary{
		ObjectCounts:        make(map[string]int),
		SpatialObjects:      make(map[string]int),
		MultichannelObjects: make(map[string]int),
		NamespacedObjects:   make(map[string]int),
		RoutingObjects:      make(map[string]int),
		AudioIOObjects:      make(map[string]int),
	}
}

// Bucket returns the count map backing the given category.
func (s *Summary) Bucket(category Category) map[string]int {
	switch category {
	case CategoryMultichannel:
		return s.MultichannelObjects
	case CategoryNamespaced:
		return s.NamespacedObjects
	case CategoryAudioIO:
		return s.AudioIOObjects
	case CategorySpatial:
		return s.SpatialObjects
	case CategoryRouting:
		return s.RoutingObjects
	}

	return nil
}
