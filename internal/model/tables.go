package model

// Tables is the classification configuration for the census. The specific
// memberships are data, not logic: they ship with defaults matching the
// patch vocabulary but can be overridden from the config file.
type Tables struct {
	// Sentinel is the declared type whose effective key is derived from
	// the first token of the node text.
	Sentinel string `mapstructure:"sentinel" yaml:"sentinel"`

	// MaxDepth bounds sub-document recursion during traversal.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`

	MultichannelPrefix string   `mapstructure:"multichannel_prefix" yaml:"multichannel_prefix"`
	NamespacedPrefix   string   `mapstructure:"namespaced_prefix" yaml:"namespaced_prefix"`
	AudioIO            []string `mapstructure:"audio_io" yaml:"audio_io"`
	Spatial            []string `mapstructure:"spatial" yaml:"spatial"`
	Routing            []string `mapstructure:"routing" yaml:"routing"`
}

// DefaultTables returns the built-in classification tables.
func DefaultTables() Tables {
	return Tables{
		Sentinel:           "newobj",
		MaxDepth:           64,
		MultichannelPrefix: "mc.",
		NamespacedPrefix:   "spat5.",
		AudioIO:            []string{"dac~", "adc~", "ezadc~", "ezdac~", "sfplay~", "sfrecord~"},
		Spatial:            []string{"pan~", "pan2~", "pan4~", "pan8~", "vbap", "hoa."},
		Routing:            []string{"matrix~", "gate~", "selector~", "route", "router"},
	}
}
