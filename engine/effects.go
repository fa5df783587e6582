package engine

import "github.com/lixenwraith/techfolio/parameter"

// Effects toggles each entity collection; disabled collections are neither updated nor drawn
type Effects struct {
	Nodes    bool `koanf:"nodes" yaml:"nodes"`
	Rain     bool `koanf:"rain" yaml:"rain"`
	Snippets bool `koanf:"snippets" yaml:"snippets"`
	Grid     bool `koanf:"grid" yaml:"grid"`
	Pulses   bool `koanf:"pulses" yaml:"pulses"`
}

// DefaultEffects enables the network and ring effects only
func DefaultEffects() Effects {
	return Effects{Nodes: true, Pulses: true}
}

// Population sets the size of each collection
type Population struct {
	Nodes     int `koanf:"nodes" yaml:"nodes"`
	Rain      int `koanf:"rain" yaml:"rain"`
	Snippets  int `koanf:"snippets" yaml:"snippets"`
	GridPairs int `koanf:"grid_pairs" yaml:"grid_pairs"`
	Pulses    int `koanf:"pulses" yaml:"pulses"`
}

// DefaultPopulation returns the stock collection sizes
func DefaultPopulation() Population {
	return Population{
		Nodes:     parameter.NodeCount,
		Rain:      parameter.RainCount,
		Snippets:  parameter.SnippetCount,
		GridPairs: parameter.GridLinePairs,
		Pulses:    parameter.PulseCount,
	}
}
