package outliner

import "github.com/tsawler/outliner/layout"

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Fraction of the page height clipped from the top and bottom before
	// classification.
	clipMargin float64

	// Fraction of the first page's height searched for the title.
	titleBand float64

	// Number of heading size tiers ranked above the body size.
	maxRankedSizes int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	cfg := layout.DefaultConfig()
	return ExtractOptions{
		clipMargin:     cfg.ClipMargin,
		titleBand:      cfg.TitleBand,
		maxRankedSizes: cfg.MaxRankedSizes,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		clipMargin:     o.clipMargin,
		titleBand:      o.titleBand,
		maxRankedSizes: o.maxRankedSizes,
	}
}

// config converts the options to a layout.Config.
func (o ExtractOptions) config() layout.Config {
	return layout.Config{
		ClipMargin:     o.clipMargin,
		TitleBand:      o.titleBand,
		MaxRankedSizes: o.maxRankedSizes,
	}
}
