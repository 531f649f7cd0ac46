package model

import (
	"github.com/breachwatch/breachtrends/pkg/domain/types"
)

// categoryColors is the fixed category to color mapping. It is identical
// across every chart view so that a category keeps its color when the
// reader switches presentations.
var categoryColors = map[types.Category]string{
	types.CategoryNetworkServer:   "#1f77b4",
	types.CategoryEmail:           "#ff7f0e",
	types.CategoryEMR:             "#2ca02c",
	types.CategoryPaperFilms:      "#d62728",
	types.CategoryOther:           "#7f7f7f",
	types.CategoryDesktopComputer: "#9467bd",
}

// ColorOf returns the fixed color for a category
func ColorOf(category types.Category) string {
	return categoryColors[category]
}
