package model

import (
	"github.com/breachwatch/breachtrends/pkg/domain/types"
)

// YearPercentages holds each category's share of one year's total, in
// percent to one decimal place
type YearPercentages struct {
	Year   types.Year
	Shares map[types.Category]float64
}

// Share returns the percentage share for a category
func (y *YearPercentages) Share(category types.Category) float64 {
	return y.Shares[category]
}

// GrowthPoint holds the year-over-year percentage growth of one category
// relative to the prior year
type GrowthPoint struct {
	Year   types.Year
	Growth float64
}

// CategoryGrowthRate holds the compound annual growth rate of one category
// over the complete reporting window
type CategoryGrowthRate struct {
	Category types.Category
	CAGR     float64
}
