package types

// ViewID represents one of the chart presentations of the breach dataset
type ViewID string

const (
	ViewAbsolute            ViewID = "absolute"
	ViewPercentage          ViewID = "percentage"
	ViewStacked             ViewID = "stacked"
	ViewNetworkServerGrowth ViewID = "networkServerGrowth"
	ViewGrowthComparison    ViewID = "growthComparison"
)

// DefaultView is the initial presentation state
const DefaultView = ViewAbsolute

// Views returns all view identifiers in display order
func Views() []ViewID {
	return []ViewID{
		ViewAbsolute,
		ViewPercentage,
		ViewStacked,
		ViewNetworkServerGrowth,
		ViewGrowthComparison,
	}
}

// String returns the string representation of the view
func (v ViewID) String() string {
	return string(v)
}

// IsValid checks if the view is valid
func (v ViewID) IsValid() bool {
	switch v {
	case ViewAbsolute, ViewPercentage, ViewStacked,
		ViewNetworkServerGrowth, ViewGrowthComparison:
		return true
	default:
		return false
	}
}

// Normalize returns the view itself when valid, otherwise the default view.
// The selector is a closed set, so an unknown value is not an error.
func (v ViewID) Normalize() ViewID {
	if v.IsValid() {
		return v
	}
	return DefaultView
}
