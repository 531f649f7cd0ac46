package model

import (
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ChartKind represents the base chart rendering type
type ChartKind string

const (
	ChartKindLine ChartKind = "line"
	ChartKindArea ChartKind = "area"
	ChartKindBar  ChartKind = "bar"
)

// Series describes one plotted series: the data key it reads from each row,
// its display name and its fixed color
type Series struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Row is one ordered data point. Label is the x-axis value (a year or a
// category name) and Values maps series keys to numeric values. Color is set
// only on category-axis charts, where each row carries its category's fixed
// color instead of the series doing so.
type Row struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
	Color  string             `json:"color,omitempty"`
}

// ChartConfig is the declarative chart description handed to a rendering
// primitive: chart kind, axis bindings, series with colors, and data rows.
type ChartConfig struct {
	View    types.ViewID `json:"view"`
	Title   string       `json:"title"`
	Kind    ChartKind    `json:"kind"`
	Stacked bool         `json:"stacked,omitempty"`
	XKey    string       `json:"xKey"`
	YLabel  string       `json:"yLabel"`
	Series  []Series     `json:"series"`
	Rows    []Row        `json:"rows"`
}

// Validate validates the chart configuration
func (c *ChartConfig) Validate() error {
	if !c.View.IsValid() {
		return goerr.New("invalid view", goerr.V("view", c.View))
	}
	if len(c.Series) == 0 {
		return goerr.New("chart has no series", goerr.V("view", c.View))
	}
	if len(c.Rows) == 0 {
		return goerr.New("chart has no rows", goerr.V("view", c.View))
	}
	if c.XKey == "" {
		return goerr.New("chart has no x-axis key", goerr.V("view", c.View))
	}
	for _, s := range c.Series {
		if s.Key == "" || s.Color == "" {
			return goerr.New("series is missing key or color",
				goerr.V("view", c.View),
				goerr.V("series", s.Name))
		}
	}
	return nil
}
