package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/breachwatch/breachtrends/pkg/domain/interfaces"
	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// xKeyYear is the common x-axis field for every year-indexed view
const xKeyYear = "year"

// xKeyCategory is the x-axis field for the category-indexed comparison view
const xKeyCategory = "category"

// BuildView builds the declarative chart configuration for one view. An
// unknown view ID falls back to the default view without error, since the
// selector is a closed set populated by the same code that reads it.
func (t *Trends) BuildView(view types.ViewID) *model.ChartConfig {
	switch view.Normalize() {
	case types.ViewPercentage:
		return t.buildPercentageView()
	case types.ViewStacked:
		return t.buildStackedView()
	case types.ViewNetworkServerGrowth:
		return t.buildGrowthView()
	case types.ViewGrowthComparison:
		return t.buildComparisonView()
	default:
		return t.buildAbsoluteView()
	}
}

// BuildAllViews builds every view in display order
func (t *Trends) BuildAllViews() []*model.ChartConfig {
	views := types.Views()
	result := make([]*model.ChartConfig, 0, len(views))
	for _, view := range views {
		result = append(result, t.BuildView(view))
	}
	return result
}

func (t *Trends) buildAbsoluteView() *model.ChartConfig {
	rows := make([]model.Row, 0, len(t.dataset.Years))
	for _, row := range t.dataset.Years {
		values := make(map[string]float64, len(row.Counts))
		for _, category := range types.Categories() {
			values[category.String()] = float64(row.Count(category))
		}
		rows = append(rows, model.Row{
			Label:  strconv.Itoa(row.Year.Int()),
			Values: values,
		})
	}

	return &model.ChartConfig{
		View:   types.ViewAbsolute,
		Title:  t.titleFor("Hacking incidents by breach location"),
		Kind:   model.ChartKindLine,
		XKey:   xKeyYear,
		YLabel: "Incidents",
		Series: categorySeries(),
		Rows:   rows,
	}
}

func (t *Trends) buildPercentageView() *model.ChartConfig {
	percentages := t.Percentages()
	rows := make([]model.Row, 0, len(percentages))
	for _, p := range percentages {
		values := make(map[string]float64, len(p.Shares))
		for _, category := range types.Categories() {
			values[category.String()] = p.Share(category)
		}
		rows = append(rows, model.Row{
			Label:  strconv.Itoa(p.Year.Int()),
			Values: values,
		})
	}

	return &model.ChartConfig{
		View:    types.ViewPercentage,
		Title:   t.titleFor("Breach location share of annual incidents"),
		Kind:    model.ChartKindArea,
		Stacked: true,
		XKey:    xKeyYear,
		YLabel:  "Share of incidents (%)",
		Series:  categorySeries(),
		Rows:    rows,
	}
}

func (t *Trends) buildStackedView() *model.ChartConfig {
	base := t.buildAbsoluteView()
	return &model.ChartConfig{
		View:    types.ViewStacked,
		Title:   t.titleFor("Total hacking incidents by breach location"),
		Kind:    model.ChartKindBar,
		Stacked: true,
		XKey:    xKeyYear,
		YLabel:  "Incidents",
		Series:  categorySeries(),
		Rows:    base.Rows,
	}
}

func (t *Trends) buildGrowthView() *model.ChartConfig {
	points := t.NetworkServerGrowth()
	rows := make([]model.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, model.Row{
			Label:  strconv.Itoa(p.Year.Int()),
			Values: map[string]float64{"growth": p.Growth},
		})
	}

	return &model.ChartConfig{
		View:   types.ViewNetworkServerGrowth,
		Title:  "Network Server incidents, year-over-year growth",
		Kind:   model.ChartKindLine,
		XKey:   xKeyYear,
		YLabel: "YoY growth (%)",
		Series: []model.Series{{
			Key:   "growth",
			Name:  types.CategoryNetworkServer.String(),
			Color: model.ColorOf(types.CategoryNetworkServer),
		}},
		Rows: rows,
	}
}

func (t *Trends) buildComparisonView() *model.ChartConfig {
	ranking := t.CAGRRanking()
	rows := make([]model.Row, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, model.Row{
			Label:  r.Category.String(),
			Values: map[string]float64{"cagr": r.CAGR},
			Color:  model.ColorOf(r.Category),
		})
	}

	return &model.ChartConfig{
		View: types.ViewGrowthComparison,
		Title: fmt.Sprintf("Compound annual growth rate by breach location, %d-%d",
			t.dataset.FirstYear().Int(), t.dataset.CutoffYear.Int()),
		Kind:   model.ChartKindBar,
		XKey:   xKeyCategory,
		YLabel: "CAGR (%)",
		Series: []model.Series{{
			Key:  "cagr",
			Name: "CAGR",
			// Per-category colors live on the rows for this view
			Color: model.ColorOf(types.CategoryNetworkServer),
		}},
		Rows: rows,
	}
}

func (t *Trends) titleFor(subject string) string {
	return fmt.Sprintf("%s, %d-%d", subject,
		t.dataset.FirstYear().Int(), t.dataset.LastYear().Int())
}

func categorySeries() []model.Series {
	categories := types.Categories()
	series := make([]model.Series, 0, len(categories))
	for _, category := range categories {
		series = append(series, model.Series{
			Key:   category.String(),
			Name:  category.String(),
			Color: model.ColorOf(category),
		})
	}
	return series
}

// SelectView updates the session's view in the store and returns the chart
// configuration for the newly selected view
func (t *Trends) SelectView(ctx context.Context, store interfaces.SessionStore, id types.SessionID, view types.ViewID) (*model.ChartConfig, error) {
	session, err := store.GetSession(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get view session")
	}

	session.Select(view)
	if err := store.PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save view session")
	}

	return t.BuildView(session.View), nil
}
