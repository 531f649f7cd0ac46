package chart

import (
	"context"
	"encoding/json"
	"log/slog"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// chartFormat is the declarative chart description excelize consumes
type chartFormat struct {
	Type   string        `json:"type"`
	Series []chartSeries `json:"series"`
	Title  chartTitle    `json:"title"`
	Legend chartLegend   `json:"legend"`
}

type chartSeries struct {
	Name       string `json:"name"`
	Categories string `json:"categories"`
	Values     string `json:"values"`
}

type chartTitle struct {
	Name string `json:"name"`
}

type chartLegend struct {
	Position string `json:"position"`
}

// Renderer renders chart configurations into an Excel workbook with native
// charts, one worksheet per view
type Renderer struct{}

// New creates a new Renderer
func New() *Renderer {
	return &Renderer{}
}

// Render writes one worksheet per chart config (data table plus chart) and
// saves the workbook to path
func (r *Renderer) Render(ctx context.Context, configs []*model.ChartConfig, path string) error {
	if len(configs) == 0 {
		return goerr.New("no chart configurations to render")
	}

	logger := ctxlog.From(ctx)
	wb := xlsx.NewFile()

	for i, config := range configs {
		if err := config.Validate(); err != nil {
			return goerr.Wrap(err, "invalid chart configuration")
		}

		sheet := config.View.String()
		if i == 0 {
			wb.SetSheetName(wb.GetSheetName(0), sheet)
		} else {
			wb.NewSheet(sheet)
		}

		if err := r.renderSheet(wb, sheet, config); err != nil {
			return goerr.Wrap(err, "failed to render sheet",
				goerr.V("sheet", sheet))
		}

		logger.Debug("rendered chart sheet",
			slog.String("sheet", sheet),
			slog.Int("rows", len(config.Rows)),
			slog.Int("series", len(config.Series)))
	}

	wb.SetActiveSheet(0)
	if err := wb.SaveAs(path); err != nil {
		return goerr.Wrap(err, "failed to save workbook", goerr.V("path", path))
	}

	logger.Info("chart workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(configs)))
	return nil
}

// renderSheet writes the data table starting at A1 and places the chart to
// the right of it
func (r *Renderer) renderSheet(wb *xlsx.File, sheet string, config *model.ChartConfig) error {
	if err := wb.SetCellValue(sheet, "A1", config.XKey); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}
	for col, series := range config.Series {
		cell, err := xlsx.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return goerr.Wrap(err, "invalid header coordinates")
		}
		if err := wb.SetCellValue(sheet, cell, series.Name); err != nil {
			return goerr.Wrap(err, "failed to write header")
		}
	}

	for i, row := range config.Rows {
		cell, err := xlsx.CoordinatesToCellName(1, i+2)
		if err != nil {
			return goerr.Wrap(err, "invalid row coordinates")
		}
		if err := wb.SetCellValue(sheet, cell, row.Label); err != nil {
			return goerr.Wrap(err, "failed to write row label")
		}
		for col, series := range config.Series {
			cell, err := xlsx.CoordinatesToCellName(col+2, i+2)
			if err != nil {
				return goerr.Wrap(err, "invalid cell coordinates")
			}
			if err := wb.SetCellValue(sheet, cell, row.Values[series.Key]); err != nil {
				return goerr.Wrap(err, "failed to write cell value")
			}
		}
	}

	format, err := buildFormat(sheet, config)
	if err != nil {
		return err
	}

	anchor, err := xlsx.CoordinatesToCellName(len(config.Series)+3, 2)
	if err != nil {
		return goerr.Wrap(err, "invalid chart anchor")
	}
	if err := wb.AddChart(sheet, anchor, format); err != nil {
		return goerr.Wrap(err, "failed to add chart")
	}

	return nil
}

// buildFormat builds the excelize chart format JSON for a config
func buildFormat(sheet string, config *model.ChartConfig) (string, error) {
	lastRow := len(config.Rows) + 1
	categories, err := rangeRef(sheet, 1, 2, 1, lastRow)
	if err != nil {
		return "", err
	}

	series := make([]chartSeries, 0, len(config.Series))
	for col, s := range config.Series {
		values, err := rangeRef(sheet, col+2, 2, col+2, lastRow)
		if err != nil {
			return "", err
		}
		series = append(series, chartSeries{
			Name:       s.Name,
			Categories: categories,
			Values:     values,
		})
	}

	format := chartFormat{
		Type:   excelChartType(config),
		Series: series,
		Title:  chartTitle{Name: config.Title},
		Legend: chartLegend{Position: "bottom"},
	}

	raw, err := json.Marshal(format)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal chart format")
	}
	return string(raw), nil
}

// excelChartType maps the chart kind to the excelize chart type name
func excelChartType(config *model.ChartConfig) string {
	switch config.Kind {
	case model.ChartKindArea:
		if config.Stacked {
			return "areaStacked"
		}
		return "area"
	case model.ChartKindBar:
		if config.Stacked {
			return "colStacked"
		}
		return "col"
	default:
		return "line"
	}
}

// rangeRef builds an absolute sheet range reference like 'sheet'!$A$2:$A$12
func rangeRef(sheet string, startCol, startRow, endCol, endRow int) (string, error) {
	start, err := xlsx.CoordinatesToCellName(startCol, startRow, true)
	if err != nil {
		return "", goerr.Wrap(err, "invalid range start")
	}
	end, err := xlsx.CoordinatesToCellName(endCol, endRow, true)
	if err != nil {
		return "", goerr.Wrap(err, "invalid range end")
	}
	return "'" + sheet + "'!" + start + ":" + end, nil
}
