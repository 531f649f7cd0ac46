package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Table is a rendered table: a header row plus data rows, ready to be
// written as markdown or CSV
type Table struct {
	Header []string
	Rows   [][]string
}

// Counts builds the per-year incident counts table
func Counts(dataset *model.Dataset) Table {
	header := []string{"Year"}
	for _, category := range types.Categories() {
		header = append(header, category.String())
	}
	header = append(header, "Total")

	rows := make([][]string, 0, len(dataset.Years))
	for _, row := range dataset.Years {
		cells := []string{yearLabel(dataset, row.Year)}
		for _, category := range types.Categories() {
			cells = append(cells, strconv.Itoa(row.Count(category)))
		}
		cells = append(cells, strconv.Itoa(row.Total))
		rows = append(rows, cells)
	}

	return Table{Header: header, Rows: rows}
}

// Percentages builds the per-year category share table
func Percentages(dataset *model.Dataset, percentages []model.YearPercentages) Table {
	header := []string{"Year"}
	for _, category := range types.Categories() {
		header = append(header, category.String()+" (%)")
	}

	rows := make([][]string, 0, len(percentages))
	for _, p := range percentages {
		cells := []string{yearLabel(dataset, p.Year)}
		for _, category := range types.Categories() {
			cells = append(cells, formatFloat(p.Share(category), 1))
		}
		rows = append(rows, cells)
	}

	return Table{Header: header, Rows: rows}
}

// Growth builds the year-over-year growth table for one category
func Growth(category types.Category, points []model.GrowthPoint) Table {
	header := []string{"Year", fmt.Sprintf("%s YoY growth (%%)", category)}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Year.Int()),
			formatFloat(p.Growth, 1),
		})
	}

	return Table{Header: header, Rows: rows}
}

// CAGR builds the compound annual growth rate ranking table
func CAGR(dataset *model.Dataset, ranking []model.CategoryGrowthRate) Table {
	header := []string{
		"Breach Location",
		fmt.Sprintf("CAGR %d-%d (%%)", dataset.FirstYear().Int(), dataset.CutoffYear.Int()),
	}

	rows := make([][]string, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, []string{
			r.Category.String(),
			formatFloat(r.CAGR, 2),
		})
	}

	return Table{Header: header, Rows: rows}
}

// WriteMarkdown writes the table as a GitHub-flavored markdown table
func WriteMarkdown(w io.Writer, table Table) error {
	if len(table.Header) == 0 {
		return goerr.New("table has no header")
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(table.Header, " | ") + " |\n")

	separators := make([]string, len(table.Header))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range table.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write markdown table")
	}
	return nil
}

// WriteCSV writes the table as CSV
func WriteCSV(w io.Writer, table Table) error {
	if len(table.Header) == 0 {
		return goerr.New("table has no header")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row")
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// yearLabel marks partial reporting years so readers do not compare them
// against full years
func yearLabel(dataset *model.Dataset, year types.Year) string {
	if !dataset.IsComplete(year) {
		return fmt.Sprintf("%d*", year.Int())
	}
	return strconv.Itoa(year.Int())
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
