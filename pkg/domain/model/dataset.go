package model

import (
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// YearCounts holds per-category breach incident counts for one reporting year
type YearCounts struct {
	Year   types.Year             `yaml:"year"`
	Counts map[types.Category]int `yaml:"counts"`
	Total  int                    `yaml:"total"`
}

// Count returns the incident count for a category
func (y *YearCounts) Count(category types.Category) int {
	return y.Counts[category]
}

// Validate validates a single year row. The rows are hand-authored, so the
// sum invariant (Total == sum of the six category counts) must hold.
func (y *YearCounts) Validate() error {
	if y.Year <= 0 {
		return goerr.New("year is required", goerr.V("year", y.Year))
	}

	sum := 0
	for _, category := range types.Categories() {
		count, ok := y.Counts[category]
		if !ok {
			return goerr.New("category count is missing",
				goerr.V("year", y.Year),
				goerr.V("category", category))
		}
		if count < 0 {
			return goerr.New("category count must not be negative",
				goerr.V("year", y.Year),
				goerr.V("category", category),
				goerr.V("count", count))
		}
		sum += count
	}

	for category := range y.Counts {
		if !category.IsValid() {
			return goerr.New("unknown category",
				goerr.V("year", y.Year),
				goerr.V("category", category))
		}
	}

	if sum != y.Total {
		return goerr.New("total does not match sum of category counts",
			goerr.V("year", y.Year),
			goerr.V("total", y.Total),
			goerr.V("sum", sum))
	}

	return nil
}

// Dataset holds the canonical per-year, per-category incident counts.
// CutoffYear is the last complete reporting year; rows after it are partial
// and excluded from growth and CAGR derivations.
type Dataset struct {
	Years      []YearCounts `yaml:"years"`
	CutoffYear types.Year   `yaml:"cutoff_year"`
}

// Validate validates the dataset at load time (fail fast on malformed rows)
func (d *Dataset) Validate() error {
	if len(d.Years) == 0 {
		return goerr.New("dataset has no year rows")
	}

	seen := make(map[types.Year]bool)
	prev := types.Year(0)
	for i, row := range d.Years {
		if err := row.Validate(); err != nil {
			return goerr.Wrap(err, "invalid year row", goerr.V("index", i))
		}
		if seen[row.Year] {
			return goerr.New("duplicate year row", goerr.V("year", row.Year))
		}
		seen[row.Year] = true
		if row.Year < prev {
			return goerr.New("year rows must be in ascending order",
				goerr.V("year", row.Year),
				goerr.V("previous", prev))
		}
		prev = row.Year
	}

	if d.CutoffYear == 0 {
		return goerr.New("data completeness cutoff year is required")
	}
	first := d.Years[0].Year
	last := d.Years[len(d.Years)-1].Year
	if d.CutoffYear < first || d.CutoffYear > last {
		return goerr.New("cutoff year is outside the dataset range",
			goerr.V("cutoffYear", d.CutoffYear),
			goerr.V("first", first),
			goerr.V("last", last))
	}

	return nil
}

// FirstYear returns the oldest reporting year
func (d *Dataset) FirstYear() types.Year {
	return d.Years[0].Year
}

// LastYear returns the newest reporting year, which may be partial
func (d *Dataset) LastYear() types.Year {
	return d.Years[len(d.Years)-1].Year
}

// IsComplete reports whether the year is a fully-reported year
func (d *Dataset) IsComplete(year types.Year) bool {
	return year <= d.CutoffYear
}

// FindYear returns the row for the year
func (d *Dataset) FindYear(year types.Year) (*YearCounts, error) {
	for i := range d.Years {
		if d.Years[i].Year == year {
			row := d.Years[i]
			return &row, nil
		}
	}
	return nil, goerr.Wrap(ErrYearNotFound, "no such year",
		goerr.V("year", year))
}

// CompleteYears returns the rows up to and including the cutoff year
func (d *Dataset) CompleteYears() []YearCounts {
	var rows []YearCounts
	for _, row := range d.Years {
		if row.Year <= d.CutoffYear {
			rows = append(rows, row)
		}
	}
	return rows
}
