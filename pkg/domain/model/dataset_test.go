package model_test

import (
	"errors"
	"testing"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func validRow() model.YearCounts {
	return model.YearCounts{
		Year:  2020,
		Total: 60,
		Counts: map[types.Category]int{
			types.CategoryNetworkServer:   10,
			types.CategoryEmail:           10,
			types.CategoryEMR:             10,
			types.CategoryPaperFilms:      10,
			types.CategoryOther:           10,
			types.CategoryDesktopComputer: 10,
		},
	}
}

func TestYearCountsValidate(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		row := validRow()
		gt.NoError(t, row.Validate())
	})

	t.Run("error when a category is missing", func(t *testing.T) {
		row := validRow()
		delete(row.Counts, types.CategoryEmail)
		row.Total = 50
		gt.Error(t, row.Validate())
	})

	t.Run("error when total does not match sum", func(t *testing.T) {
		row := validRow()
		row.Total = 61
		gt.Error(t, row.Validate())
	})

	t.Run("error on negative count", func(t *testing.T) {
		row := validRow()
		row.Counts[types.CategoryOther] = -1
		row.Total = 49
		gt.Error(t, row.Validate())
	})

	t.Run("error on unknown category key", func(t *testing.T) {
		row := validRow()
		row.Counts[types.Category("Laptop")] = 0
		gt.Error(t, row.Validate())
	})
}

func TestDatasetValidate(t *testing.T) {
	t.Run("bundled dataset is valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultDataset().Validate())
	})

	t.Run("every bundled row satisfies the sum invariant", func(t *testing.T) {
		for _, row := range model.DefaultDataset().Years {
			sum := 0
			for _, category := range types.Categories() {
				sum += row.Count(category)
			}
			gt.Equal(t, sum, row.Total)
		}
	})

	t.Run("error on empty dataset", func(t *testing.T) {
		dataset := &model.Dataset{CutoffYear: 2024}
		gt.Error(t, dataset.Validate())
	})

	t.Run("error on duplicate year", func(t *testing.T) {
		dataset := &model.Dataset{
			CutoffYear: 2020,
			Years:      []model.YearCounts{validRow(), validRow()},
		}
		gt.Error(t, dataset.Validate())
	})

	t.Run("error on descending years", func(t *testing.T) {
		older := validRow()
		older.Year = 2019
		dataset := &model.Dataset{
			CutoffYear: 2020,
			Years:      []model.YearCounts{validRow(), older},
		}
		gt.Error(t, dataset.Validate())
	})

	t.Run("error when cutoff year is outside the range", func(t *testing.T) {
		dataset := &model.Dataset{
			CutoffYear: 2030,
			Years:      []model.YearCounts{validRow()},
		}
		gt.Error(t, dataset.Validate())
	})
}

func TestDatasetAccessors(t *testing.T) {
	dataset := model.DefaultDataset()

	t.Run("year range", func(t *testing.T) {
		gt.Equal(t, dataset.FirstYear(), types.Year(2015))
		gt.Equal(t, dataset.LastYear(), types.Year(2025))
	})

	t.Run("completeness follows the cutoff year", func(t *testing.T) {
		gt.True(t, dataset.IsComplete(2024))
		gt.True(t, !dataset.IsComplete(2025))
	})

	t.Run("complete years exclude the partial year", func(t *testing.T) {
		rows := dataset.CompleteYears()
		gt.Equal(t, len(rows), len(dataset.Years)-1)
		gt.Equal(t, rows[len(rows)-1].Year, types.Year(2024))
	})

	t.Run("find year", func(t *testing.T) {
		row, err := dataset.FindYear(2016)
		gt.NoError(t, err)
		gt.Equal(t, row.Count(types.CategoryNetworkServer), 65)
	})

	t.Run("absent year yields the sentinel error", func(t *testing.T) {
		_, err := dataset.FindYear(1999)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrYearNotFound))
	})
}
