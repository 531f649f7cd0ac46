package usecase_test

import (
	"math"
	"testing"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/breachwatch/breachtrends/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newTrends(t *testing.T) *usecase.Trends {
	t.Helper()
	trends, err := usecase.NewTrends(nil)
	gt.NoError(t, err)
	return trends
}

func TestNewTrends(t *testing.T) {
	t.Run("nil dataset uses the bundled table", func(t *testing.T) {
		trends := newTrends(t)
		gt.Equal(t, trends.Dataset().FirstYear(), types.Year(2015))
	})

	t.Run("malformed dataset fails fast", func(t *testing.T) {
		dataset := model.DefaultDataset()
		dataset.Years[3].Total++
		_, err := usecase.NewTrends(dataset)
		gt.Error(t, err)
	})
}

func TestPercentages(t *testing.T) {
	trends := newTrends(t)
	percentages := trends.Percentages()

	t.Run("one entry per year", func(t *testing.T) {
		gt.Equal(t, len(percentages), len(trends.Dataset().Years))
	})

	t.Run("shares sum to 100 within rounding tolerance", func(t *testing.T) {
		for _, p := range percentages {
			sum := 0.0
			for _, category := range types.Categories() {
				sum += p.Share(category)
			}
			if math.Abs(sum-100.0) > 0.2 {
				t.Errorf("year %d: shares sum to %.2f", p.Year.Int(), sum)
			}
		}
	})

	t.Run("known share", func(t *testing.T) {
		// 2015: 11 of 144 Network Server incidents
		gt.Equal(t, percentages[0].Year, types.Year(2015))
		gt.Equal(t, percentages[0].Share(types.CategoryNetworkServer), 7.6)
	})

	t.Run("zero-total year yields zero shares", func(t *testing.T) {
		dataset := &model.Dataset{
			CutoffYear: 2021,
			Years: []model.YearCounts{
				{Year: 2021, Total: 0, Counts: map[types.Category]int{
					types.CategoryNetworkServer:   0,
					types.CategoryEmail:           0,
					types.CategoryEMR:             0,
					types.CategoryPaperFilms:      0,
					types.CategoryOther:           0,
					types.CategoryDesktopComputer: 0,
				}},
			},
		}
		trends, err := usecase.NewTrends(dataset)
		gt.NoError(t, err)

		for _, category := range types.Categories() {
			gt.Equal(t, trends.Percentages()[0].Share(category), 0.0)
		}
	})
}

func TestGrowth(t *testing.T) {
	trends := newTrends(t)

	t.Run("length excludes first year and partial years", func(t *testing.T) {
		points := trends.NetworkServerGrowth()
		gt.Equal(t, len(points), len(trends.Dataset().Years)-2)
	})

	t.Run("first point is the 2015 to 2016 jump", func(t *testing.T) {
		points := trends.NetworkServerGrowth()
		gt.Equal(t, points[0].Year, types.Year(2016))
		// (65-11)/11*100 rounded to one decimal
		gt.Equal(t, points[0].Growth, 490.9)
	})

	t.Run("series ends at the cutoff year", func(t *testing.T) {
		points := trends.NetworkServerGrowth()
		gt.Equal(t, points[len(points)-1].Year, types.Year(2024))
	})

	t.Run("zero prior-year count yields zero growth", func(t *testing.T) {
		dataset := &model.Dataset{
			CutoffYear: 2021,
			Years: []model.YearCounts{
				{Year: 2020, Total: 0, Counts: zeroCounts()},
				{Year: 2021, Total: 12, Counts: map[types.Category]int{
					types.CategoryNetworkServer:   12,
					types.CategoryEmail:           0,
					types.CategoryEMR:             0,
					types.CategoryPaperFilms:      0,
					types.CategoryOther:           0,
					types.CategoryDesktopComputer: 0,
				}},
			},
		}
		trends, err := usecase.NewTrends(dataset)
		gt.NoError(t, err)

		points, err := trends.Growth(types.CategoryNetworkServer)
		gt.NoError(t, err)
		gt.Equal(t, len(points), 1)
		gt.Equal(t, points[0].Growth, 0.0)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := trends.Growth(types.Category("Laptop"))
		gt.Error(t, err)
	})

	t.Run("network server shortcut matches the generic series", func(t *testing.T) {
		points, err := trends.Growth(types.CategoryNetworkServer)
		gt.NoError(t, err)
		gt.Equal(t, trends.NetworkServerGrowth(), points)
	})
}

func TestCAGRRanking(t *testing.T) {
	trends := newTrends(t)
	ranking := trends.CAGRRanking()

	t.Run("one entry per category", func(t *testing.T) {
		gt.Equal(t, len(ranking), len(types.Categories()))
	})

	t.Run("sorted descending", func(t *testing.T) {
		for i := 1; i < len(ranking); i++ {
			if ranking[i].CAGR > ranking[i-1].CAGR {
				t.Errorf("ranking not descending at %d: %.2f > %.2f",
					i, ranking[i].CAGR, ranking[i-1].CAGR)
			}
		}
	})

	t.Run("network server leads, paper/films trails", func(t *testing.T) {
		gt.Equal(t, ranking[0].Category, types.CategoryNetworkServer)
		gt.Equal(t, ranking[0].CAGR, 45.92)
		gt.Equal(t, ranking[len(ranking)-1].Category, types.CategoryPaperFilms)
		gt.Equal(t, ranking[len(ranking)-1].CAGR, -3.8)
	})

	t.Run("ties keep canonical category order", func(t *testing.T) {
		flat := make(map[types.Category]int)
		for _, category := range types.Categories() {
			flat[category] = 10
		}
		dataset := &model.Dataset{
			CutoffYear: 2021,
			Years: []model.YearCounts{
				{Year: 2020, Total: 60, Counts: flat},
				{Year: 2021, Total: 60, Counts: flat},
			},
		}
		trends, err := usecase.NewTrends(dataset)
		gt.NoError(t, err)

		ranking := trends.CAGRRanking()
		gt.Equal(t, len(ranking), 6)
		for i, category := range types.Categories() {
			gt.Equal(t, ranking[i].Category, category)
			gt.Equal(t, ranking[i].CAGR, 0.0)
		}
	})
}

func TestDerivationIdempotence(t *testing.T) {
	trends := newTrends(t)

	gt.Equal(t, trends.Percentages(), trends.Percentages())
	gt.Equal(t, trends.NetworkServerGrowth(), trends.NetworkServerGrowth())
	gt.Equal(t, trends.CAGRRanking(), trends.CAGRRanking())
}

func zeroCounts() map[types.Category]int {
	counts := make(map[types.Category]int)
	for _, category := range types.Categories() {
		counts[category] = 0
	}
	return counts
}
