package usecase

import (
	"math"
	"sort"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Trends provides the derived breach-trend series. All derivations are pure
// functions over the validated counts table and are recomputed per call.
type Trends struct {
	dataset *model.Dataset
}

// NewTrends creates a new Trends use case. The dataset is validated once
// here; malformed rows fail fast instead of rendering a gap later.
func NewTrends(dataset *model.Dataset) (*Trends, error) {
	if dataset == nil {
		dataset = model.DefaultDataset()
	}
	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid breach dataset")
	}

	return &Trends{dataset: dataset}, nil
}

// Dataset returns the underlying counts table
func (t *Trends) Dataset() *model.Dataset {
	return t.dataset
}

// Percentages computes each category's share of its year's total, in percent
// to one decimal place. Percentages are derived from the counts table rather
// than carried as a second literal, so the sum-to-100 invariant holds by
// construction.
func (t *Trends) Percentages() []model.YearPercentages {
	result := make([]model.YearPercentages, 0, len(t.dataset.Years))
	for _, row := range t.dataset.Years {
		shares := make(map[types.Category]float64, len(row.Counts))
		for _, category := range types.Categories() {
			if row.Total == 0 {
				shares[category] = 0
				continue
			}
			shares[category] = round1(float64(row.Count(category)) / float64(row.Total) * 100)
		}
		result = append(result, model.YearPercentages{
			Year:   row.Year,
			Shares: shares,
		})
	}
	return result
}

// Growth computes the year-over-year percentage growth series for one
// category. The first year has no prior year and is excluded; years after
// the completeness cutoff are excluded because partial-year counts would
// read as a collapse. A zero prior-year count yields 0 rather than a rate.
func (t *Trends) Growth(category types.Category) ([]model.GrowthPoint, error) {
	if !category.IsValid() {
		return nil, goerr.New("unknown category", goerr.V("category", category))
	}
	return t.growthSeries(category), nil
}

// NetworkServerGrowth computes the growth series for the Network Server
// category, the dominant hacking target in the report
func (t *Trends) NetworkServerGrowth() []model.GrowthPoint {
	return t.growthSeries(types.CategoryNetworkServer)
}

// growthSeries computes the series for an already validated category
func (t *Trends) growthSeries(category types.Category) []model.GrowthPoint {
	rows := t.dataset.CompleteYears()
	result := make([]model.GrowthPoint, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		prev := rows[i-1].Count(category)
		cur := rows[i].Count(category)

		growth := 0.0
		if prev > 0 {
			growth = round1(float64(cur-prev) / float64(prev) * 100)
		}
		result = append(result, model.GrowthPoint{
			Year:   rows[i].Year,
			Growth: growth,
		})
	}
	return result
}

// CAGRRanking computes each category's compound annual growth rate over the
// window from the first year to the cutoff year, sorted descending. The sort
// is stable: categories that tie at two decimal places keep their canonical
// order.
func (t *Trends) CAGRRanking() []model.CategoryGrowthRate {
	rows := t.dataset.CompleteYears()
	first := rows[0]
	last := rows[len(rows)-1]
	span := last.Year.Int() - first.Year.Int()

	result := make([]model.CategoryGrowthRate, 0, len(types.Categories()))
	for _, category := range types.Categories() {
		start := first.Count(category)
		end := last.Count(category)

		rate := 0.0
		if start > 0 && span > 0 {
			rate = round2((math.Pow(float64(end)/float64(start), 1/float64(span)) - 1) * 100)
		}
		result = append(result, model.CategoryGrowthRate{
			Category: category,
			CAGR:     rate,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CAGR > result[j].CAGR
	})
	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
