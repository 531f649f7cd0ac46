package model

import (
	"github.com/breachwatch/breachtrends/pkg/domain/types"
)

// DefaultCutoffYear is the last complete reporting year in the bundled data.
// 2025 rows are partial-year submissions and excluded from rate derivations.
const DefaultCutoffYear = types.Year(2024)

// DefaultDataset returns the bundled hacking-incident counts by location of
// breached information, healthcare providers only, 2015-2025. The 2025 row
// covers submissions through the first half of the year.
func DefaultDataset() *Dataset {
	return &Dataset{
		CutoffYear: DefaultCutoffYear,
		Years: []YearCounts{
			{Year: 2015, Total: 144, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   11,
				types.CategoryEmail:           25,
				types.CategoryEMR:             18,
				types.CategoryPaperFilms:      34,
				types.CategoryOther:           30,
				types.CategoryDesktopComputer: 26,
			}},
			{Year: 2016, Total: 225, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   65,
				types.CategoryEmail:           48,
				types.CategoryEMR:             22,
				types.CategoryPaperFilms:      33,
				types.CategoryOther:           32,
				types.CategoryDesktopComputer: 25,
			}},
			{Year: 2017, Total: 274, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   80,
				types.CategoryEmail:           74,
				types.CategoryEMR:             28,
				types.CategoryPaperFilms:      31,
				types.CategoryOther:           34,
				types.CategoryDesktopComputer: 27,
			}},
			{Year: 2018, Total: 319, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   100,
				types.CategoryEmail:           101,
				types.CategoryEMR:             31,
				types.CategoryPaperFilms:      30,
				types.CategoryOther:           31,
				types.CategoryDesktopComputer: 26,
			}},
			{Year: 2019, Total: 454, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   160,
				types.CategoryEmail:           168,
				types.CategoryEMR:             39,
				types.CategoryPaperFilms:      29,
				types.CategoryOther:           30,
				types.CategoryDesktopComputer: 28,
			}},
			{Year: 2020, Total: 521, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   220,
				types.CategoryEmail:           173,
				types.CategoryEMR:             44,
				types.CategoryPaperFilms:      28,
				types.CategoryOther:           29,
				types.CategoryDesktopComputer: 27,
			}},
			{Year: 2021, Total: 580, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   260,
				types.CategoryEmail:           181,
				types.CategoryEMR:             52,
				types.CategoryPaperFilms:      27,
				types.CategoryOther:           31,
				types.CategoryDesktopComputer: 29,
			}},
			{Year: 2022, Total: 607, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   290,
				types.CategoryEmail:           175,
				types.CategoryEMR:             58,
				types.CategoryPaperFilms:      26,
				types.CategoryOther:           30,
				types.CategoryDesktopComputer: 28,
			}},
			{Year: 2023, Total: 642, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   310,
				types.CategoryEmail:           182,
				types.CategoryEMR:             64,
				types.CategoryPaperFilms:      25,
				types.CategoryOther:           32,
				types.CategoryDesktopComputer: 29,
			}},
			{Year: 2024, Total: 677, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   330,
				types.CategoryEmail:           190,
				types.CategoryEMR:             70,
				types.CategoryPaperFilms:      24,
				types.CategoryOther:           33,
				types.CategoryDesktopComputer: 30,
			}},
			{Year: 2025, Total: 307, Counts: map[types.Category]int{
				types.CategoryNetworkServer:   150,
				types.CategoryEmail:           85,
				types.CategoryEMR:             33,
				types.CategoryPaperFilms:      10,
				types.CategoryOther:           15,
				types.CategoryDesktopComputer: 14,
			}},
		},
	}
}
