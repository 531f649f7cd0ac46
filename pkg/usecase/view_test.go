package usecase_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/breachwatch/breachtrends/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestBuildView(t *testing.T) {
	trends := newTrends(t)

	t.Run("every view yields a valid non-empty chart", func(t *testing.T) {
		for _, view := range types.Views() {
			cfg := trends.BuildView(view)
			gt.Equal(t, cfg.View, view)
			gt.NoError(t, cfg.Validate())
			gt.True(t, len(cfg.Series) > 0)
			gt.True(t, len(cfg.Rows) > 0)
		}
	})

	t.Run("x-axis is year except for the comparison view", func(t *testing.T) {
		for _, view := range types.Views() {
			cfg := trends.BuildView(view)
			if view == types.ViewGrowthComparison {
				gt.Equal(t, cfg.XKey, "category")
			} else {
				gt.Equal(t, cfg.XKey, "year")
			}
		}
	})

	t.Run("unknown view builds the absolute view", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewID("scatter"))
		gt.Equal(t, cfg.View, types.ViewAbsolute)
	})

	t.Run("category colors are identical across views", func(t *testing.T) {
		for _, view := range []types.ViewID{types.ViewAbsolute, types.ViewPercentage, types.ViewStacked} {
			cfg := trends.BuildView(view)
			gt.Equal(t, len(cfg.Series), 6)
			for i, category := range types.Categories() {
				gt.Equal(t, cfg.Series[i].Key, category.String())
				gt.Equal(t, cfg.Series[i].Color, model.ColorOf(category))
			}
		}
	})

	t.Run("absolute view carries raw counts", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewAbsolute)
		gt.Equal(t, cfg.Kind, model.ChartKindLine)
		gt.Equal(t, cfg.Rows[0].Label, "2015")
		gt.Equal(t, cfg.Rows[0].Values[types.CategoryNetworkServer.String()], 11.0)
	})

	t.Run("percentage view is a stacked area of shares", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewPercentage)
		gt.Equal(t, cfg.Kind, model.ChartKindArea)
		gt.True(t, cfg.Stacked)
		gt.Equal(t, cfg.Rows[0].Values[types.CategoryNetworkServer.String()], 7.6)
	})

	t.Run("stacked view is a stacked bar of counts", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewStacked)
		gt.Equal(t, cfg.Kind, model.ChartKindBar)
		gt.True(t, cfg.Stacked)
	})

	t.Run("growth view drops the first and partial years", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewNetworkServerGrowth)
		gt.Equal(t, len(cfg.Series), 1)
		gt.Equal(t, len(cfg.Rows), len(trends.Dataset().Years)-2)
		gt.Equal(t, cfg.Rows[0].Label, "2016")
		gt.Equal(t, cfg.Rows[0].Values["growth"], 490.9)
	})

	t.Run("comparison view rows follow the ranking with per-row colors", func(t *testing.T) {
		cfg := trends.BuildView(types.ViewGrowthComparison)
		gt.Equal(t, cfg.Rows[0].Label, types.CategoryNetworkServer.String())
		gt.Equal(t, cfg.Rows[0].Color, model.ColorOf(types.CategoryNetworkServer))
		last := cfg.Rows[len(cfg.Rows)-1]
		gt.Equal(t, last.Label, types.CategoryPaperFilms.String())
		gt.Equal(t, last.Values["cagr"], -3.8)
	})
}

func TestBuildAllViews(t *testing.T) {
	trends := newTrends(t)
	configs := trends.BuildAllViews()

	gt.Equal(t, len(configs), len(types.Views()))
	for i, view := range types.Views() {
		gt.Equal(t, configs[i].View, view)
	}
}

func TestSelectView(t *testing.T) {
	ctx := context.Background()
	trends := newTrends(t)

	t.Run("selection updates the stored session", func(t *testing.T) {
		store := repository.NewMemory()
		defer store.Close()

		session, err := model.NewViewSession()
		gt.NoError(t, err)
		gt.NoError(t, store.PutSession(ctx, session))

		cfg, err := trends.SelectView(ctx, store, session.ID, types.ViewStacked)
		gt.NoError(t, err)
		gt.Equal(t, cfg.View, types.ViewStacked)

		stored, err := store.GetSession(ctx, session.ID)
		gt.NoError(t, err)
		gt.Equal(t, stored.View, types.ViewStacked)
	})

	t.Run("unknown view selects the default", func(t *testing.T) {
		store := repository.NewMemory()
		defer store.Close()

		session, err := model.NewViewSession()
		gt.NoError(t, err)
		gt.NoError(t, store.PutSession(ctx, session))

		cfg, err := trends.SelectView(ctx, store, session.ID, types.ViewID("radar"))
		gt.NoError(t, err)
		gt.Equal(t, cfg.View, types.ViewAbsolute)
	})

	t.Run("missing session is an error", func(t *testing.T) {
		store := repository.NewMemory()
		defer store.Close()

		_, err := trends.SelectView(ctx, store, types.SessionID("missing"), types.ViewStacked)
		gt.Error(t, err)
	})
}

func TestViewRowOrdering(t *testing.T) {
	trends := newTrends(t)
	cfg := trends.BuildView(types.ViewAbsolute)

	years := trends.Dataset().Years
	gt.Equal(t, len(cfg.Rows), len(years))
	for i, row := range cfg.Rows {
		gt.Equal(t, row.Label, strconv.Itoa(years[i].Year.Int()))
	}
}
