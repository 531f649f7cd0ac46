package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/breachwatch/breachtrends/pkg/cli/config"
	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/breachwatch/breachtrends/pkg/repository"
	"github.com/breachwatch/breachtrends/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdChart() *cli.Command {
	var (
		datasetCfg config.Dataset
		outputCfg  config.Output
		viewID     string
		all        bool
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		outputCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "view",
				Usage:       "View to emit (absolute, percentage, stacked, networkServerGrowth, growthComparison)",
				Value:       types.DefaultView.String(),
				Sources:     cli.EnvVars("BREACHTRENDS_VIEW"),
				Destination: &viewID,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Emit every view",
				Destination: &all,
			},
		},
	)

	return &cli.Command{
		Name:  "chart",
		Usage: "Emit chart configuration as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			dataset, err := datasetCfg.Configure()
			if err != nil {
				return err
			}

			trends, err := usecase.NewTrends(dataset)
			if err != nil {
				return goerr.Wrap(err, "failed to create trends")
			}

			var configs []*model.ChartConfig
			if all {
				configs = trends.BuildAllViews()
			} else {
				store := repository.NewMemory()
				defer store.Close()

				session, err := model.NewViewSession()
				if err != nil {
					return goerr.Wrap(err, "failed to create view session")
				}
				if err := store.PutSession(ctx, session); err != nil {
					return goerr.Wrap(err, "failed to save view session")
				}

				requested := types.ViewID(viewID)
				if !requested.IsValid() {
					logger.Warn("unknown view, falling back to default",
						slog.String("view", viewID),
						slog.String("fallback", types.DefaultView.String()))
				}

				cfg, err := trends.SelectView(ctx, store, session.ID, requested)
				if err != nil {
					return goerr.Wrap(err, "failed to select view")
				}
				configs = []*model.ChartConfig{cfg}
			}

			w, closer, err := outputCfg.Open()
			if err != nil {
				return err
			}
			defer closer()

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if all {
				if err := enc.Encode(configs); err != nil {
					return goerr.Wrap(err, "failed to encode chart configs")
				}
			} else {
				if err := enc.Encode(configs[0]); err != nil {
					return goerr.Wrap(err, "failed to encode chart config")
				}
			}

			logger.Debug("chart configuration emitted",
				slog.Int("views", len(configs)))
			return nil
		},
	}
}
