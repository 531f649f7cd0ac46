package cli

import (
	"context"
	"log/slog"

	"github.com/breachwatch/breachtrends/pkg/cli/config"
	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	chartSvc "github.com/breachwatch/breachtrends/pkg/service/chart"
	"github.com/breachwatch/breachtrends/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		datasetCfg config.Dataset
		output     string
		viewIDs    []string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output workbook path",
				Value:       "breach_trends.xlsx",
				Sources:     cli.EnvVars("BREACHTRENDS_OUTPUT"),
				Destination: &output,
			},
			&cli.StringSliceFlag{
				Name:        "view",
				Usage:       "Views to render (default: all)",
				Destination: &viewIDs,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render chart views into an Excel workbook with native charts",
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
			if len(viewIDs) == 0 {
				configs = trends.BuildAllViews()
			} else {
				seen := make(map[types.ViewID]bool)
				for _, id := range viewIDs {
					view := types.ViewID(id).Normalize()
					if seen[view] {
						continue
					}
					seen[view] = true
					configs = append(configs, trends.BuildView(view))
				}
			}

			logger.Info("rendering chart views",
				slog.Int("views", len(configs)),
				slog.String("output", output))

			renderer := chartSvc.New()
			if err := renderer.Render(ctx, configs, output); err != nil {
				return goerr.Wrap(err, "failed to render workbook")
			}

			return nil
		},
	}
}
