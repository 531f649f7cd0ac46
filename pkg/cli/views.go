package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/breachwatch/breachtrends/pkg/cli/config"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/breachwatch/breachtrends/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdViews() *cli.Command {
	var datasetCfg config.Dataset

	return &cli.Command{
		Name:  "views",
		Usage: "List the available chart views",
		Flags: datasetCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			dataset, err := datasetCfg.Configure()
			if err != nil {
				return err
			}

			trends, err := usecase.NewTrends(dataset)
			if err != nil {
				return goerr.Wrap(err, "failed to create trends")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VIEW\tKIND\tX-AXIS\tSERIES\tTITLE")
			for _, view := range types.Views() {
				cfg := trends.BuildView(view)
				kind := string(cfg.Kind)
				if cfg.Stacked {
					kind += " (stacked)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					cfg.View, kind, cfg.XKey, len(cfg.Series), cfg.Title)
			}
			return w.Flush()
		},
	}
}
