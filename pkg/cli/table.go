package cli

import (
	"context"
	"io"

	"github.com/breachwatch/breachtrends/pkg/cli/config"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/breachwatch/breachtrends/pkg/service/export"
	"github.com/breachwatch/breachtrends/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdTable() *cli.Command {
	var (
		datasetCfg config.Dataset
		outputCfg  config.Output
		tableName  string
		format     string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		outputCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "table",
				Usage:       "Table to emit (counts, percentages, growth, cagr)",
				Value:       "counts",
				Destination: &tableName,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (markdown, csv)",
				Value:       "markdown",
				Destination: &format,
			},
		},
	)

	return &cli.Command{
		Name:  "table",
		Usage: "Emit dataset and derived tables as markdown or CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dataset, err := datasetCfg.Configure()
			if err != nil {
				return err
			}

			trends, err := usecase.NewTrends(dataset)
			if err != nil {
				return goerr.Wrap(err, "failed to create trends")
			}

			var table export.Table
			switch tableName {
			case "counts":
				table = export.Counts(dataset)
			case "percentages":
				table = export.Percentages(dataset, trends.Percentages())
			case "growth":
				table = export.Growth(types.CategoryNetworkServer, trends.NetworkServerGrowth())
			case "cagr":
				table = export.CAGR(dataset, trends.CAGRRanking())
			default:
				return goerr.New("unknown table", goerr.V("table", tableName))
			}

			w, closer, err := outputCfg.Open()
			if err != nil {
				return err
			}
			defer closer()

			return writeTable(w, table, format)
		},
	}
}

func writeTable(w io.Writer, table export.Table, format string) error {
	switch format {
	case "markdown", "md":
		return export.WriteMarkdown(w, table)
	case "csv":
		return export.WriteCSV(w, table)
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}
}
