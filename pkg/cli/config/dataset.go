package config

import (
	"log/slog"
	"os"

	"github.com/breachwatch/breachtrends/pkg/domain/model"
	"github.com/breachwatch/breachtrends/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dataset holds breach dataset configuration
type Dataset struct {
	Path       string
	CutoffYear int
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Path to YAML file overriding the bundled counts table",
			Category:    "Dataset",
			Sources:     cli.EnvVars("BREACHTRENDS_DATASET"),
			Destination: &d.Path,
		},
		&cli.IntFlag{
			Name:        "cutoff-year",
			Usage:       "Last complete reporting year; later years are excluded from rate derivations (0 = dataset default)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("BREACHTRENDS_CUTOFF_YEAR"),
			Destination: &d.CutoffYear,
		},
	}
}

// Configure loads the dataset: the YAML override when given, otherwise the
// bundled literal table. The result is validated so malformed rows fail here
// rather than rendering a gap later.
func (d *Dataset) Configure() (*model.Dataset, error) {
	dataset := model.DefaultDataset()

	if d.Path != "" {
		loaded, err := LoadDatasetFromFile(d.Path)
		if err != nil {
			return nil, err
		}
		dataset = loaded
	}

	if d.CutoffYear != 0 {
		dataset.CutoffYear = types.Year(d.CutoffYear)
	}

	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset configuration")
	}

	return dataset, nil
}

// LoadDatasetFromFile loads a counts table from a YAML file
func LoadDatasetFromFile(path string) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset file",
			goerr.V("path", path))
	}

	var dataset model.Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset YAML",
			goerr.V("path", path))
	}

	if dataset.CutoffYear == 0 {
		dataset.CutoffYear = model.DefaultCutoffYear
	}

	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset file",
			goerr.V("path", path))
	}

	return &dataset, nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
		slog.Int("cutoffYear", d.CutoffYear),
	)
}
