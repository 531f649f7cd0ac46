package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Output holds output destination configuration
type Output struct {
	Path string
}

// Flags returns CLI flags for Output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (default: stdout)",
			Category:    "Output",
			Sources:     cli.EnvVars("BREACHTRENDS_OUTPUT"),
			Destination: &o.Path,
		},
	}
}

// Open returns the output writer. Callers must call the returned closer
// when a file was opened.
func (o *Output) Open() (io.Writer, func() error, error) {
	if o.Path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(o.Path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output file",
			goerr.V("path", o.Path))
	}
	return f, f.Close, nil
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", o.Path),
	)
}
