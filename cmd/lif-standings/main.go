package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/Black-And-White-Club/lif-standings/app"
	standingsservice "github.com/Black-And-White-Club/lif-standings/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/lif-standings/app/modules/standings/domain"
	"github.com/Black-And-White-Club/lif-standings/config"
	"github.com/Black-And-White-Club/lif-standings/internal/observability"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLIApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLIApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "lif-standings",
		Usage:  "club points standings from LIF race result files",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "folder holding the result files"},
			&cli.IntFlag{Name: "min-year", Usage: "earliest folder year to include"},
			&cli.IntFlag{Name: "max-year", Usage: "latest folder year to include"},
			&cli.StringFlag{Name: "charset", Usage: "encoding of the result files"},
			&cli.IntFlag{Name: "workers", Usage: "files scored concurrently"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to this textfile on exit"},
			&cli.BoolFlag{Name: "trace", Usage: "print spans to stderr"},
		},
		Commands: []*cli.Command{
			newComputeCommand(),
			newPreviewCommand(),
			newInspectCommand(),
			newCheckFolderCommand(),
			newServeCommand(),
		},
	}
}

// loadConfig reads the config file and lays the global flags over it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("source") {
		cfg.Source.Dir = c.String("source")
	}
	if c.IsSet("min-year") {
		year := c.Int("min-year")
		cfg.Filter.Min = &year
	}
	if c.IsSet("max-year") {
		year := c.Int("max-year")
		cfg.Filter.Max = &year
	}
	if c.IsSet("charset") {
		cfg.Source.Charset = c.String("charset")
	}
	if c.IsSet("workers") {
		cfg.Source.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.Observability.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Observability.LogFormat = c.String("log-format")
	}
	if c.IsSet("metrics-file") {
		cfg.Observability.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("trace") {
		cfg.Observability.TraceStdout = c.Bool("trace")
	}
	if c.IsSet("output") {
		cfg.Export.Output = c.String("output")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp builds the application for one command and closes it afterwards.
func withApp(c *cli.Context, requireSource bool, run func(ctx context.Context, a *app.App) error) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if requireSource && cfg.Source.Dir == "" {
		return errors.New("no source folder: pass --source or set LIF_SOURCE_DIR")
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat, c.App.ErrWriter)
	a, err := app.NewApp(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(context.WithoutCancel(c.Context)); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return run(c.Context, a)
}

func newComputeCommand() *cli.Command {
	return &cli.Command{
		Name:  "compute",
		Usage: "score the source folder and write the standings file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "destination (.csv, .xlsx or .png)"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, true, func(ctx context.Context, a *app.App) error {
				result, err := a.Compute(ctx, a.Cfg.Filter)
				if err != nil {
					return err
				}
				if err := a.Export(a.Cfg.Export.Output, result.Standings); err != nil {
					return err
				}

				printWarnings(c.App.Writer, result.Warnings)
				printSummary(c.App.Writer, result.Summary)
				fmt.Fprintf(c.App.Writer, "Results saved to %s\n", a.Cfg.Export.Output)
				return nil
			})
		},
	}
}

func newPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "print the standings without writing a file",
		Action: func(c *cli.Context) error {
			return withApp(c, true, func(ctx context.Context, a *app.App) error {
				result, err := a.Compute(ctx, a.Cfg.Filter)
				if err != nil {
					return err
				}
				printWarnings(c.App.Writer, result.Warnings)
				printPreview(c.App.Writer, result.Standings)
				return nil
			})
		},
	}
}

func newInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "show how a single file is segmented and scored",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return errors.New("inspect needs a file")
			}
			return withApp(c, false, func(ctx context.Context, a *app.App) error {
				inspection, err := a.Service.InspectFile(ctx, path)
				if err != nil {
					return err
				}
				printInspection(c.App.Writer, inspection)
				return nil
			})
		},
	}
}

func newCheckFolderCommand() *cli.Command {
	return &cli.Command{
		Name:      "check-folder",
		Usage:     "report which folder names pass the year filter",
		ArgsUsage: "NAME...",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.NArg() == 0 {
				return errors.New("check-folder needs at least one folder name")
			}
			printFolderChecks(c.App.Writer, cfg.Filter, c.Args().Slice())
			return nil
		},
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve standings over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Usage: "listen address"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, true, func(ctx context.Context, a *app.App) error {
				if c.IsSet("address") {
					a.Cfg.Server.Address = c.String("address")
				}
				return a.Start(ctx)
			})
		},
	}
}

func printPreview(w io.Writer, standings []standingsdomain.Standing) {
	if len(standings) == 0 {
		fmt.Fprintln(w, "No standings to show")
		return
	}
	for _, s := range standings {
		fmt.Fprintf(w, "%-5d points  %s\n", s.Points, s.Club)
	}
}

func printWarnings(w io.Writer, warnings []standingsservice.Warning) {
	for _, warning := range warnings {
		if warning.Path != "" {
			fmt.Fprintf(w, "warning: %s: %s\n", warning.Path, warning.Message)
			continue
		}
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
}

func printSummary(w io.Writer, summary standingsservice.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Files scored\t%d\n", summary.FilesScored)
	fmt.Fprintf(tw, "Files skipped\t%d\n", summary.FilesSkipped)
	fmt.Fprintf(tw, "Races found\t%d\n", summary.Races)
	fmt.Fprintf(tw, "Clubs ranked\t%d\n", summary.Clubs)
	tw.Flush()
}

func printInspection(w io.Writer, inspection *standingsservice.FileInspection) {
	fmt.Fprintf(w, "%s: %d lines, %d races\n", inspection.Path, inspection.TotalLines, len(inspection.Races))
	for i, race := range inspection.Races {
		fmt.Fprintf(w, "\nRace %d: %s\n", i+1, race.Marker)
		for _, line := range race.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	if len(inspection.Contributions) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Place\tClub\tPoints")
	for _, c := range inspection.Contributions {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", c.Place, c.Club, c.Points)
	}
	tw.Flush()
}

func printFolderChecks(w io.Writer, years standingsdomain.YearRange, names []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Folder\tYear\tFilter %s\n", years)
	for _, name := range names {
		year := "-"
		if y, ok := standingsdomain.ExtractYear(name); ok {
			year = fmt.Sprint(y)
		}
		verdict := "excluded"
		if years.Includes(name) {
			verdict = "included"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, year, verdict)
	}
	tw.Flush()
}
