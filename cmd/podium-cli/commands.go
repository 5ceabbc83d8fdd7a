package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/okian/podium/internal/adapters/csvsource"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/dataset"
	"github.com/okian/podium/internal/domain/defence"
	"github.com/okian/podium/pkg/logger"
)

// Global carries state shared by every command.
type Global struct {
	Ctx    context.Context
	Out    io.Writer
	Logger logger.Logger
}

// CLI definition & global flags.
type CLI struct {
	LogLevel  string `name:"log-level" help:"Log level (debug|info|warn|error)" default:"warn"`
	LogFormat string `name:"log-format" help:"Log format" enum:"text,json" default:"text"`

	Defences DefencesCmd `cmd:"" help:"Print the title defences of a country"`
	Summary  SummaryCmd  `cmd:"" help:"Print the dashboard of a sport as JSON"`
}

// DataFlags are shared by commands that read the dataset.
type DataFlags struct {
	Data      string `short:"d" help:"Path to athlete_events.csv" type:"path" required:""`
	Anonymize bool   `help:"Replace athlete names with their SHA-256 digest" default:"true" negatable:""`
}

func (f DataFlags) load(g *Global) (*dataset.Table, error) {
	var opts []csvsource.Option
	if f.Anonymize {
		opts = append(opts, csvsource.WithAnonymizedNames())
	}
	t, err := csvsource.Load(g.Ctx, f.Data, opts...)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug(g.Ctx, "dataset loaded", logger.String("path", f.Data), logger.Int("rows", t.Len()))
	return t, nil
}

// DefencesCmd implements the 'defences' command.
type DefencesCmd struct {
	DataFlags `embed:""`
	Country   string `short:"c" help:"NOC code, e.g. CAN" required:""`
	Cycle     int    `help:"Years between consecutive Games" default:"4"`
	Output    string `short:"o" help:"Output format" enum:"table,json,yaml" default:"table"`
}

func (c *DefencesCmd) Run(g *Global) error {
	t, err := c.load(g)
	if err != nil {
		return err
	}
	noc := strings.ToUpper(strings.TrimSpace(c.Country))
	out, err := defence.NewAnalyzer(defence.WithCycleYears(c.Cycle)).ComputeCountry(t, noc)
	if err != nil {
		return fmt.Errorf("title defences for %s: %w", noc, err)
	}
	if c.Output == "table" {
		return writeDefences(g.Out, noc, out)
	}
	return write(g.Out, c.Output, out)
}

// SummaryCmd implements the 'summary' command.
type SummaryCmd struct {
	DataFlags `embed:""`
	Sport     string `short:"s" help:"Sport name, e.g. \"Ice Hockey\"" required:""`
	Output    string `short:"o" help:"Output format" enum:"json,yaml" default:"json"`
}

func (c *SummaryCmd) Run(g *Global) error {
	t, err := c.load(g)
	if err != nil {
		return err
	}
	svc := service.New(service.WithLogger(g.Logger), service.WithTable(t))
	if err := svc.Start(g.Ctx); err != nil {
		return err
	}
	defer svc.Stop()

	d, err := svc.SportDashboard(g.Ctx, c.Sport)
	if err != nil {
		return err
	}
	return write(g.Out, c.Output, d)
}

func writeDefences(w io.Writer, noc string, counts []defence.Count) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintf(w, "%s has no title defences\n", noc)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT\tDEFENCES\tYEARS")
	for _, c := range counts {
		years := make([]string, len(c.Years))
		for i, y := range c.Years {
			years[i] = strconv.Itoa(y)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Event, c.Count, strings.Join(years, ","))
	}
	return tw.Flush()
}

// write encodes v as "json" or "yaml".
func write(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// execute parses args and runs the selected command.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("podium-cli"),
		kong.Description("Olympic results analytics from the command line."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithFormat(cli.LogFormat), logger.WithOutput(stderr)); err != nil {
		return err
	}
	if err := logger.SetLevelString(cli.LogLevel); err != nil {
		return err
	}

	return kctx.Run(&Global{Ctx: ctx, Out: stdout, Logger: logger.Named("cli")})
}
