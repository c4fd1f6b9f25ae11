// Package commands implements CLI command handlers for pathfang.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/pathfang/internal/ingest"
	"github.com/Sumatoshi-tech/pathfang/internal/render"
	"github.com/Sumatoshi-tech/pathfang/internal/stats"
	"github.com/Sumatoshi-tech/pathfang/pkg/config"
	"github.com/Sumatoshi-tech/pathfang/pkg/observability"
	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
	"github.com/Sumatoshi-tech/pathfang/pkg/version"
)

// slogErr wraps an error for structured logging.
func slogErr(err error) slog.Attr {
	return slog.String("error", err.Error())
}

var (
	// ErrNoSource is returned when no ingest source flag was given.
	ErrNoSource = errors.New("no source selected. Use one of --dir, --git, --file (\"-\" for stdin)")

	// ErrMultipleSources is returned when more than one source flag was given.
	ErrMultipleSources = errors.New("flags --dir, --git and --file are mutually exclusive")

	// ErrUnknownFormat indicates an unrecognized --format value.
	ErrUnknownFormat = errors.New("unknown format, expected table, yaml or json")
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"

	metricsReadHeaderTimeout = 5 * time.Second
)

// IngestCommand holds configuration and dependencies for the ingest command.
type IngestCommand struct {
	dir  string
	git  string
	file string

	strategy  string
	separator string
	format    string
	plotPath  string

	metricsAddr string
	configPath  string
	noColor     bool
}

// NewIngestCommand creates the ingest command.
func NewIngestCommand() *cobra.Command {
	ic := &IngestCommand{}

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Build a flyweight path pool from a source and report on it",
		Long: `Ingest walks a path source (directory tree, git HEAD tree, or a
line-delimited path list), interns every path into a flyweight pool, and
reports the pool's shape and the memory that prefix sharing saves.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ic.run(cmd)
		},
	}

	cmd.Flags().StringVar(&ic.dir, "dir", "", "ingest a filesystem tree rooted at this directory")
	cmd.Flags().StringVar(&ic.git, "git", "", "ingest the HEAD tree of this git repository")
	cmd.Flags().StringVar(&ic.file, "file", "", "ingest newline-delimited paths from this file (\"-\" for stdin)")
	cmd.Flags().StringVar(&ic.strategy, "strategy", "", "child-index strategy: hash or list (default from config)")
	cmd.Flags().StringVar(&ic.separator, "separator", "", "path segment separator for --file sources (default from config)")
	cmd.Flags().StringVarP(&ic.format, "format", "f", formatTable, "output format: table, yaml or json")
	cmd.Flags().StringVar(&ic.plotPath, "plot", "", "write an HTML chart page to this path")
	cmd.Flags().StringVar(&ic.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address during the run")
	cmd.Flags().StringVarP(&ic.configPath, "config", "c", "", "config file path")
	cmd.Flags().BoolVar(&ic.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (ic *IngestCommand) run(cmd *cobra.Command) error {
	if ic.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	cfg, err := ic.loadConfig()
	if err != nil {
		return err
	}

	switch ic.format {
	case formatTable, formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ic.format)
	}

	providers, err := observability.Init(observability.Config{
		ServiceName:    "pathfang",
		ServiceVersion: version.Version,
		Environment:    cfg.Telemetry.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.OTLPInsecure,
		LogLevel:       cfg.LogLevel(),
		LogJSON:        cfg.Logging.Format == "json",
	})
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	ctx := cmd.Context()

	defer func() {
		shutdownErr := providers.Shutdown(context.WithoutCancel(ctx))
		if shutdownErr != nil {
			providers.Logger.WarnContext(ctx, "telemetry shutdown", slogErr(shutdownErr))
		}
	}()

	meter, stopMetrics, err := ic.startMetricsServer(ctx, providers)
	if err != nil {
		return err
	}
	defer stopMetrics()

	internMetrics, err := observability.NewInternMetrics(meter)
	if err != nil {
		return fmt.Errorf("create intern metrics: %w", err)
	}

	source, closeSource, err := ic.buildSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx, span := providers.Tracer.Start(ctx, "ingest")
	defer span.End()

	result, err := ingest.Run(ctx, source, ingest.Options{
		Strategy: cfg.Strategy(),
		Logger:   providers.Logger,
		Metrics:  internMetrics,
	})
	if err != nil {
		return err
	}

	report := stats.Collect(result.Pool, len(cfg.Ingest.Separator))

	return ic.writeOutput(cmd, result, report)
}

// loadConfig loads the config file and applies flag overrides on top.
func (ic *IngestCommand) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(ic.configPath)
	if err != nil {
		return nil, err
	}

	if ic.strategy != "" {
		cfg.Ingest.Strategy = ic.strategy
	}

	if ic.separator != "" {
		cfg.Ingest.Separator = ic.separator
	}

	if ic.metricsAddr != "" {
		cfg.Telemetry.MetricsAddr = ic.metricsAddr
	}

	ic.metricsAddr = cfg.Telemetry.MetricsAddr

	// Flag overrides bypass Load's validation; re-check the strategy here.
	_, strategyErr := pathpool.ParseStrategy(cfg.Ingest.Strategy)
	if strategyErr != nil {
		return nil, strategyErr
	}

	return cfg, nil
}

// buildSource selects the ingest source from the mutually exclusive source
// flags. The returned cleanup releases any file handle the source holds.
func (ic *IngestCommand) buildSource(cfg *config.Config) (ingest.Source, func(), error) {
	noop := func() {}

	selected := 0
	for _, flag := range []string{ic.dir, ic.git, ic.file} {
		if flag != "" {
			selected++
		}
	}

	switch {
	case selected == 0:
		return nil, noop, ErrNoSource
	case selected > 1:
		return nil, noop, ErrMultipleSources
	case ic.dir != "":
		return &ingest.DirSource{Root: ic.dir}, noop, nil
	case ic.git != "":
		return &ingest.GitSource{Path: ic.git}, noop, nil
	case ic.file == "-":
		return &ingest.ReaderSource{Reader: os.Stdin, Separator: cfg.Ingest.Separator, Label: "stdin"}, noop, nil
	default:
		f, openErr := os.Open(ic.file)
		if openErr != nil {
			return nil, noop, fmt.Errorf("open %s: %w", ic.file, openErr)
		}

		return &ingest.ReaderSource{Reader: f, Separator: cfg.Ingest.Separator, Label: "file"},
			func() { _ = f.Close() }, nil
	}
}

// startMetricsServer serves Prometheus /metrics when an address is
// configured. The returned meter backs the run's instruments: the scrape
// registry's meter when serving, the OTLP/no-op meter otherwise.
func (ic *IngestCommand) startMetricsServer(
	ctx context.Context, providers observability.Providers,
) (metric.Meter, func(), error) {
	if ic.metricsAddr == "" {
		return providers.Meter, func() {}, nil
	}

	handler, meterProvider, err := observability.PrometheusHandler()
	if err != nil {
		return nil, nil, fmt.Errorf("start metrics endpoint: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	server := &http.Server{
		Addr:              ic.metricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		serveErr := server.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			providers.Logger.WarnContext(ctx, "metrics endpoint", slogErr(serveErr))
		}
	}()

	stop := func() {
		stopCtx := context.WithoutCancel(ctx)

		_ = server.Shutdown(stopCtx)
		_ = meterProvider.Shutdown(stopCtx)
	}

	return meterProvider.Meter("pathfang"), stop, nil
}

func (ic *IngestCommand) writeOutput(cmd *cobra.Command, result *ingest.Result, report stats.Report) error {
	out := cmd.OutOrStdout()

	var writeErr error

	switch ic.format {
	case formatYAML:
		writeErr = render.YAML(out, render.NewExport(result, report))
	case formatJSON:
		writeErr = render.JSON(out, render.NewExport(result, report))
	default:
		writeErr = render.Table(out, result, report)
	}

	if writeErr != nil {
		return writeErr
	}

	if ic.plotPath == "" {
		return nil
	}

	plotFile, err := os.Create(ic.plotPath)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer plotFile.Close()

	return render.Plot(plotFile, report)
}
