package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/viant/afs"
	"github.com/viant/fixture"
	"github.com/viant/fixture/tracing"
	"gopkg.in/yaml.v3"
)

type options struct {
	configURL   string
	function    string
	count       int
	scenarioURL string
	list        bool
	logLevel    int
	logDev      bool
	logEncoder  string
	traceFile   string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flags := pflag.NewFlagSet("fixture", pflag.ContinueOnError)
	flags.StringVar(&opts.configURL, "config", "", "URL of a YAML config file")
	flags.StringVar(&opts.function, "func", "", "fixture function to call (default from config)")
	flags.IntVar(&opts.count, "count", 0, "number of values to generate (default from config)")
	flags.StringVar(&opts.scenarioURL, "scenario", "", "URL of a YAML scenario to bind and print")
	flags.BoolVar(&opts.list, "list", false, "list exported fixture functions")
	flags.IntVar(&opts.logLevel, "log-level", 0, "log verbosity")
	flags.BoolVar(&opts.logDev, "log-dev", false, "use development logger")
	flags.StringVar(&opts.logEncoder, "log-encoder", "", "log encoder: console or json")
	flags.StringVar(&opts.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	err := flags.Parse(args)
	return opts, flags, err
}

func loadConfig(ctx context.Context, opts *options, flags *pflag.FlagSet) (*fixture.Config, error) {
	cfg := fixture.DefaultConfig()
	if opts.configURL != "" {
		var err error
		if cfg, err = fixture.LoadConfig(ctx, afs.New(), opts.configURL); err != nil {
			return nil, err
		}
	}
	if flags.Changed("func") {
		cfg.Generate.Function = opts.function
	}
	if flags.Changed("count") {
		cfg.Generate.Count = opts.count
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-dev") {
		cfg.Log.Dev = opts.logDev
	}
	if flags.Changed("log-encoder") {
		cfg.Log.Encoder = opts.logEncoder
	}
	if opts.traceFile != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.OutputFile = opts.traceFile
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, opts, flags)
	if err != nil {
		return err
	}
	logger, err := newZapLogger(cfg.Log.Dev, cfg.Log.Level, cfg.Log.Encoder)
	if err != nil {
		return err
	}

	srvOptions := []fixture.Option{fixture.WithConfig(cfg), fixture.WithLogger(logger)}
	if cfg.Tracing.Enabled {
		srvOptions = append(srvOptions, fixture.WithTracing(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile))
	}
	srv, err := fixture.New(srvOptions...)
	if cfg.Tracing.Enabled {
		defer func() {
			if err := tracing.Shutdown(ctx); err != nil {
				logger.Error(err, "failed to shutdown tracing")
			}
		}()
	}
	if err != nil {
		return err
	}

	switch {
	case opts.list:
		for _, name := range srv.Exports().Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	case opts.scenarioURL != "":
		return bindScenario(ctx, srv, opts.scenarioURL, out, logger)
	}

	samples, err := srv.Generate(ctx, cfg.Generate.Function, cfg.Generate.Count)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(out)
	for _, sample := range samples {
		if err := encoder.Encode(sample); err != nil {
			return err
		}
	}
	return nil
}

func bindScenario(ctx context.Context, srv *fixture.Service, URL string, out io.Writer, logger logr.Logger) error {
	scenario, err := srv.Scenarios().Load(ctx, URL)
	if err != nil {
		return err
	}
	binding, err := srv.Scenarios().Bind(ctx, scenario)
	if err != nil {
		return err
	}
	logger.Info("scenario bound", "scenario", binding.Scenario, "requests", len(binding.Requests))
	encoder := yaml.NewEncoder(out)
	defer encoder.Close()
	return encoder.Encode(binding)
}
