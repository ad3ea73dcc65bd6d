// Command tabkit runs the employee, product and student table demos and
// prints their results as text, JSON or YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/kbukum/tabkit/bootstrap"
	"github.com/kbukum/tabkit/config"
	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/demo"
	"github.com/kbukum/tabkit/logger"
	"github.com/kbukum/tabkit/observability"
	"github.com/kbukum/tabkit/render"
	"github.com/kbukum/tabkit/validation"
	"github.com/kbukum/tabkit/version"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		fmt.Fprintf(stderr, "tabkit: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	if f.version {
		fmt.Fprintf(stdout, "tabkit %s\n", version.Get())
		return exitOK
	}

	runID := uuid.NewString()
	if f.runID != "" {
		id, err := validation.ParseUUID("run-id", f.runID)
		if err != nil {
			fmt.Fprintf(stderr, "tabkit: %v\n", err)
			return exitUsage
		}
		runID = id.String()
	}

	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "tabkit: %v\n", err)
		return exitFailure
	}
	f.apply(fs, cfg)
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "tabkit: invalid configuration: %v\n", err)
		return exitFailure
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, stderr)
	logger.SetGlobalLogger(log)

	app, err := bootstrap.NewApp(cfg, bootstrap.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "tabkit: %v\n", err)
		return exitFailure
	}

	ctx = logger.ContextWithRunID(ctx, runID)
	log.WithContext(ctx).Debug("tabkit starting", version.Get().LogFields())
	if err := execute(ctx, app, &f, stdout); err != nil {
		log.WithContext(ctx).WithError(err).Error("run failed")
		return exitFailure
	}
	return exitOK
}

// execute loads the data, runs the selected demos inside the app lifecycle
// and renders the report.
func execute(ctx context.Context, app *bootstrap.App[*config.AppConfig], f *flags, stdout io.Writer) error {
	cfg := app.Cfg

	names, err := demo.Resolve(f.demos...)
	if err != nil {
		return err
	}
	renderer, err := render.New(cfg.Output.Format, cfg.Output.Locale)
	if err != nil {
		return err
	}
	data, err := dataset.LoadSet(dataset.Paths{
		Employees: cfg.Datasets.Employees,
		Products:  cfg.Datasets.Products,
		Students:  cfg.Datasets.Students,
	})
	if err != nil {
		return err
	}

	runner := &demo.Runner{
		Data:     data,
		MinMarks: cfg.Students.MinMarks,
		Workers:  f.workers,
		Log:      app.Logger,
	}
	if cfg.Tracing.Enabled {
		app.OnStart(tracingHook(app, runner))
	}

	app.Logger.WithContext(ctx).Info("running demos", logger.Fields(
		"demos", names,
		"format", cfg.Output.Format,
	))

	return app.RunTask(ctx, func(ctx context.Context) error {
		report, err := runner.Run(ctx, names...)
		if err != nil {
			return err
		}
		return renderer.Render(stdout, report)
	})
}

// tracingHook installs OTLP trace and metric providers, registers their
// shutdown as stop hooks and gives the runner its instruments.
func tracingHook(app *bootstrap.App[*config.AppConfig], runner *demo.Runner) bootstrap.Hook {
	return func(ctx context.Context) error {
		cfg := app.Cfg
		tcfg := observability.DefaultTracerConfig(cfg.Name)
		tcfg.ServiceVersion = cfg.Version
		tcfg.Environment = cfg.Environment
		tcfg.Endpoint = cfg.Tracing.Endpoint
		tcfg.Insecure = cfg.Tracing.Insecure
		tcfg.SampleRate = cfg.Tracing.SampleRate

		tp, err := observability.InitTracer(ctx, tcfg)
		if err != nil {
			return err
		}
		app.OnStop(flushOnly(app.Logger, "tracer", tp.Shutdown))

		mcfg := observability.DefaultMeterConfig(cfg.Name)
		mcfg.ServiceVersion = tcfg.ServiceVersion
		mcfg.Environment = cfg.Environment
		mcfg.Endpoint = cfg.Tracing.Endpoint
		mcfg.Insecure = cfg.Tracing.Insecure

		mp, err := observability.InitMeter(ctx, &mcfg)
		if err != nil {
			return err
		}
		app.OnStop(flushOnly(app.Logger, "meter", mp.Shutdown))

		runner.Metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		return err
	}
}

// flushOnly logs a failed provider shutdown instead of failing a run whose
// results were already written.
func flushOnly(log *logger.Logger, name string, shutdown func(context.Context) error) bootstrap.Hook {
	return func(ctx context.Context) error {
		if err := shutdown(ctx); err != nil {
			log.Warn("telemetry flush failed", logger.ErrorFields(name, err))
		}
		return nil
	}
}
