// Package bootstrap runs a finite tabkit task with a uniform lifecycle:
// defaults and validation of the typed config, logger initialization,
// start hooks, signal-driven cancellation and stop hooks.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStart(initTracing)
//	app.OnStop(flushTracing)
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return runDemos(ctx)
//	})
//
// SIGINT and SIGTERM cancel the task context; stop hooks still run with
// their own timeout.
package bootstrap
