// Package observability provides OpenTelemetry tracing and metrics for
// tabkit demo runs and their pipeline stages.
//
// Providers are only installed when tracing is enabled; otherwise the
// global no-op providers make every span and instrument free.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("tabkit"))
//	defer tp.Shutdown(ctx)
//
// Runs and stages:
//
//	ctx, run := observability.StartRun(ctx, "students", metrics, log)
//	p := observability.Stage(pipeline.Filter(src, passed), "filter")
//	names, err := pipeline.Collect(ctx, p)
//	run.End(err)
//
// Each stage becomes a pipeline.stage span under the run's demo.run span,
// adds its record count to the tabkit.records counter and logs one debug
// line when it finishes.
package observability
