// Package observability provides OpenTelemetry tracing and metrics
// integration for outbound HTTP clients.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "client.request")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewClientMetrics(observability.Meter("my-service"))
//	metrics.RecordRequest(ctx, "GET", 200, duration)
package observability
