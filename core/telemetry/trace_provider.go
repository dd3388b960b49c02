package telemetry

import (
	"context"
	"fmt"

	"github.com/anoideaopen/entrypoint/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InstallTraceProvider installs the global trace provider based on the
// http otlp exporter. An empty endpoint installs a noop provider. An
// empty serviceName falls back to version.ServiceName().
func InstallTraceProvider(endpoint, serviceName string) {
	installTraceProvider(endpoint, serviceName, "")
}

// InstallTraceProviderWithTLS is like InstallTraceProvider for collectors
// behind TLS; caCertsBase64 carries the PEM CA bundle, base64 encoded.
func InstallTraceProviderWithTLS(endpoint, serviceName, caCertsBase64 string) {
	installTraceProvider(endpoint, serviceName, caCertsBase64)
}

func installTraceProvider(endpoint, serviceName, caCertsBase64 string) {
	var tracerProvider trace.TracerProvider

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if len(endpoint) == 0 {
		tracerProvider = trace.NewNoopTracerProvider()
		return
	}

	if len(serviceName) == 0 {
		serviceName = version.ServiceName()
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
	}

	if len(caCertsBase64) != 0 {
		tlsConfig, err := getTLSConfig(caCertsBase64)
		if err != nil {
			fmt.Printf("creating TLS config: %v", err)
			return
		}

		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsConfig))
	} else {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		fmt.Printf("creating OTLP trace exporter: %v", err)
		return
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.ModuleVersion())))
	if err != nil {
		fmt.Printf("creating resource: %v", err)
		return
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))
}
