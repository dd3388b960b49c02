package telemetry_test

import (
	"testing"

	"github.com/anoideaopen/entrypoint/core/telemetry"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
)

func TestPackUnpackMetadata(t *testing.T) {
	carrier := propagation.MapCarrier{}
	carrier.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	carrier.Set("baggage", "tenant=acme")

	metadata, err := telemetry.PackToMetadata(carrier)
	require.NoError(t, err)
	require.Len(t, metadata, 2)
	require.Equal(t, []byte("tenant=acme"), metadata["baggage"])

	back, err := telemetry.UnpackMetadata(metadata)
	require.NoError(t, err)
	require.Equal(t, carrier, back)
}

func TestUnpackMetadataEmpty(t *testing.T) {
	back, err := telemetry.UnpackMetadata(nil)
	require.NoError(t, err)
	require.Empty(t, back.Keys())
}
