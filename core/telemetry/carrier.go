package telemetry

import (
	"go.opentelemetry.io/otel/propagation"
)

// PackToMetadata prepares carrier for sending in transport metadata
func PackToMetadata(traceCarrier propagation.MapCarrier) (map[string][]byte, error) {
	metadata := make(map[string][]byte)
	for _, k := range traceCarrier.Keys() {
		rawValue := []byte(traceCarrier.Get(k))
		metadata[k] = rawValue
	}

	return metadata, nil
}

// UnpackMetadata unpacks transport metadata into carrier
func UnpackMetadata(metadata map[string][]byte) (propagation.MapCarrier, error) {
	traceCarrier := propagation.MapCarrier{}
	for k, v := range metadata {
		traceCarrier.Set(k, string(v))
	}

	return traceCarrier, nil
}
