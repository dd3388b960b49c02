package version

import "os"

// ServiceName returns the service name reported in telemetry resources.
// It is taken from the 'ENTRYPOINT_SERVICE_NAME' environment variable and
// falls back to "entrypoint" when the variable is unset or empty.
func ServiceName() string {
	name := os.Getenv("ENTRYPOINT_SERVICE_NAME")
	if name == "" {
		return "entrypoint"
	}

	return name
}
