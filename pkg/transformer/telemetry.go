package transformer

// DefaultTelemetryLabels returns the default pod labels for telemetry purposes.
func DefaultTelemetryLabels() map[string]string {
	return map[string]string{
		SDKTypeLabel: SDKTypeDefault,
	}
}
