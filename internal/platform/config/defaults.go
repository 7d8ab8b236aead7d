package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultSaveWorkers = 4
	defaultEventBuffer = 16

	defaultCommandRate  = 20
	defaultCommandBurst = 10
)

// defaults are loaded before base.yaml so a sparse file still yields a
// runnable configuration.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          DriverSQLite,
		"store.path":                            "tracker.db",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"tracker.save_workers":  defaultSaveWorkers,
		"tracker.event_buffer":  defaultEventBuffer,
		"tracker.command_rate":  defaultCommandRate,
		"tracker.command_burst": defaultCommandBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "initiative-tracker",
	}
}
