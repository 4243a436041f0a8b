package configs

// Telemetry configures OpenTelemetry trace export. An empty Endpoint turns
// export off.
type Telemetry struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `env:"EXPORTER_OTLP_INSECURE" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mesa-decision"`
}
