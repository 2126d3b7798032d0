package configs

import "time"

// HTTP defines configuration for the HTTP server. The catalog, serving,
// event and stats APIs share a single listener.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds how long in-flight requests may run after a
	// termination signal arrives.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
