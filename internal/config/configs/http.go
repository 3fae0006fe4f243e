package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to; ShutdownTimeout bounds graceful
// shutdown.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 5005.
	Port            uint16        `env:"PORT" envDefault:"5005"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
