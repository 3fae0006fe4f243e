package configs

import "time"

// Auth configures password hashing and bearer tokens. JWTSecret has no
// default; the service refuses to start without it.
type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
