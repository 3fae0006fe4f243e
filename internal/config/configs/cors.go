package configs

// CORS lists the browser origins allowed to call the API.
type CORS struct {
	Origins          []string `env:"ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	AllowCredentials bool     `env:"ALLOW_CREDENTIALS" envDefault:"true"`
}
