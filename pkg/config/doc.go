// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv (to read .env files) and
// github.com/caarlos0/env/v11 (to parse the environment into tagged structs).
// Each configuration type is parsed once per process and cached; Reset clears
// the cache, which is mostly useful in tests.
//
//	var cfg struct {
//		APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3333"`
//	}
//	config.MustLoad(&cfg)
package config
