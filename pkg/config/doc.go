// Package config loads environment-driven configuration structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type GitHubConfig struct {
//		BaseURL string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
//		Token   string        `env:"GITHUB_TOKEN"`
//		Timeout time.Duration `env:"GITHUB_API_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg GitHubConfig
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// Each struct type is parsed once per process and served from a cache
// afterwards. Tests that change the environment call ResetCache first.
package config
