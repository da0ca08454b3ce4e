// Package config loads simkit configuration from environment variables into
// typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: an
// optional .env file is loaded once per process, then struct fields are
// populated from `env` tags. Each configuration type is parsed at most once
// and cached, so repeated Load calls across packages are cheap and
// consistent.
//
// # Usage
//
//	var settings config.Settings
//	if err := config.Load(&settings); err != nil { ... }
//
// Custom configuration structs work the same way:
//
//	type ExportConfig struct {
//	    Dir    string `env:"EXPORT_DIR" envDefault:"./out"`
//	    Pretty bool   `env:"EXPORT_PRETTY" envDefault:"false"`
//	}
//
// Reset exists for tests that need to reload after mutating the
// environment.
package config
