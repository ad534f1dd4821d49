package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment variables.
//
// The first call loads the default .env file if one exists, then every call
// parses environment variables into the struct based on `env:"..."` field tags.
// Fields tagged `required` produce an error naming the missing variable, which
// is how provider credentials surface misconfiguration at process start instead
// of at first send.
//
// Example:
//
//	type EmailConfig struct {
//		Provider string `env:"EMAIL_PROVIDER" envDefault:"smtp"`
//		APIKey   string `env:"RESEND_API_KEY"`
//	}
//
//	var cfg EmailConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; missing files are not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use for configurations the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
