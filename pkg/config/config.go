package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings is the library-wide configuration consumed by products built on
// simkit. All fields have working defaults; none are required.
type Settings struct {
	// DefaultSeed seeds generation runs when the caller does not provide
	// an explicit seed.
	DefaultSeed int64 `env:"SIMKIT_DEFAULT_SEED" envDefault:"0"`

	// DefaultCohortSize is the cohort size used when a product does not
	// specify one.
	DefaultCohortSize int `env:"SIMKIT_COHORT_SIZE" envDefault:"100"`

	// MaxRetries bounds per-entity retries in cohort generation.
	MaxRetries int `env:"SIMKIT_MAX_RETRIES" envDefault:"3"`

	// LogLevel is one of debug/info/warn/error.
	LogLevel string `env:"SIMKIT_LOG_LEVEL" envDefault:"info"`

	// LogFormat is json or text.
	LogFormat string `env:"SIMKIT_LOG_FORMAT" envDefault:"json"`
}

var (
	mu     sync.Mutex
	cache  = make(map[string]any)
	dotenv sync.Once
)

// Load populates v from the environment, reading a .env file first if one
// exists. Each distinct struct type is parsed once per process; later calls
// return the cached copy.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsing, err)
	}
	cache[key] = *v
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reset drops all cached configuration. Intended for tests that mutate the
// environment between loads.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[string]any)
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
