package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env holds ambient settings. None of them change how the game plays.
type Env struct {
	LogLevel string // LOG_LEVEL, defaults to "info"
	LogFile  string // LOG_FILE, empty means the entry point decides
	Seed     int64  // MEMORY_SEED, 0 means seed from the clock
}

// LoadEnv reads an optional .env file from the working directory and then the
// process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) (Env, error) {
	env := Env{
		LogLevel: getEnv(getenv, "LOG_LEVEL", "info"),
		LogFile:  getenv("LOG_FILE"),
	}
	if v := getenv("MEMORY_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("invalid MEMORY_SEED %q: %w", v, err)
		}
		env.Seed = seed
	}
	return env, nil
}

// Rand returns the shuffle source for a session. A zero Seed is replaced by
// one taken from the clock, so e.Seed always names the board afterwards.
func (e *Env) Rand() *rand.Rand {
	if e.Seed == 0 {
		e.Seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(e.Seed))
}

func getEnv(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}
