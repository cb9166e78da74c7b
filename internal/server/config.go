package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/region-decoder/internal/decoder"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel          = "REGION_MCP_LOG_LEVEL"
	EnvForceFallback     = "REGION_MCP_FORCE_FALLBACK"
	EnvMaxRetainedPixels = "REGION_MCP_MAX_RETAINED_PIXELS"
)

// Config holds the server settings.
type Config struct {
	// Decoder selects the backend for every image the server opens.
	Decoder decoder.Config

	// Debug enables decoder lifecycle logging.
	Debug bool
}

// ConfigFromEnv builds a Config from environment variables, looked up with
// getenv (usually os.Getenv). Unset variables keep their defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	var cfg Config

	cfg.Debug = strings.EqualFold(getenv(EnvLogLevel), "debug")

	if v := getenv(EnvForceFallback); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvForceFallback, v, err)
		}
		cfg.Decoder.ForceFallback = b
	}

	if v := getenv(EnvMaxRetainedPixels); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s %q: want a non-negative integer", EnvMaxRetainedPixels, v)
		}
		cfg.Decoder.MaxRetainedPixels = n
	}

	return cfg, nil
}
