package cli

import (
	"os"
	"strings"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// envConfig holds defaults read from the environment. Flags override them.
type envConfig struct {
	fallback colour.FallbackStrategy
	preview  string
	noColour bool
}

// loadEnvConfig reads SHADEFORGE_FALLBACK, SHADEFORGE_PREVIEW and NO_COLOR.
// Unrecognised values keep the defaults.
func loadEnvConfig() envConfig {
	cfg := envConfig{
		fallback: colour.FallbackNeutral,
		preview:  previewAuto,
	}

	if v := os.Getenv("SHADEFORGE_FALLBACK"); v != "" {
		if f, err := colour.ParseFallbackStrategy(strings.ToLower(v)); err == nil {
			cfg.fallback = f
		}
	}

	switch v := strings.ToLower(os.Getenv("SHADEFORGE_PREVIEW")); v {
	case previewAuto, previewAlways, previewNever:
		cfg.preview = v
	}

	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv("NO_COLOR") != "" {
		cfg.noColour = true
	}

	return cfg
}
