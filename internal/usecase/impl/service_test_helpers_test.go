package impl

import (
	"io"
	"log/slog"

	"pklradar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			DefaultRadiusM:  300,
			CooldownMinutes: 30,
		},
		Search: &config.SearchConfig{
			FuzzyThreshold: 0.45,
		},
	}
}
