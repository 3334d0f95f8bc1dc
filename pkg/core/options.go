package core

import (
	"github.com/oneconcern/overrides/pkg/model"
	"go.uber.org/zap"
)

// DiscoveryObserver is notified whenever a record is found while listing overrides
type DiscoveryObserver func(kind model.Kind, project string)

// Option sets options for the override and option tag stores
type Option func(*Settings)

// Settings defines various settings for core features
type Settings struct {
	logger   *zap.Logger
	observer DiscoveryObserver
}

// WithLogger sets the logger. It defaults to a no-op logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets an observer for discovered records.
//
// The default observer logs each discovery at debug level.
func WithObserver(observer DiscoveryObserver) Option {
	return func(s *Settings) {
		s.observer = observer
	}
}

func defaultSettings() Settings {
	return Settings{
		logger: zap.NewNop(),
	}
}

func settingsWithDefaults(opts []Option) Settings {
	settings := defaultSettings()
	for _, apply := range opts {
		apply(&settings)
	}
	if settings.observer == nil {
		logger := settings.logger
		settings.observer = func(kind model.Kind, project string) {
			logger.Debug("discovered override",
				zap.Stringer("kind", kind),
				zap.String("project", project),
			)
		}
	}
	return settings
}
