package calendar

import "context"

// SettingsRepository describes calendar settings persistence.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, bool, error)
	Save(ctx context.Context, s Settings) error
}
