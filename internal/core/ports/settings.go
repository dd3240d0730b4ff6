package ports

import "github.com/leashdev/leash/internal/core/domain"

// SettingsSource exposes the current inbound configuration. Reads are cheap
// and safe from any goroutine; the returned value is a snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsSource interface {
	Current() domain.Settings
}
