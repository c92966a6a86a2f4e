// Package prefs provides the small set of user preferences the dashboard
// persists between sessions, stored as flat key-value strings.
package prefs

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// persisted preference keys
const (
	KeyServerURL       = "server_url"
	KeyPostsPerPage    = "posts_per_page"
	KeyDailyLimit      = "daily_post_limit"
	KeyLimitResetDate  = "limit_reset_date"
	KeyLimitResetCount = "limit_reset_count" // vestigial: written on reset, never read
)

// DateStringLayout formats the limit-reset marker, e.g. "Mon Jun 15 2025".
// The marker expires naturally once the date rolls over; no explicit expiry.
const DateStringLayout = "Mon Jan 2 2006"

// preference bounds and defaults
const (
	DefaultPageSize   = 20
	DefaultDailyLimit = 3
	MinDailyLimit     = 1
	MaxDailyLimit     = 10
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the key-value capability preferences are persisted through
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Preferences is the typed view of the persisted keys
type Preferences struct {
	ServerURL      string
	PageSize       int
	DailyLimit     int
	LimitResetDate string
}

// Manager loads and saves preferences through an injected store
type Manager struct {
	store    Store
	defaults Preferences
}

// NewManager creates a preference manager. defaults supplies the fallback
// values used until the user saves their own; zero fields fall back to the
// package constants.
func NewManager(store Store, defaults Preferences) *Manager {
	if defaults.PageSize <= 0 {
		defaults.PageSize = DefaultPageSize
	}
	if defaults.DailyLimit == 0 {
		defaults.DailyLimit = DefaultDailyLimit
	}
	defaults.DailyLimit = clampDailyLimit(defaults.DailyLimit)
	defaults.LimitResetDate = ""
	return &Manager{store: store, defaults: defaults}
}

// Load reads all preference keys, substituting the configured defaults for
// missing or malformed values
func (m *Manager) Load(ctx context.Context) (Preferences, error) {
	p := m.defaults

	if v, err := m.store.GetSetting(ctx, KeyServerURL); err != nil {
		return p, fmt.Errorf("load server url: %w", err)
	} else if v != "" {
		p.ServerURL = v
	}

	if v, err := m.store.GetSetting(ctx, KeyPostsPerPage); err != nil {
		return p, fmt.Errorf("load page size: %w", err)
	} else if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
		p.PageSize = n
	}

	if v, err := m.store.GetSetting(ctx, KeyDailyLimit); err != nil {
		return p, fmt.Errorf("load daily limit: %w", err)
	} else if n, convErr := strconv.Atoi(v); convErr == nil {
		p.DailyLimit = clampDailyLimit(n)
	}

	v, err := m.store.GetSetting(ctx, KeyLimitResetDate)
	if err != nil {
		return p, fmt.Errorf("load reset marker: %w", err)
	}
	p.LimitResetDate = v

	return p, nil
}

// Save persists the mutable preferences. The reset marker is managed
// separately through ResetLimitToday.
func (m *Manager) Save(ctx context.Context, p Preferences) error {
	if p.ServerURL == "" {
		return fmt.Errorf("server url is required")
	}
	if p.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", p.PageSize)
	}
	if p.DailyLimit < MinDailyLimit || p.DailyLimit > MaxDailyLimit {
		return fmt.Errorf("daily limit must be between %d and %d, got %d", MinDailyLimit, MaxDailyLimit, p.DailyLimit)
	}

	if err := m.store.SetSetting(ctx, KeyServerURL, p.ServerURL); err != nil {
		return fmt.Errorf("save server url: %w", err)
	}
	if err := m.store.SetSetting(ctx, KeyPostsPerPage, strconv.Itoa(p.PageSize)); err != nil {
		return fmt.Errorf("save page size: %w", err)
	}
	if err := m.store.SetSetting(ctx, KeyDailyLimit, strconv.Itoa(p.DailyLimit)); err != nil {
		return fmt.Errorf("save daily limit: %w", err)
	}
	return nil
}

// ResetLimitToday stamps the reset marker with today's date string, forcing
// the derived generated-today count to zero until the next calendar day
func (m *Manager) ResetLimitToday(ctx context.Context, now time.Time) error {
	if err := m.store.SetSetting(ctx, KeyLimitResetDate, now.Format(DateStringLayout)); err != nil {
		return fmt.Errorf("save reset marker: %w", err)
	}
	if err := m.store.SetSetting(ctx, KeyLimitResetCount, "0"); err != nil {
		return fmt.Errorf("save reset count: %w", err)
	}
	return nil
}

func clampDailyLimit(n int) int {
	if n < MinDailyLimit {
		return MinDailyLimit
	}
	if n > MaxDailyLimit {
		return MaxDailyLimit
	}
	return n
}
