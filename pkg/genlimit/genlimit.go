// Package genlimit enforces the daily content-generation limit. The
// generated-today count is never persisted as a counter: it is re-derived on
// every refresh, primarily from the local post archive and, while the archive
// is still empty, from two capped queries against the automation server.
package genlimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/prefs"
	"github.com/krawin/postdeck/pkg/workflow"
)

// ErrLimitReached is returned when generation is requested at or above the
// daily limit; callers surface it as a warning, not an error
var ErrLimitReached = errors.New("daily generation limit reached")

// legacyPageCap bounds the two fallback queries. If more posts than the cap
// were created today the derived count undercounts; acknowledged and not
// corrected here, the archive-backed count has no such cap.
const legacyPageCap = 50

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// API is the slice of the workflow client the limiter consumes
type API interface {
	GetPosts(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error)
	GenerateNow(ctx context.Context) error
}

// Archive counts posts mirrored into local storage
type Archive interface {
	CountPosts(ctx context.Context) (int, error)
	CountPostsSince(ctx context.Context, since time.Time) (int, error)
}

// Settings reads persisted preference values
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
}

// Config holds limiter settings
type Config struct {
	DailyLimit  int           // default 3
	ReloadDelay time.Duration // delay before the post-generation reload, default 3s
	OnReload    func()        // invoked after the reload delay, may be nil
	Now         func() time.Time
}

// Limiter computes whether generation is allowed today and triggers it
type Limiter struct {
	api         API
	archive     Archive
	settings    Settings
	reloadDelay time.Duration
	onReload    func()
	now         func() time.Time

	mu             sync.Mutex
	dailyLimit     int
	generatedToday int
}

// NewLimiter creates a daily generation limiter
func NewLimiter(api API, archive Archive, settings Settings, cfg Config) *Limiter {
	if cfg.DailyLimit == 0 {
		cfg.DailyLimit = prefs.DefaultDailyLimit
	}
	if cfg.ReloadDelay == 0 {
		cfg.ReloadDelay = 3 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Limiter{
		api:         api,
		archive:     archive,
		settings:    settings,
		dailyLimit:  cfg.DailyLimit,
		reloadDelay: cfg.ReloadDelay,
		onReload:    cfg.OnReload,
		now:         cfg.Now,
	}
}

// CountToday counts posts created on the same local calendar date as now.
// Timestamps are truncated to the date (hours, minutes, seconds, fractions
// zeroed) before comparison, so 00:00:00.001 and 23:59:59.999 both count.
func CountToday(posts []domain.Post, now time.Time) int {
	today := startOfDay(now)
	count := 0
	for _, p := range posts {
		if startOfDay(p.CreatedAt.In(now.Location())).Equal(today) {
			count++
		}
	}
	return count
}

// Refresh re-derives the generated-today count. The manual reset marker, when
// stamped with today's date string, forces the count to zero regardless of
// actual post volume; it stops matching by itself after midnight.
func (l *Limiter) Refresh(ctx context.Context) error {
	now := l.now()

	marker, err := l.settings.GetSetting(ctx, prefs.KeyLimitResetDate)
	if err != nil {
		return fmt.Errorf("read reset marker: %w", err)
	}
	if marker == now.Format(prefs.DateStringLayout) {
		l.setCount(0)
		return nil
	}

	count, err := l.countFromArchive(ctx, now)
	if err == nil {
		l.setCount(count)
		return nil
	}
	lgr.Printf("[DEBUG] archive count unavailable, using capped queries: %v", err)

	count, err = l.countFromQueries(ctx, now)
	if err != nil {
		return fmt.Errorf("derive generated-today count: %w", err)
	}
	l.setCount(count)
	return nil
}

// countFromArchive uses the mirrored post archive, which has no page cap
func (l *Limiter) countFromArchive(ctx context.Context, now time.Time) (int, error) {
	total, err := l.archive.CountPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count archive posts: %w", err)
	}
	if total == 0 {
		return 0, errors.New("archive is empty")
	}
	count, err := l.archive.CountPostsSince(ctx, startOfDay(now))
	if err != nil {
		return 0, fmt.Errorf("count archive posts since midnight: %w", err)
	}
	return count, nil
}

// countFromQueries combines the capped history and pending queries. They
// jointly cover every post created today only up to their page caps.
func (l *Limiter) countFromQueries(ctx context.Context, now time.Time) (int, error) {
	history, err := l.api.GetPosts(ctx, workflow.StatusHistory, legacyPageCap)
	if err != nil {
		return 0, fmt.Errorf("get history posts: %w", err)
	}
	pending, err := l.api.GetPosts(ctx, workflow.StatusPending, legacyPageCap)
	if err != nil {
		return 0, fmt.Errorf("get pending posts: %w", err)
	}
	return CountToday(append(history, pending...), now), nil
}

// CanGenerate reports whether another generation is allowed today
func (l *Limiter) CanGenerate() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generatedToday < l.dailyLimit
}

// GenerateNow triggers generation on the automation server. It guards the
// limit itself even when the caller already checked: at the limit it makes no
// network call and returns ErrLimitReached. The local count is incremented
// only after the trigger is confirmed, and a full reload is scheduled after
// the reload delay to let the remote pipeline persist its result.
func (l *Limiter) GenerateNow(ctx context.Context) error {
	if !l.CanGenerate() {
		return ErrLimitReached
	}

	if err := l.api.GenerateNow(ctx); err != nil {
		return fmt.Errorf("trigger generation: %w", err)
	}

	l.mu.Lock()
	l.generatedToday++
	l.mu.Unlock()

	if l.onReload != nil {
		time.AfterFunc(l.reloadDelay, l.onReload)
	}
	return nil
}

// Used returns the effective generated-today count, capped at the limit for
// display
func (l *Limiter) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.generatedToday > l.dailyLimit {
		return l.dailyLimit
	}
	return l.generatedToday
}

// Remaining returns how many generations are left today
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r := l.dailyLimit - l.generatedToday; r > 0 {
		return r
	}
	return 0
}

// Limit returns the configured daily limit
func (l *Limiter) Limit() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dailyLimit
}

// SetLimit applies an updated daily limit, clamped to the allowed range
func (l *Limiter) SetLimit(limit int) {
	if limit < prefs.MinDailyLimit {
		limit = prefs.MinDailyLimit
	}
	if limit > prefs.MaxDailyLimit {
		limit = prefs.MaxDailyLimit
	}
	l.mu.Lock()
	l.dailyLimit = limit
	l.mu.Unlock()
}

func (l *Limiter) setCount(n int) {
	l.mu.Lock()
	l.generatedToday = n
	l.mu.Unlock()
}

// startOfDay truncates a timestamp to its local calendar date
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
