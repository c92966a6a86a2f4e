package prefs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krawin/postdeck/pkg/prefs/mocks"
)

func TestManager_Load(t *testing.T) {
	t.Run("defaults when store is empty", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		p, err := m.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "http://automation:5678", p.ServerURL)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Equal(t, DefaultDailyLimit, p.DailyLimit)
		assert.Empty(t, p.LimitResetDate)
	})

	t.Run("configured defaults replace package constants", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678", PageSize: 40, DailyLimit: 7})
		p, err := m.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 40, p.PageSize)
		assert.Equal(t, 7, p.DailyLimit)
	})

	t.Run("stored values win over defaults", func(t *testing.T) {
		values := map[string]string{
			KeyServerURL:      "http://other:9999",
			KeyPostsPerPage:   "50",
			KeyDailyLimit:     "5",
			KeyLimitResetDate: "Mon Jun 16 2025",
		}
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return values[key], nil },
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		p, err := m.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "http://other:9999", p.ServerURL)
		assert.Equal(t, 50, p.PageSize)
		assert.Equal(t, 5, p.DailyLimit)
		assert.Equal(t, "Mon Jun 16 2025", p.LimitResetDate)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		values := map[string]string{KeyPostsPerPage: "lots", KeyDailyLimit: "-3"}
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return values[key], nil },
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		p, err := m.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Equal(t, MinDailyLimit, p.DailyLimit) // clamped, not default
	})

	t.Run("stored daily limit clamped to bounds", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) {
				if key == KeyDailyLimit {
					return "99", nil
				}
				return "", nil
			},
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		p, err := m.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, MaxDailyLimit, p.DailyLimit)
	})

	t.Run("store error propagates", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) {
				return "", errors.New("db locked")
			},
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		_, err := m.Load(context.Background())
		require.Error(t, err)
	})
}

func TestManager_Save(t *testing.T) {
	t.Run("writes all mutable keys", func(t *testing.T) {
		saved := map[string]string{}
		store := &mocks.StoreMock{
			SetSettingFunc: func(ctx context.Context, key, value string) error {
				saved[key] = value
				return nil
			},
		}

		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
		err := m.Save(context.Background(), Preferences{ServerURL: "http://new:5678", PageSize: 30, DailyLimit: 7})
		require.NoError(t, err)

		assert.Equal(t, "http://new:5678", saved[KeyServerURL])
		assert.Equal(t, "30", saved[KeyPostsPerPage])
		assert.Equal(t, "7", saved[KeyDailyLimit])
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		store := &mocks.StoreMock{}
		m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})

		assert.Error(t, m.Save(context.Background(), Preferences{ServerURL: "", PageSize: 20, DailyLimit: 3}))
		assert.Error(t, m.Save(context.Background(), Preferences{ServerURL: "u", PageSize: 0, DailyLimit: 3}))
		assert.Error(t, m.Save(context.Background(), Preferences{ServerURL: "u", PageSize: 20, DailyLimit: 0}))
		assert.Error(t, m.Save(context.Background(), Preferences{ServerURL: "u", PageSize: 20, DailyLimit: 11}))
		assert.Empty(t, store.SetSettingCalls())
	})
}

func TestManager_ResetLimitToday(t *testing.T) {
	saved := map[string]string{}
	store := &mocks.StoreMock{
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			saved[key] = value
			return nil
		},
	}

	m := NewManager(store, Preferences{ServerURL: "http://automation:5678"})
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	require.NoError(t, m.ResetLimitToday(context.Background(), now))

	assert.Equal(t, "Sun Jun 15 2025", saved[KeyLimitResetDate])
	assert.Equal(t, "0", saved[KeyLimitResetCount])
}
