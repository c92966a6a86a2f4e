package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krawin/postdeck/pkg/domain"
)

func TestRepositories_Integration(t *testing.T) {
	// setup test database
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	// test ping
	require.NoError(t, repos.Ping(context.Background()))

	t.Run("post operations", func(t *testing.T) {
		testPost := domain.Post{
			ID:             "post-1",
			Content:        "Hiring is broken.\n\nHere is why.",
			TopicPillar:    "recruitment",
			ApprovalStatus: domain.ApprovalPending,
			PostStatus:     domain.PostUnpublished,
			CreatedAt:      time.Now().Add(-time.Hour),
			EstimatedWords: 6,
		}

		// upsert post
		err := repos.Post.UpsertPost(context.Background(), testPost)
		require.NoError(t, err)

		// get post
		retrieved, err := repos.Post.GetPost(context.Background(), testPost.ID)
		require.NoError(t, err)
		assert.Equal(t, testPost.Content, retrieved.Content)
		assert.Equal(t, testPost.TopicPillar, retrieved.TopicPillar)
		assert.Equal(t, domain.ApprovalPending, retrieved.ApprovalStatus)

		// upsert again with new status, same id
		testPost.ApprovalStatus = domain.ApprovalApproved
		testPost.PostStatus = domain.PostPublished
		err = repos.Post.UpsertPost(context.Background(), testPost)
		require.NoError(t, err)

		updated, err := repos.Post.GetPost(context.Background(), testPost.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalApproved, updated.ApprovalStatus)
		assert.Equal(t, domain.PostPublished, updated.PostStatus)

		// still a single row after the conflict update
		count, err := repos.Post.CountPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("count posts since", func(t *testing.T) {
		now := time.Now()
		for i, age := range []time.Duration{time.Hour, 26 * time.Hour, 50 * time.Hour} {
			post := domain.Post{
				ID:             fmt.Sprintf("aged-%d", i),
				Content:        "content",
				TopicPillar:    "leadership",
				ApprovalStatus: domain.ApprovalPending,
				PostStatus:     domain.PostUnpublished,
				CreatedAt:      now.Add(-age),
			}
			require.NoError(t, repos.Post.UpsertPost(context.Background(), post))
		}

		count, err := repos.Post.CountPostsSince(context.Background(), now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, count, "one aged post plus the post from the previous subtest")
	})

	t.Run("setting operations", func(t *testing.T) {
		// missing key returns empty string without error
		val, err := repos.Setting.GetSetting(context.Background(), "missing")
		require.NoError(t, err)
		assert.Empty(t, val)

		// set and get
		require.NoError(t, repos.Setting.SetSetting(context.Background(), "daily_post_limit", "5"))
		val, err = repos.Setting.GetSetting(context.Background(), "daily_post_limit")
		require.NoError(t, err)
		assert.Equal(t, "5", val)

		// overwrite
		require.NoError(t, repos.Setting.SetSetting(context.Background(), "daily_post_limit", "7"))
		val, err = repos.Setting.GetSetting(context.Background(), "daily_post_limit")
		require.NoError(t, err)
		assert.Equal(t, "7", val)

		// all settings ordered by key
		require.NoError(t, repos.Setting.SetSetting(context.Background(), "server_url", "http://localhost:5678"))
		all, err := repos.Setting.GetAllSettings(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "daily_post_limit", all[0].Key)
		assert.Equal(t, "server_url", all[1].Key)
		assert.False(t, all[0].UpdatedAt.IsZero())
	})
}

func TestPostRepository_PillarStats(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	seed := []struct {
		pillar   string
		approval domain.ApprovalStatus
	}{
		{"recruitment", domain.ApprovalApproved},
		{"recruitment", domain.ApprovalApproved},
		{"recruitment", domain.ApprovalRejected},
		{"recruitment", domain.ApprovalPending},
		{"leadership", domain.ApprovalRejected},
	}
	for i, s := range seed {
		post := domain.Post{
			ID:             fmt.Sprintf("p-%d", i),
			Content:        "content",
			TopicPillar:    s.pillar,
			ApprovalStatus: s.approval,
			PostStatus:     domain.PostUnpublished,
			CreatedAt:      time.Now(),
		}
		require.NoError(t, repos.Post.UpsertPost(context.Background(), post))
	}

	stats, err := repos.Post.PillarStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// ordered by total descending
	assert.Equal(t, "recruitment", stats[0].TopicPillar)
	assert.Equal(t, 4, stats[0].Total)
	assert.Equal(t, 2, stats[0].Approved)
	assert.Equal(t, 1, stats[0].Rejected)
	assert.InDelta(t, 66.67, stats[0].ApprovalRate, 0.01, "pending posts excluded from the rate")

	assert.Equal(t, "leadership", stats[1].TopicPillar)
	assert.Equal(t, 1, stats[1].Total)
	assert.Zero(t, stats[1].Approved)
	assert.InDelta(t, 0.0, stats[1].ApprovalRate, 0.01)
}

func TestPostRepository_DailyActivity(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	now := time.Now()
	posts := []domain.Post{
		{ID: "today-1", CreatedAt: now, ApprovalStatus: domain.ApprovalApproved, PostStatus: domain.PostPublished},
		{ID: "today-2", CreatedAt: now, ApprovalStatus: domain.ApprovalRejected, PostStatus: domain.PostUnpublished},
		{ID: "two-days-ago", CreatedAt: now.AddDate(0, 0, -2), ApprovalStatus: domain.ApprovalPending, PostStatus: domain.PostUnpublished},
	}
	for _, p := range posts {
		p.TopicPillar = "recruitment"
		require.NoError(t, repos.Post.UpsertPost(context.Background(), p))
	}

	activity, err := repos.Post.DailyActivity(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, activity, 7, "window is zero-filled to the full length")

	// oldest first, today last
	today := activity[6]
	assert.Equal(t, now.Format("2006-01-02"), today.Day)
	assert.Equal(t, 2, today.Generated)
	assert.Equal(t, 1, today.Published)
	assert.Equal(t, 1, today.Rejected)

	twoDaysAgo := activity[4]
	assert.Equal(t, 1, twoDaysAgo.Generated)
	assert.Zero(t, twoDaysAgo.Published)

	yesterday := activity[5]
	assert.Zero(t, yesterday.Generated, "empty day stays in the window with zero counts")
}

func TestPostRepository_GetPostMissing(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	_, err = repos.Post.GetPost(context.Background(), "nope")
	assert.Error(t, err)
}
