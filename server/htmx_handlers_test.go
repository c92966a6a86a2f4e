package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/review"
	"github.com/krawin/postdeck/pkg/workflow"
	"github.com/krawin/postdeck/server/mocks"
)

func TestServer_queueHandler(t *testing.T) {
	t.Run("renders pending posts", func(t *testing.T) {
		deps := testDeps()
		deps.Review = &mocks.ReviewMock{
			LoadFunc: func(ctx context.Context) error { return nil },
			QueueFunc: func() []review.PostView {
				return []review.PostView{
					{Post: domain.Post{ID: "p1", Content: "First hook line\nBody text", TopicPillar: "recruitment"}},
					{Post: domain.Post{ID: "p2", Content: "Second post", TopicPillar: "leadership"}},
				}
			},
			StatsFunc: func() domain.Stats {
				return domain.Stats{Total: 10, Approved: 4, Published: 2, Rejected: 2, Pending: 2}
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/", http.NoBody)
		w := httptest.NewRecorder()
		srv.queueHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `id="post-p1"`)
		assert.Contains(t, body, `id="post-p2"`)
		assert.Contains(t, body, "recruitment")
		assert.Contains(t, body, "First hook line<br>Body text")
		assert.NotContains(t, body, "Could not reach")
	})

	t.Run("stale queue shown when load fails", func(t *testing.T) {
		deps := testDeps()
		deps.Review = &mocks.ReviewMock{
			LoadFunc: func(ctx context.Context) error { return fmt.Errorf("connection refused") },
			QueueFunc: func() []review.PostView {
				return []review.PostView{{Post: domain.Post{ID: "stale1", Content: "kept from last load"}}}
			},
			StatsFunc: func() domain.Stats { return domain.Stats{Total: 1, Pending: 1} },
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/", http.NoBody)
		w := httptest.NewRecorder()
		srv.queueHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Could not reach the automation server")
		assert.Contains(t, body, `id="post-stale1"`, "stale posts stay visible")
	})

	t.Run("empty queue", func(t *testing.T) {
		srv := testServer(t, testDeps())

		req := httptest.NewRequest("GET", "/", http.NoBody)
		w := httptest.NewRecorder()
		srv.queueHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Nothing waiting for review")
	})
}

func TestServer_queuePartialHandler(t *testing.T) {
	loadCalled := false
	deps := testDeps()
	deps.Review = &mocks.ReviewMock{
		LoadFunc: func(ctx context.Context) error { loadCalled = true; return nil },
		QueueFunc: func() []review.PostView {
			return []review.PostView{
				{Post: domain.Post{ID: "p1", Content: "still pending"}},
				{Post: domain.Post{ID: "p2", Content: "being removed"}, Removing: true},
			}
		},
		StatsFunc: func() domain.Stats { return domain.Stats{Total: 5, Pending: 2} },
	}
	srv := testServer(t, deps)

	req := httptest.NewRequest("GET", "/partials/queue", http.NoBody)
	w := httptest.NewRecorder()
	srv.queuePartialHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="queue-area"`)
	assert.Contains(t, body, `id="post-p1"`)
	assert.Contains(t, body, "removing")
	assert.False(t, loadCalled, "partial renders from memory, no fetch")
}

func TestServer_historyHandler(t *testing.T) {
	t.Run("renders decided posts", func(t *testing.T) {
		deps := testDeps()
		deps.Workflow = &mocks.WorkflowMock{
			GetPostsFunc: func(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error) {
				assert.Equal(t, workflow.StatusHistory, status)
				assert.Equal(t, 50, limit)
				return []domain.Post{
					{ID: "h1", Content: "Published one", ApprovalStatus: domain.ApprovalApproved, PostStatus: domain.PostPublished},
					{ID: "h2", Content: "Rejected one", ApprovalStatus: domain.ApprovalRejected},
				}, nil
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/history", http.NoBody)
		w := httptest.NewRecorder()
		srv.historyHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "published")
		assert.Contains(t, body, "rejected")
		assert.Contains(t, body, "Published one")
	})

	t.Run("load failure renders banner", func(t *testing.T) {
		deps := testDeps()
		deps.Workflow = &mocks.WorkflowMock{
			GetPostsFunc: func(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error) {
				return nil, fmt.Errorf("boom")
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/history", http.NoBody)
		w := httptest.NewRecorder()
		srv.historyHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Could not load history")
	})
}

func TestServer_contentHandler(t *testing.T) {
	deps := testDeps()
	refreshed := false
	deps.Limiter = &mocks.LimiterMock{
		RefreshFunc:     func(ctx context.Context) error { refreshed = true; return nil },
		CanGenerateFunc: func() bool { return true },
		UsedFunc:        func() int { return 1 },
		RemainingFunc:   func() int { return 2 },
		LimitFunc:       func() int { return 3 },
	}
	deps.Workflow = &mocks.WorkflowMock{
		GetPostsFunc: func(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error) {
			assert.Equal(t, workflow.StatusApproved, status)
			return []domain.Post{{ID: "s1", Content: "scheduled post", ApprovalStatus: domain.ApprovalApproved}}, nil
		},
	}
	deps.Archive = &mocks.ArchiveMock{
		DailyActivityFunc: func(ctx context.Context, days int) ([]domain.DayActivity, error) {
			assert.Equal(t, 7, days)
			return []domain.DayActivity{{Day: time.Now().Format("2006-01-02"), Generated: 3, Published: 1}}, nil
		},
		PillarStatsFunc: func(ctx context.Context) ([]domain.PillarStat, error) { return nil, nil },
	}
	srv := testServer(t, deps)

	req := httptest.NewRequest("GET", "/content", http.NoBody)
	w := httptest.NewRecorder()
	srv.contentHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, refreshed, "limiter refreshed before rendering counters")
	body := w.Body.String()
	assert.Contains(t, body, "scheduled post")
	assert.Contains(t, body, "1 / 3")
	assert.Contains(t, body, "http://localhost:5678")
}

func TestServer_analyticsHandler(t *testing.T) {
	t.Run("renders aggregated stats", func(t *testing.T) {
		deps := testDeps()
		deps.Workflow = &mocks.WorkflowMock{
			GetStatsFunc: func(ctx context.Context) (domain.Stats, error) {
				return domain.Stats{Total: 20, Approved: 10, Published: 6, Rejected: 3, Pending: 1}, nil
			},
		}
		deps.Archive = &mocks.ArchiveMock{
			PillarStatsFunc: func(ctx context.Context) ([]domain.PillarStat, error) {
				return []domain.PillarStat{{TopicPillar: "recruitment", Total: 8, Approved: 6, Rejected: 2, ApprovalRate: 75}}, nil
			},
			DailyActivityFunc: func(ctx context.Context, days int) ([]domain.DayActivity, error) {
				assert.Equal(t, 7, days)
				return nil, nil
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/analytics", http.NoBody)
		w := httptest.NewRecorder()
		srv.analyticsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "recruitment")
		assert.Contains(t, body, "75")
	})

	t.Run("period selects aggregation window", func(t *testing.T) {
		var gotDays int
		deps := testDeps()
		deps.Archive = &mocks.ArchiveMock{
			PillarStatsFunc: func(ctx context.Context) ([]domain.PillarStat, error) { return nil, nil },
			DailyActivityFunc: func(ctx context.Context, days int) ([]domain.DayActivity, error) {
				gotDays = days
				return nil, nil
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/analytics?period=month", http.NoBody)
		w := httptest.NewRecorder()
		srv.analyticsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 30, gotDays)
	})

	t.Run("unknown period falls back to week", func(t *testing.T) {
		var gotDays int
		deps := testDeps()
		deps.Archive = &mocks.ArchiveMock{
			PillarStatsFunc: func(ctx context.Context) ([]domain.PillarStat, error) { return nil, nil },
			DailyActivityFunc: func(ctx context.Context, days int) ([]domain.DayActivity, error) {
				gotDays = days
				return nil, nil
			},
		}
		srv := testServer(t, deps)

		req := httptest.NewRequest("GET", "/analytics?period=bogus", http.NoBody)
		w := httptest.NewRecorder()
		srv.analyticsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, gotDays)
	})
}

func TestNextGenerationTime(t *testing.T) {
	loc := time.Local
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "early morning picks 08:00 today",
			now:  time.Date(2025, 6, 10, 6, 30, 0, 0, loc),
			want: time.Date(2025, 6, 10, 8, 0, 0, 0, loc),
		},
		{
			name: "midday picks 18:00 today",
			now:  time.Date(2025, 6, 10, 12, 0, 0, 0, loc),
			want: time.Date(2025, 6, 10, 18, 0, 0, 0, loc),
		},
		{
			name: "evening picks 08:00 tomorrow",
			now:  time.Date(2025, 6, 10, 21, 15, 0, 0, loc),
			want: time.Date(2025, 6, 11, 8, 0, 0, 0, loc),
		},
		{
			name: "exactly 18:00 rolls to tomorrow",
			now:  time.Date(2025, 6, 10, 18, 0, 0, 0, loc),
			want: time.Date(2025, 6, 11, 8, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextGenerationTime(tt.now))
		})
	}
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 7, periodDays(periodWeek))
	assert.Equal(t, 30, periodDays(periodMonth))
	assert.Equal(t, 90, periodDays(periodAll))
	assert.Equal(t, 7, periodDays("junk"))
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.Stats
		want  int
	}{
		{name: "no posts", stats: domain.Stats{}, want: 0},
		{
			name:  "all approved and published",
			stats: domain.Stats{Total: 10, Approved: 0, Published: 10},
			want:  30, // zero approval rate, full publish share
		},
		{
			name:  "half approved nothing published",
			stats: domain.Stats{Total: 10, Approved: 5, Rejected: 5},
			want:  35,
		},
		{
			name:  "balanced pipeline",
			stats: domain.Stats{Total: 10, Approved: 4, Published: 4, Rejected: 2},
			want:  43, // 40*0.7 + 50*0.3 = 43
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, healthScore(tt.stats))
		})
	}
}

func TestHealthInsight(t *testing.T) {
	assert.Contains(t, healthInsight(domain.Stats{}), "No posts yet")
	assert.Contains(t, healthInsight(domain.Stats{Total: 10, Approved: 9, Published: 9}), "healthy")
	assert.Contains(t, healthInsight(domain.Stats{Total: 10, Approved: 6, Published: 3, Rejected: 1}), "Publishing approved posts")
	assert.Contains(t, healthInsight(domain.Stats{Total: 10, Approved: 3, Rejected: 7}), "rejected")
	require.NotEmpty(t, healthInsight(domain.Stats{Total: 10, Rejected: 10}))
}
