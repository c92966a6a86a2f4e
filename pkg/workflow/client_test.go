package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krawin/postdeck/pkg/domain"
)

func TestClient_GetPosts(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		posts := []domain.Post{
			{ID: "p1", Content: "First post\nbody", TopicPillar: "Hiring", ApprovalStatus: domain.ApprovalPending, CreatedAt: now, EstimatedWords: 120},
			{ID: "p2", Content: "Second post", TopicPillar: "Leadership", ApprovalStatus: domain.ApprovalPending, CreatedAt: now},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(posts))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	posts, err := client.GetPosts(context.Background(), StatusPending, 20)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "Hiring", posts[0].TopicPillar)
	assert.Equal(t, now, posts[0].CreatedAt)
}

func TestClient_GetPosts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.GetPosts(context.Background(), StatusHistory, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClient_GetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"total":10,"approved":4,"published":2,"rejected":1,"pending":3}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	stats, err := client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 10, Approved: 4, Published: 2, Rejected: 1, Pending: 3}, stats)
}

func TestClient_GetPillarStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pillar-stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[{"topic_pillar":"Hiring","total":5,"approved":4,"rejected":1,"approval_rate_pct":80}]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	stats, err := client.GetPillarStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Hiring", stats[0].TopicPillar)
	assert.InDelta(t, 80.0, stats[0].ApprovalRate, 0.001)
}

func TestClient_SubmitDecision(t *testing.T) {
	t.Run("plain approve", func(t *testing.T) {
		var received decisionRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/decision", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		err := client.SubmitDecision(context.Background(), "p1", domain.DecisionApproved, "")
		require.NoError(t, err)
		assert.Equal(t, decisionRequest{PostID: "p1", Decision: "approved"}, received)
	})

	t.Run("approve with edit", func(t *testing.T) {
		var received decisionRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		err := client.SubmitDecision(context.Background(), "p2", domain.DecisionApproved, "edited body")
		require.NoError(t, err)
		assert.Equal(t, "edited body", received.EditedContent)
	})

	t.Run("rejected by server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		err := client.SubmitDecision(context.Background(), "p1", domain.DecisionRejected, "")
		require.Error(t, err)
	})
}

func TestClient_SchedulePost(t *testing.T) {
	at := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	var received scheduleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, client.SchedulePost(context.Background(), "p3", at))
	assert.Equal(t, "p3", received.PostID)
	assert.Equal(t, "2025-06-15T10:30:00Z", received.ScheduledAt)
}

func TestClient_GenerateNow(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/generate", r.URL.Path)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		require.NoError(t, client.GenerateNow(context.Background()))
	})

	t.Run("failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewClient(Config{BaseURL: srv.URL})
		require.Error(t, client.GenerateNow(context.Background()))
	})
}

func TestClient_TestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	assert.NoError(t, client.TestConnection(context.Background()))

	srv.Close()
	assert.Error(t, client.TestConnection(context.Background()))
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetStats(ctx)
	require.Error(t, err)
}
