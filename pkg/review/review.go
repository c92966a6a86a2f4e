// Package review implements the post-review workflow: an in-memory queue of
// pending posts with optimistic two-phase removal. A decision commits
// immediately against the automation server, then the structural removal is
// deferred by a settle delay sized to match the UI transition.
package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/workflow"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// API is the slice of the workflow client the review service consumes
type API interface {
	GetPosts(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error)
	GetStats(ctx context.Context) (domain.Stats, error)
	SubmitDecision(ctx context.Context, postID string, decision domain.Decision, editedContent string) error
}

// PostView is a queue entry with its presentation state
type PostView struct {
	domain.Post
	Removing bool
}

// Config holds review service settings
type Config struct {
	PageSize    int           // pending posts fetched per load, default 20
	SettleDelay time.Duration // delay between committed decision and removal, default 300ms
}

// Service owns the in-memory queue and stats snapshot for the lifetime of the
// process. State is rebuilt wholesale on every Load; optimistic deltas applied
// in between are superseded by the next full refresh.
type Service struct {
	api         API
	settleDelay time.Duration

	mu       sync.Mutex // guards posts, stats, removal marks and page size
	pageSize int
	posts    []domain.Post
	stats    domain.Stats
	removing map[string]struct{}
}

// NewService creates a review service
func NewService(api API, cfg Config) *Service {
	if cfg.PageSize == 0 {
		cfg.PageSize = 20
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = 300 * time.Millisecond
	}
	return &Service{
		api:         api,
		pageSize:    cfg.PageSize,
		settleDelay: cfg.SettleDelay,
		removing:    map[string]struct{}{},
	}
}

// Load fetches pending posts and stats in parallel and replaces the queue and
// stats snapshot with the results. On any fetch error the previous state is
// kept untouched and the error is returned.
func (s *Service) Load(ctx context.Context) error {
	var posts []domain.Post
	var stats domain.Stats

	s.mu.Lock()
	pageSize := s.pageSize
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.api.GetPosts(gctx, workflow.StatusPending, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.api.GetStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load queue: %w", err)
	}

	s.mu.Lock()
	s.posts = posts
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Decide submits a verdict for a queued post. The post is marked removing
// first (render-only), the decision is committed to the automation server,
// and on success the structural removal plus the optimistic stats delta are
// scheduled after the settle delay. On submission failure only the removal
// mark is rolled back; queue and stats stay unchanged.
//
// Decisions for different posts may run concurrently; each tracks its own
// removal mark keyed by post id. The post id is not validated against the
// queue: a stale id still submits upstream, and the deferred removal simply
// finds nothing to drop.
func (s *Service) Decide(ctx context.Context, postID string, decision domain.Decision, editedContent string) error {
	if !decision.Valid() {
		return fmt.Errorf("invalid decision %q", decision)
	}

	s.mu.Lock()
	s.removing[postID] = struct{}{}
	s.mu.Unlock()

	if err := s.api.SubmitDecision(ctx, postID, decision, editedContent); err != nil {
		s.mu.Lock()
		delete(s.removing, postID)
		s.mu.Unlock()
		return fmt.Errorf("decide %s: %w", postID, err)
	}

	time.AfterFunc(s.settleDelay, func() { s.settle(postID, decision) })
	return nil
}

// settle finalizes a committed decision: drops the post from the queue,
// clears its removal mark and applies the optimistic stats delta.
func (s *Service) settle(postID string, decision domain.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0:0]
	for _, p := range s.posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	delete(s.removing, postID)

	s.stats.Pending--
	switch decision {
	case domain.DecisionApproved:
		s.stats.Approved++
	case domain.DecisionRejected:
		s.stats.Rejected++
	}
}

// Queue returns a snapshot of the current queue with removal marks applied
func (s *Service) Queue() []PostView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]PostView, len(s.posts))
	for i, p := range s.posts {
		_, removing := s.removing[p.ID]
		views[i] = PostView{Post: p, Removing: removing}
	}
	return views
}

// Stats returns the current stats snapshot
func (s *Service) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// SetPageSize applies an updated page size for subsequent loads. Non-positive
// values are ignored.
func (s *Service) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.pageSize = n
	s.mu.Unlock()
}

// IsRemoving reports whether a post is mid-removal
func (s *Service) IsRemoving(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.removing[postID]
	return ok
}
