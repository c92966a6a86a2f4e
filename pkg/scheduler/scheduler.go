// Package scheduler runs the background sync worker that mirrors posts from
// the automation server into the local archive database.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/workflow"
)

//go:generate moq -out mocks/workflow_api.go -pkg mocks -skip-ensure -fmt goimports . WorkflowAPI
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive

// Scheduler manages periodic archive synchronization
type Scheduler struct {
	api          WorkflowAPI
	archive      Archive
	syncInterval time.Duration
	pageSize     int
	wg           sync.WaitGroup
	cancel       context.CancelFunc
	dbMutex      sync.Mutex // serialize database writes
}

// WorkflowAPI interface for reading posts from the automation server
type WorkflowAPI interface {
	GetPosts(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error)
}

// Archive interface for the local post mirror
type Archive interface {
	UpsertPost(ctx context.Context, post domain.Post) error
}

// Config holds scheduler configuration
type Config struct {
	SyncInterval time.Duration
	PageSize     int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(api WorkflowAPI, archive Archive, cfg Config) *Scheduler {
	if cfg.SyncInterval == 0 {
		cfg.SyncInterval = 15 * time.Minute
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 50
	}

	return &Scheduler{
		api:          api,
		archive:      archive,
		syncInterval: cfg.SyncInterval,
		pageSize:     cfg.PageSize,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with sync interval %v", s.syncInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// syncWorker periodically mirrors posts into the archive
func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	// run immediately on start
	if err := s.syncArchive(ctx); err != nil {
		lgr.Printf("[WARN] initial archive sync failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.syncArchive(ctx); err != nil {
				lgr.Printf("[WARN] archive sync failed: %v", err)
			}
		}
	}
}

// syncArchive pulls every status bucket from the server and upserts the posts.
// The three fetches run concurrently, writes stay serialized for SQLite.
func (s *Scheduler) syncArchive(ctx context.Context) error {
	buckets := []workflow.Status{workflow.StatusPending, workflow.StatusApproved, workflow.StatusHistory}
	fetched := make([][]domain.Post, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range buckets {
		g.Go(func() error {
			posts, err := s.api.GetPosts(gctx, status, s.pageSize)
			if err != nil {
				return fmt.Errorf("fetch %s posts: %w", status, err)
			}
			fetched[i] = posts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, posts := range fetched {
		for _, post := range posts {
			s.dbMutex.Lock()
			err := s.archive.UpsertPost(ctx, post)
			s.dbMutex.Unlock()
			if err != nil {
				lgr.Printf("[ERROR] failed to upsert post %s: %v", post.ID, err)
				continue
			}
			total++
		}
	}

	lgr.Printf("[DEBUG] archive sync completed, %d posts mirrored", total)
	return nil
}

// SyncNow triggers an immediate archive sync
func (s *Scheduler) SyncNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate archive sync")
	return s.syncArchive(ctx)
}
