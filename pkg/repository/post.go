package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/krawin/postdeck/pkg/domain"
)

// PostRepository handles post-related database operations
type PostRepository struct {
	db *sqlx.DB
}

// postSQL represents a post for SQL operations
type postSQL struct {
	ID             string    `db:"id"`
	Content        string    `db:"content"`
	TopicPillar    string    `db:"topic_pillar"`
	ApprovalStatus string    `db:"approval_status"`
	PostStatus     string    `db:"post_status"`
	CreatedAt      time.Time `db:"created_at"`
	EstimatedWords int       `db:"estimated_words"`
	SyncedAt       time.Time `db:"synced_at"`
}

// NewPostRepository creates a new post repository
func NewPostRepository(database *sqlx.DB) *PostRepository {
	return &PostRepository{db: database}
}

// UpsertPost inserts a post or refreshes the mirrored copy by remote id.
// The automation server stays the source of truth, so every field is
// overwritten on conflict.
func (r *PostRepository) UpsertPost(ctx context.Context, post domain.Post) error {
	sqlPost := &postSQL{
		ID:             post.ID,
		Content:        post.Content,
		TopicPillar:    post.TopicPillar,
		ApprovalStatus: string(post.ApprovalStatus),
		PostStatus:     string(post.PostStatus),
		CreatedAt:      post.CreatedAt,
		EstimatedWords: post.EstimatedWords,
	}

	query := `
		INSERT INTO posts (
			id, content, topic_pillar, approval_status, post_status,
			created_at, estimated_words, synced_at
		) VALUES (
			:id, :content, :topic_pillar, :approval_status, :post_status,
			:created_at, :estimated_words, datetime('now')
		)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			topic_pillar = excluded.topic_pillar,
			approval_status = excluded.approval_status,
			post_status = excluded.post_status,
			created_at = excluded.created_at,
			estimated_words = excluded.estimated_words,
			synced_at = excluded.synced_at
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, sqlPost); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert post: %w", err)}
		}
		return nil
	})
}

// GetPost retrieves a post by ID
func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var sqlPost postSQL
	err := r.db.GetContext(ctx, &sqlPost, "SELECT * FROM posts WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return r.toDomainPost(&sqlPost), nil
}

// CountPosts returns the total number of mirrored posts
func (r *PostRepository) CountPosts(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts")
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// CountPostsSince returns the number of posts created at or after the given time
func (r *PostRepository) CountPostsSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts WHERE created_at >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("count posts since: %w", err)
	}
	return count, nil
}

// PillarStats aggregates approval outcomes per topic pillar
func (r *PostRepository) PillarStats(ctx context.Context) ([]domain.PillarStat, error) {
	query := `
		SELECT topic_pillar,
		       COUNT(*) AS total,
		       SUM(CASE WHEN approval_status = 'approved' THEN 1 ELSE 0 END) AS approved,
		       SUM(CASE WHEN approval_status = 'rejected' THEN 1 ELSE 0 END) AS rejected
		FROM posts
		GROUP BY topic_pillar
		ORDER BY total DESC, topic_pillar
	`

	var rows []struct {
		TopicPillar string `db:"topic_pillar"`
		Total       int    `db:"total"`
		Approved    int    `db:"approved"`
		Rejected    int    `db:"rejected"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("pillar stats: %w", err)
	}

	stats := make([]domain.PillarStat, len(rows))
	for i, row := range rows {
		stat := domain.PillarStat{
			TopicPillar: row.TopicPillar,
			Total:       row.Total,
			Approved:    row.Approved,
			Rejected:    row.Rejected,
		}
		if decided := row.Approved + row.Rejected; decided > 0 {
			stat.ApprovalRate = float64(row.Approved) / float64(decided) * 100
		}
		stats[i] = stat
	}
	return stats, nil
}

// DailyActivity returns per-day counts for the trailing window, oldest first.
// Days without posts are zero-filled so charts get a continuous axis.
func (r *PostRepository) DailyActivity(ctx context.Context, days int) ([]domain.DayActivity, error) {
	if days <= 0 {
		days = 7
	}

	query := `
		SELECT date(created_at, 'localtime') AS day,
		       COUNT(*) AS generated,
		       SUM(CASE WHEN post_status = 'published' THEN 1 ELSE 0 END) AS published,
		       SUM(CASE WHEN approval_status = 'rejected' THEN 1 ELSE 0 END) AS rejected
		FROM posts
		WHERE created_at >= datetime('now', ?)
		GROUP BY day
	`

	var rows []struct {
		Day       string `db:"day"`
		Generated int    `db:"generated"`
		Published int    `db:"published"`
		Rejected  int    `db:"rejected"`
	}
	offset := fmt.Sprintf("-%d days", days)
	if err := r.db.SelectContext(ctx, &rows, query, offset); err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}

	byDay := make(map[string]domain.DayActivity, len(rows))
	for _, row := range rows {
		byDay[row.Day] = domain.DayActivity{
			Day:       row.Day,
			Generated: row.Generated,
			Published: row.Published,
			Rejected:  row.Rejected,
		}
	}

	// zero-filled continuous window ending today
	result := make([]domain.DayActivity, 0, days)
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		if activity, ok := byDay[day]; ok {
			result = append(result, activity)
			continue
		}
		result = append(result, domain.DayActivity{Day: day})
	}
	return result, nil
}

// toDomainPost converts a SQL post to a domain post
func (r *PostRepository) toDomainPost(sqlPost *postSQL) *domain.Post {
	return &domain.Post{
		ID:             sqlPost.ID,
		Content:        sqlPost.Content,
		TopicPillar:    sqlPost.TopicPillar,
		ApprovalStatus: domain.ApprovalStatus(sqlPost.ApprovalStatus),
		PostStatus:     domain.PostStatus(sqlPost.PostStatus),
		CreatedAt:      sqlPost.CreatedAt,
		EstimatedWords: sqlPost.EstimatedWords,
	}
}
