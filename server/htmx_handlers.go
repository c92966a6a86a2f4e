package server

import (
	"log"
	"net/http"
	"time"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/review"
	"github.com/krawin/postdeck/pkg/workflow"
)

const (
	// analytics period selector values
	periodWeek  = "week"
	periodMonth = "month"
	periodAll   = "all"

	historyPageSize = 50
	activityDays    = 7
)

// queuePageData is shared by the full queue page and the HTMX partial
type queuePageData struct {
	ActivePage string
	Posts      []review.PostView
	Stats      domain.Stats
	LoadError  string
}

// queueHandler displays the pending review queue
func (s *Server) queueHandler(w http.ResponseWriter, r *http.Request) {
	data := queuePageData{ActivePage: "queue"}

	// stale queue stays visible when the server is unreachable
	if err := s.review.Load(r.Context()); err != nil {
		log.Printf("[WARN] queue load failed: %v", err)
		data.LoadError = "Could not reach the automation server. Showing last known posts."
	}
	data.Posts = s.review.Queue()
	data.Stats = s.review.Stats()

	if err := s.renderPage(w, "queue.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// queuePartialHandler re-renders the queue area from in-memory state. Decided
// posts are removed here after the settle delay, no fetch happens.
func (s *Server) queuePartialHandler(w http.ResponseWriter, r *http.Request) {
	data := queuePageData{
		Posts: s.review.Queue(),
		Stats: s.review.Stats(),
	}
	if err := s.templates.ExecuteTemplate(w, "queue-area", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render queue", err)
	}
}

// historyHandler displays decided and published posts
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := s.workflow.GetPosts(ctx, workflow.StatusHistory, historyPageSize)
	loadError := ""
	if err != nil {
		log.Printf("[WARN] history load failed: %v", err)
		loadError = "Could not load history from the automation server."
	}

	data := struct {
		ActivePage string
		Posts      []domain.Post
		LoadError  string
	}{
		ActivePage: "history",
		Posts:      posts,
		LoadError:  loadError,
	}

	if err := s.renderPage(w, "history.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// contentPageData holds everything the content page renders
type contentPageData struct {
	ActivePage     string
	Used           int
	Limit          int
	Remaining      int
	CanGenerate    bool
	NextGeneration time.Time
	Scheduled      []domain.Post
	Activity       []domain.DayActivity
	Prefs          prefsView
	LoadError      string
}

// prefsView is the settings sheet form state
type prefsView struct {
	ServerURL  string
	PageSize   int
	DailyLimit int
}

// contentHandler displays generation controls, scheduled posts and weekly activity
func (s *Server) contentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.limiter.Refresh(ctx); err != nil {
		log.Printf("[WARN] limiter refresh failed: %v", err)
	}

	data := contentPageData{
		ActivePage:     "content",
		Used:           s.limiter.Used(),
		Limit:          s.limiter.Limit(),
		Remaining:      s.limiter.Remaining(),
		CanGenerate:    s.limiter.CanGenerate(),
		NextGeneration: nextGenerationTime(time.Now()),
	}

	scheduled, err := s.workflow.GetPosts(ctx, workflow.StatusApproved, historyPageSize)
	if err != nil {
		log.Printf("[WARN] scheduled posts load failed: %v", err)
		data.LoadError = "Could not load scheduled posts from the automation server."
	}
	data.Scheduled = scheduled

	activity, err := s.archive.DailyActivity(ctx, activityDays)
	if err != nil {
		log.Printf("[WARN] activity load failed: %v", err)
	}
	data.Activity = activity

	if p, err := s.prefs.Load(ctx); err == nil {
		data.Prefs = prefsView{ServerURL: p.ServerURL, PageSize: p.PageSize, DailyLimit: p.DailyLimit}
	} else {
		log.Printf("[WARN] preferences load failed: %v", err)
	}

	if err := s.renderPage(w, "content.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// analyticsHandler displays aggregated performance from the local archive
func (s *Server) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period := r.URL.Query().Get("period")
	if period != periodMonth && period != periodAll {
		period = periodWeek
	}

	stats, err := s.workflow.GetStats(ctx)
	loadError := ""
	if err != nil {
		log.Printf("[WARN] stats load failed: %v", err)
		loadError = "Could not load stats from the automation server."
	}

	pillars, err := s.archive.PillarStats(ctx)
	if err != nil {
		log.Printf("[WARN] pillar stats failed: %v", err)
	}

	activity, err := s.archive.DailyActivity(ctx, periodDays(period))
	if err != nil {
		log.Printf("[WARN] activity aggregation failed: %v", err)
	}

	data := struct {
		ActivePage  string
		Period      string
		Stats       domain.Stats
		Pillars     []domain.PillarStat
		Activity    []domain.DayActivity
		HealthScore int
		Insight     string
		LoadError   string
	}{
		ActivePage:  "analytics",
		Period:      period,
		Stats:       stats,
		Pillars:     pillars,
		Activity:    activity,
		HealthScore: healthScore(stats),
		Insight:     healthInsight(stats),
		LoadError:   loadError,
	}

	if err := s.renderPage(w, "analytics.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// renderPostCard renders a single queue card
func (s *Server) renderPostCard(w http.ResponseWriter, post review.PostView) {
	if err := s.templates.ExecuteTemplate(w, "post-card.html", post); err != nil {
		log.Printf("[WARN] failed to render post card: %v", err)
	}
}

// renderToast writes an out-of-band toast notification. level is one of
// success, error, warning.
func (s *Server) renderToast(w http.ResponseWriter, level, message string) {
	data := struct {
		Level   string
		Message string
	}{Level: level, Message: message}
	if err := s.templates.ExecuteTemplate(w, "toast.html", data); err != nil {
		log.Printf("[WARN] failed to render toast: %v", err)
	}
}

// renderGenControls writes the generation controls as an out-of-band update
func (s *Server) renderGenControls(w http.ResponseWriter) {
	data := contentPageData{
		Used:           s.limiter.Used(),
		Limit:          s.limiter.Limit(),
		Remaining:      s.limiter.Remaining(),
		CanGenerate:    s.limiter.CanGenerate(),
		NextGeneration: nextGenerationTime(time.Now()),
	}
	if err := s.templates.ExecuteTemplate(w, "gen-controls", data); err != nil {
		log.Printf("[WARN] failed to render generation controls: %v", err)
	}
}

// nextGenerationTime returns the next scheduled generation run. The
// automation server generates daily at 08:00 and 18:00 local time.
func nextGenerationTime(now time.Time) time.Time {
	morning := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
	evening := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())

	switch {
	case now.Before(morning):
		return morning
	case now.Before(evening):
		return evening
	default:
		return morning.AddDate(0, 0, 1)
	}
}

// periodDays maps the analytics period selector to an aggregation window
func periodDays(period string) int {
	switch period {
	case periodMonth:
		return 30
	case periodAll:
		return 90
	default:
		return 7
	}
}

// healthScore condenses overall stats into a 0-100 indicator: approval rate
// weighted with the share of approved posts actually published
func healthScore(stats domain.Stats) int {
	if stats.Total == 0 {
		return 0
	}
	score := float64(stats.ApprovalRate()) * 0.7
	if stats.Approved+stats.Published > 0 {
		publishedShare := float64(stats.Published) / float64(stats.Approved+stats.Published)
		score += publishedShare * 100 * 0.3
	}
	if score > 100 {
		score = 100
	}
	return int(score + 0.5)
}

// healthInsight gives a one-line reading of the health score
func healthInsight(stats domain.Stats) string {
	switch score := healthScore(stats); {
	case stats.Total == 0:
		return "No posts yet. Generate your first batch to see insights."
	case score >= 75:
		return "Content pipeline is healthy. Approval and publishing rates are strong."
	case score >= 50:
		return "Decent approval rate. Publishing approved posts more often would improve reach."
	case score >= 25:
		return "Many posts get rejected. Consider adjusting the generation prompts."
	default:
		return "Most generated posts are rejected or stuck. Review pillar topics and prompts."
	}
}
