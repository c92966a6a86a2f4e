package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/genlimit"
	"github.com/krawin/postdeck/pkg/prefs"
)

// statusHandler returns server status and the configured AI provider
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	provider := "none"
	if s.llm != nil {
		provider = s.llm.Model()
	}
	status := map[string]interface{}{
		"status":   "ok",
		"app":      "postdeck",
		"version":  s.version,
		"provider": provider,
		"time":     time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// llmStatusHandler probes the configured LLM provider
func (s *Server) llmStatusHandler(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		renderJSON(w, r, http.StatusOK, map[string]string{"status": "disabled"})
		return
	}

	if err := s.llm.Ping(r.Context()); err != nil {
		log.Printf("[WARN] llm probe failed: %v", err)
		renderJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "failed",
			"model":  s.llm.Model(),
			"error":  err.Error(),
		})
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "model": s.llm.Model()})
}

// connectionHandler reports automation server reachability
func (s *Server) connectionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.workflow.TestConnection(r.Context()); err != nil {
		renderJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "failed",
			"error":  err.Error(),
		})
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decisionHandler submits an approve/reject decision for a queued post. The
// card comes back marked removing; the queue refresher pulls the settled
// state shortly after.
func (s *Server) decisionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	decision := domain.Decision(r.FormValue("decision"))
	if !decision.Valid() {
		renderError(w, r, fmt.Errorf("invalid decision %q", r.FormValue("decision")), http.StatusBadRequest)
		return
	}
	editedContent := r.FormValue("edited_content")

	if err := s.review.Decide(ctx, postID, decision, editedContent); err != nil {
		log.Printf("[WARN] decision failed for %s: %v", postID, err)
		s.renderToast(w, "error", "Could not submit the decision. The post stays in the queue.")
		// re-render the unmarked card so the UI rolls back
		for _, post := range s.review.Queue() {
			if post.ID == postID {
				s.renderPostCard(w, post)
				return
			}
		}
		return
	}

	if decision == domain.DecisionApproved {
		s.renderToast(w, "success", "Post approved.")
	} else {
		s.renderToast(w, "success", "Post rejected.")
	}

	// removing card plus delayed refresh of the settled queue
	for _, post := range s.review.Queue() {
		if post.ID == postID {
			s.renderPostCard(w, post)
			break
		}
	}
	writeQueueRefresher(w)
}

// publishHandler schedules an approved post, immediately when no time given
func (s *Server) publishHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	at := time.Now()
	if atStr := r.FormValue("scheduled_at"); atStr != "" {
		parsed, err := parseScheduleTime(atStr)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid schedule time %q", atStr), http.StatusBadRequest)
			return
		}
		at = parsed
	}

	if err := s.workflow.SchedulePost(ctx, postID, at); err != nil {
		log.Printf("[WARN] schedule failed for %s: %v", postID, err)
		s.renderToast(w, "error", "Could not schedule the post.")
		return
	}

	s.renderToast(w, "success", "Post scheduled.")
}

// generateHandler triggers on-demand generation within the daily limit
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	err := s.limiter.GenerateNow(r.Context())
	switch {
	case errors.Is(err, genlimit.ErrLimitReached):
		s.renderToast(w, "warning", "Daily generation limit reached. Resets at midnight.")
	case err != nil:
		log.Printf("[WARN] generation failed: %v", err)
		s.renderToast(w, "error", "Could not start generation.")
	default:
		s.renderToast(w, "success", "Generation started. New posts arrive shortly.")
	}
	s.renderGenControls(w)
}

// resetLimitHandler zeroes today's generation counter
func (s *Server) resetLimitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.prefs.ResetLimitToday(ctx, time.Now()); err != nil {
		log.Printf("[WARN] limit reset failed: %v", err)
		s.renderToast(w, "error", "Could not reset the daily limit.")
		return
	}
	if err := s.limiter.Refresh(ctx); err != nil {
		log.Printf("[WARN] limiter refresh after reset failed: %v", err)
	}

	s.renderToast(w, "success", "Daily limit reset for today.")
	s.renderGenControls(w)
}

// saveSettingsHandler persists connection and limit preferences
func (s *Server) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	current, err := s.prefs.Load(ctx)
	if err != nil {
		log.Printf("[WARN] preferences load failed: %v", err)
		s.renderToast(w, "error", "Could not load current settings.")
		return
	}

	updated := prefs.Preferences{
		ServerURL:      r.FormValue("server_url"),
		PageSize:       current.PageSize,
		DailyLimit:     current.DailyLimit,
		LimitResetDate: current.LimitResetDate,
	}
	if v := r.FormValue("posts_per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid posts_per_page %q", v), http.StatusBadRequest)
			return
		}
		updated.PageSize = n
	}
	if v := r.FormValue("daily_post_limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid daily_post_limit %q", v), http.StatusBadRequest)
			return
		}
		updated.DailyLimit = n
	}

	if err := s.prefs.Save(ctx, updated); err != nil {
		log.Printf("[WARN] preferences save failed: %v", err)
		s.renderToast(w, "error", "Could not save settings.")
		return
	}

	// saved limit and page size take effect without a restart
	s.limiter.SetLimit(updated.DailyLimit)
	s.review.SetPageSize(updated.PageSize)
	s.renderToast(w, "success", "Settings saved.")
}

// testConnectionHandler checks the automation server and reports via toast
func (s *Server) testConnectionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.workflow.TestConnection(r.Context()); err != nil {
		log.Printf("[WARN] connection test failed: %v", err)
		s.renderToast(w, "error", "Connection failed. Check the server URL.")
		return
	}
	s.renderToast(w, "success", "Connection OK.")
}

// parseScheduleTime accepts RFC3339 and the datetime-local input format
func parseScheduleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", value, time.Local)
}

// writeQueueRefresher emits a self-removing element that pulls the queue
// partial after the settle delay has passed
func writeQueueRefresher(w http.ResponseWriter) {
	const refresher = `<div hx-get="/partials/queue" hx-trigger="load delay:500ms" hx-target="#queue-area" hx-swap="outerHTML"></div>`
	if _, err := w.Write([]byte(refresher)); err != nil {
		log.Printf("[WARN] failed to write queue refresher: %v", err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
