// Package server renders the review dashboard and exposes the JSON API. All
// page state comes from the injected services; handlers stay stateless.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/krawin/postdeck/pkg/domain"
	"github.com/krawin/postdeck/pkg/prefs"
	"github.com/krawin/postdeck/pkg/review"
	"github.com/krawin/postdeck/pkg/workflow"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/review.go -pkg mocks -skip-ensure -fmt goimports . Review
//go:generate moq -out mocks/limiter.go -pkg mocks -skip-ensure -fmt goimports . Limiter
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/workflow.go -pkg mocks -skip-ensure -fmt goimports . Workflow
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive
//go:generate moq -out mocks/llm_probe.go -pkg mocks -skip-ensure -fmt goimports . LLMProbe

//go:embed templates
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	review   Review
	limiter  Limiter
	prefs    Preferences
	workflow Workflow
	archive  Archive
	llm      LLMProbe // nil when no provider configured
	version  string
	debug    bool

	templates     *template.Template
	pageTemplates map[string]*template.Template
	sanitizer     *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Review interface for queue operations
type Review interface {
	Load(ctx context.Context) error
	Queue() []review.PostView
	Stats() domain.Stats
	Decide(ctx context.Context, postID string, decision domain.Decision, editedContent string) error
	SetPageSize(pageSize int)
}

// Limiter interface for the daily generation limit
type Limiter interface {
	Refresh(ctx context.Context) error
	CanGenerate() bool
	GenerateNow(ctx context.Context) error
	Used() int
	Remaining() int
	Limit() int
	SetLimit(limit int)
}

// Preferences interface for stored user settings
type Preferences interface {
	Load(ctx context.Context) (prefs.Preferences, error)
	Save(ctx context.Context, p prefs.Preferences) error
	ResetLimitToday(ctx context.Context, now time.Time) error
}

// Workflow interface for direct automation server reads and writes
type Workflow interface {
	GetPosts(ctx context.Context, status workflow.Status, limit int) ([]domain.Post, error)
	GetStats(ctx context.Context) (domain.Stats, error)
	SchedulePost(ctx context.Context, postID string, at time.Time) error
	TestConnection(ctx context.Context) error
}

// Archive interface for local aggregation queries
type Archive interface {
	DailyActivity(ctx context.Context, days int) ([]domain.DayActivity, error)
	PillarStats(ctx context.Context) ([]domain.PillarStat, error)
}

// LLMProbe interface for the provider health check
type LLMProbe interface {
	Ping(ctx context.Context) error
	Model() string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Deps bundles the services the server renders from
type Deps struct {
	Config   ConfigProvider
	Review   Review
	Limiter  Limiter
	Prefs    Preferences
	Workflow Workflow
	Archive  Archive
	LLM      LLMProbe
}

// New initializes a new server instance
func New(deps Deps, version string, debug bool) (*Server, error) {
	s := &Server{
		config:    deps.Config,
		review:    deps.Review,
		limiter:   deps.Limiter,
		prefs:     deps.Prefs,
		workflow:  deps.Workflow,
		archive:   deps.Archive,
		llm:       deps.LLM,
		version:   version,
		debug:     debug,
		sanitizer: bluemonday.UGCPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("postdeck", "krawin", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// pages
	s.router.HandleFunc("GET /{$}", s.queueHandler)
	s.router.HandleFunc("GET /history", s.historyHandler)
	s.router.HandleFunc("GET /content", s.contentHandler)
	s.router.HandleFunc("GET /analytics", s.analyticsHandler)

	// HTMX partials
	s.router.HandleFunc("GET /partials/queue", s.queuePartialHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /status/llm", s.llmStatusHandler)
		r.HandleFunc("GET /connection", s.connectionHandler)
		r.HandleFunc("POST /posts/{id}/decision", s.decisionHandler)
		r.HandleFunc("POST /posts/{id}/publish", s.publishHandler)
		r.HandleFunc("POST /generate", s.generateHandler)
		r.HandleFunc("POST /limit/reset", s.resetLimitHandler)
		r.HandleFunc("POST /settings", s.saveSettingsHandler)
		r.HandleFunc("POST /settings/test", s.testConnectionHandler)
	})
}

// loadTemplates parses the shared partials plus one template set per page
func (s *Server) loadTemplates() error {
	funcs := template.FuncMap{
		"sanitize":    s.sanitizeContent,
		"statusLabel": func(p domain.Post) string { return p.StatusLabel() },
		"hook":        func(p domain.Post) string { return p.Hook() },
		"pillarIndex": domain.PillarIndex,
		"fmtTime":     func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
		"barPx": func(n int) int { // bar chart height, capped
			if n > 12 {
				n = 12
			}
			return n * 10
		},
	}

	sharedFiles := []string{
		"templates/post-card.html", "templates/toast.html",
		"templates/queue-area.html", "templates/gen-controls.html",
	}

	shared, err := template.New("").Funcs(funcs).ParseFS(templatesFS, sharedFiles...)
	if err != nil {
		return fmt.Errorf("parse shared templates: %w", err)
	}
	s.templates = shared

	pages := []string{"queue.html", "history.html", "content.html", "analytics.html"}
	s.pageTemplates = make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		files := append([]string{"templates/base.html"}, sharedFiles...)
		files = append(files, "templates/"+page)
		tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parse page template %s: %w", page, err)
		}
		s.pageTemplates[page] = tmpl
	}

	return nil
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data interface{}) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}

// sanitizeContent turns untrusted post text into safe HTML with line breaks
// preserved. Generated content is treated as hostile input.
func (s *Server) sanitizeContent(content string) template.HTML {
	clean := s.sanitizer.Sanitize(content)
	withBreaks := strings.ReplaceAll(clean, "\n", "<br>")
	return template.HTML(withBreaks) //nolint:gosec // sanitized above
}

// respondWithError logs the error and renders a plain error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	if err != nil {
		log.Printf("[WARN] %s: %v", msg, err)
	}
	http.Error(w, msg, code)
}
