package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/krawin/postdeck/pkg/config"
	"github.com/krawin/postdeck/pkg/genlimit"
	"github.com/krawin/postdeck/pkg/llm"
	"github.com/krawin/postdeck/pkg/prefs"
	"github.com/krawin/postdeck/pkg/repository"
	"github.com/krawin/postdeck/pkg/review"
	"github.com/krawin/postdeck/pkg/scheduler"
	"github.com/krawin/postdeck/pkg/workflow"
	"github.com/krawin/postdeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"postdeck.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)

	log.Printf("[INFO] starting postdeck version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the services together and blocks until the context is cancelled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if llmCfg := cfg.GetLLMConfig(); llmCfg.APIKey != "" {
		SetupLog(opts.Debug, llmCfg.APIKey) // keep the key out of logs
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	wfCfg := cfg.GetWorkflowConfig()

	// saved preferences win over the config defaults
	prefsMgr := prefs.NewManager(repos.Setting, prefs.Preferences{
		ServerURL:  wfCfg.URL,
		PageSize:   wfCfg.PageSize,
		DailyLimit: cfg.Generation.DailyLimit,
	})
	userPrefs, err := prefsMgr.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	if userPrefs.ServerURL != wfCfg.URL {
		log.Printf("[INFO] using saved automation server url %s", userPrefs.ServerURL)
	}

	client := workflow.NewClient(workflow.Config{BaseURL: userPrefs.ServerURL, Timeout: wfCfg.Timeout})

	reviewSvc := review.NewService(client, review.Config{
		PageSize:    userPrefs.PageSize,
		SettleDelay: cfg.Generation.SettleDelay,
	})

	limiter := genlimit.NewLimiter(client, repos.Post, repos.Setting, genlimit.Config{
		DailyLimit:  userPrefs.DailyLimit,
		ReloadDelay: cfg.Generation.ReloadDelay,
		OnReload: func() {
			// pick up freshly generated posts without waiting for a page visit
			if err := reviewSvc.Load(context.Background()); err != nil {
				log.Printf("[WARN] queue reload after generation failed: %v", err)
			}
		},
	})

	sched := scheduler.NewScheduler(client, repos.Post, scheduler.Config{
		SyncInterval: time.Duration(cfg.Schedule.SyncInterval) * time.Minute,
		PageSize:     wfCfg.PageSize,
	})
	sched.Start(ctx)
	defer sched.Stop()

	var probe server.LLMProbe
	if llmCfg := cfg.GetLLMConfig(); llmCfg.Enabled() {
		probe = llm.NewProvider(llmCfg)
		log.Printf("[INFO] llm probe enabled, model %s", llmCfg.Model)
	}

	srv, err := server.New(server.Deps{
		Config:   cfg,
		Review:   reviewSvc,
		Limiter:  limiter,
		Prefs:    prefsMgr,
		Workflow: client,
		Archive:  repos.Post,
		LLM:      probe,
	}, revision, opts.Debug)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}

// SetupLog configures the logger, optionally masking secrets
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
