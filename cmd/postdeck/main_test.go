package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krawin/postdeck/pkg/prefs"
	"github.com/krawin/postdeck/pkg/repository"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// temp directory for the archive database
	tmpDir, err := os.MkdirTemp("", "postdeck-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	t.Setenv("DB_PATH", tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)

	wd, err := os.Getwd()
	require.NoError(t, err)
	configPath := wd + "/testdata/test_config.yml"

	opts := Opts{
		Config: configPath,
	}

	// start server, the workflow endpoint is unreachable which is fine:
	// the stale queue path keeps the server serving
	go func() {
		err := run(ctx, opts)
		if err != nil {
			t.Logf("server error: %v", err)
			if ctx.Err() == nil {
				serverErr <- err
			}
		}
		close(serverErr)
	}()

	// wait for server to start
	time.Sleep(2 * time.Second)

	select {
	case err := <-serverErr:
		t.Fatalf("server failed to start: %v", err)
	default:
		// server is running
	}

	resp, err := http.Get("http://127.0.0.1:18765/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// shutdown
	cancel()

	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server stopped with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestRun_UsesSavedPreferences(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("DB_PATH", tmpDir)

	// stub automation server recording queue fetches
	var mu sync.Mutex
	var queries []string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Path+"?"+r.URL.RawQuery)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/stats") {
			fmt.Fprint(w, `{"total":0,"approved":0,"published":0,"rejected":0,"pending":0}`)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer remote.Close()

	// seed preferences pointing at the stub before the service starts; the
	// config's workflow url is unroutable so only the saved one can work
	seedCtx := context.Background()
	repos, err := repository.NewRepositories(seedCtx, repository.Config{
		DSN:          "file:" + tmpDir + "/postdeck-prefs.db?cache=shared&mode=rwc",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, repos.Setting.SetSetting(seedCtx, prefs.KeyServerURL, remote.URL))
	require.NoError(t, repos.Setting.SetSetting(seedCtx, prefs.KeyPostsPerPage, "7"))
	require.NoError(t, repos.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	go func() {
		if err := run(ctx, Opts{Config: wd + "/testdata/prefs_config.yml"}); err != nil && ctx.Err() == nil {
			t.Errorf("server error: %v", err)
		}
	}()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18766/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 100*time.Millisecond)

	// the queue page loads through the saved url with the saved page size
	resp, err := http.Get("http://127.0.0.1:18766/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, queries, "/posts?limit=7&status=pending")
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
