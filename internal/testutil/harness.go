// Package testutil provides a standardized harness for end-to-end tests:
// input files go into a temp directory, one app run executes against them,
// and the table output and logs come back for assertions.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opswiki/bfstats/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Result holds the outcomes of an end-to-end run.
type Result struct {
	Stdout string
	Logs   string
	Err    error
}

// Run writes the given files into a temporary directory, lets configure wire
// their paths into the config, and executes one app run. The config starts
// with aligned style and debug text logging; configure may override anything.
func Run(t *testing.T, files map[string]string, configure func(dir string, cfg *app.Config)) *Result {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := &app.Config{
		Style:     "aligned",
		LogFormat: "text",
		LogLevel:  "debug",
	}
	if configure != nil {
		configure(dir, cfg)
	}

	logBuffer := &SafeBuffer{}
	var out bytes.Buffer

	testApp := app.New(&out, logBuffer, cfg)
	runErr := testApp.Run(context.Background())

	if os.Getenv("BFSTATS_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &Result{
		Stdout: out.String(),
		Logs:   logBuffer.String(),
		Err:    runErr,
	}
}
