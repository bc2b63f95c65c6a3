package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer lets the watch goroutine write output while the test polls.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_RegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "api")
	out := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(in, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.api.json"), []byte(`{"name":"a","exports":{"First":{"kind":"class"}}}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stdout, stderr := &lockedBuffer{}, &lockedBuffer{}
	done := make(chan int, 1)
	go func() {
		done <- Execute(ctx, []string{
			"-c", filepath.Join(dir, "absent.yaml"),
			"watch",
			"--input", filepath.Join(in, "*.api.json"),
			"--out", out,
			"--debounce", "50ms",
		}, stdout, stderr)
	}()

	exists := func(rel string) func() bool {
		return func() bool {
			_, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel)))
			return err == nil
		}
	}

	require.Eventually(t, exists("api/first.html"), 5*time.Second, 20*time.Millisecond, stderr.String())

	require.NoError(t, os.WriteFile(filepath.Join(in, "b.api.json"), []byte(`{"name":"b","exports":{"Second":{"kind":"interface"}}}`), 0o600))
	require.Eventually(t, exists("api/second.html"), 5*time.Second, 20*time.Millisecond, stderr.String())

	require.NoError(t, os.Remove(filepath.Join(in, "a.api.json")))
	require.Eventually(t, func() bool { return !exists("api/first.html")() && exists("api/second.html")() },
		5*time.Second, 20*time.Millisecond, stderr.String())

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, 0, code, stderr.String())
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, stdout.String(), "Generated")
}

func TestWatch_FailsOnUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), []string{
		"-c", filepath.Join(dir, "absent.yaml"),
		"watch", "--input", filepath.Join(dir, "*.api.json"), "--theme", "nope",
	}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown theme")
}
