package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunStandardScene(t *testing.T) {
	out, err := execute(t, "run", "--frames", "5", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "scene:     standard")
	assert.Contains(t, out, "frames:    5")
}

func TestRunSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lonely.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[balls]]\ntag = \"cue\"\n"), 0o644))

	out, err := execute(t, "run", path, "--until-rest", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "scene:     lonely")
	assert.Contains(t, out, "frames:    1 ")
	assert.Contains(t, out, "settled:   true")
	assert.Contains(t, out, "remaining: cue")
}

func TestRunRejectsLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")
}

func TestWatchNeedsScene(t *testing.T) {
	_, err := execute(t, "watch")
	assert.Error(t, err)
}

// syncBuffer lets the test read output while the watch loop writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRerunsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, os.WriteFile(path, []byte("balls:\n  - tag: cue\n"), 0o644))

	out := &syncBuffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(&syncBuffer{})
	root.SetArgs([]string{"watch", path, "--until-rest", "--log-level", "error"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	summaries := func() int { return strings.Count(out.String(), "scene:     live") }
	require.Eventually(t, func() bool { return summaries() == 1 }, 5*time.Second, 10*time.Millisecond)

	// truncate and write arrive as separate events; only the settled file is simulated
	require.NoError(t, os.WriteFile(path, []byte("balls:\n  - tag: cue\n  - tag: \"1\"\n    position: [3, 0]\n"), 0o644))

	require.Eventually(t, func() bool { return summaries() >= 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "remaining: 1, cue")
	assert.NotContains(t, out.String(), "remaining: -")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
