// Package testutil provides shared helpers for exercising the formatter
// end to end in tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sudokufmt/internal/app"
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

// HarnessResult holds the outcomes of a formatter test run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunFormatTest provides a standardized harness for running the formatter
// over the given input stream. The input is written to a temporary file and
// the app is run against it at debug log level, with stdout and log output
// captured separately.
func RunFormatTest(t *testing.T, input string) *HarnessResult {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stream.txt")
	err := os.WriteFile(path, []byte(input), 0600)
	require.NoError(t, err, "failed to set up input file")

	cfg, err := app.NewConfig(app.Config{
		InputPath: path,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	logBuf := &SafeBuffer{}
	formatter := app.NewApp(&out, logBuf, cfg)
	runErr := formatter.Run(context.Background())

	return &HarnessResult{
		Stdout:    out.String(),
		LogOutput: logBuf.String(),
		Err:       runErr,
	}
}
