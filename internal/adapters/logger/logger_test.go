package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/adapters/logger"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestLogger_InfoDefaultsToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		lg := logger.New()
		lg.Info("some message")
	})

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Debug("hidden detail")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "some warning")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "ERRO")
}

func TestLogger_Verbose(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetVerbose(true)

	lg.Debug("probing dpkg")

	assert.Contains(t, buf.String(), "probing dpkg")
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(buf)

	err := zerr.Wrap(zerr.New("exit status 1"), "fpm failed")
	err = zerr.With(err, "package", "pyyaml")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: fpm failed")
	assert.Contains(t, out, "package: pyyaml")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "exit status 1")
}

func TestLogger_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)

	lg.Info("structured")

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "structured", record["msg"])
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on a standard error is folded into it",
			err:          zerr.With(errors.New("exit status 2"), "exit_code", 2),
			wantMessages: []string{"exit status 2"},
			wantMetadata: []map[string]any{{"exit_code": 2}},
		},
		{
			name: "sentinel wrapped with context",
			err: zerr.With(
				zerr.Wrap(domain.ErrMalformedConstraint, "unbalanced parenthesis"),
				"entry", "six (>= 1",
			),
			wantMessages: []string{"unbalanced parenthesis", "malformed dependency constraint"},
			wantMetadata: []map[string]any{{"entry": "six (>= 1"}, {}},
		},
		{
			name: "nil error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			want:    "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "multiline metadata stays indented",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"output": "line1\nline2\n"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      output: line1\n        line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
