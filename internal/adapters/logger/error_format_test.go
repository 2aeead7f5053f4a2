package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/handler/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on plain error moves to cause",
			err:          zerr.With(errors.New("disk full"), "path", "/tmp/x"),
			wantMessages: []string{"disk full"},
			wantMetadata: []map[string]any{{"path": "/tmp/x"}},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: []string{},
			wantMetadata: []map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			assert.Equal(t, tt.wantMessages, logger.Messages(entries))
			assert.Equal(t, tt.wantMetadata, logger.Metadata(entries))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("line one\nline two"), "outer"), "listener", 3)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: outer (listener=3)\n" +
		"\n" +
		"  Caused by:\n" +
		"    → line one\n" +
		"      line two"
	assert.Equal(t, want, got)
}
