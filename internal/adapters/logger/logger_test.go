package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []string{"simple error"},
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			want: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "metadata does not leak into messages",
			err:  zerr.With(zerr.New("base error"), "key", "value"),
			want: []string{"base error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectMessages(tt.err))
		})
	}
}

func TestFormatErrorChain(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "single message",
			messages: []string{"single error"},
			want:     "Error: single error",
		},
		{
			name:     "message with causes",
			messages: []string{"outer", "middle", "root"},
			want:     "Error: outer\n\n  Caused by:\n    -> middle\n    -> root",
		},
		{
			name:     "multiline message",
			messages: []string{"line1\nline2"},
			want:     "Error: line1\n       line2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorChain(tt.messages))
		})
	}
}

func TestError_NilIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf)

	log.Error(nil)
	assert.Empty(t, buf.String())
}

func TestError_WritesChainToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf)

	log.Error(zerr.Wrap(errors.New("root"), "outer"))
	out := buf.String()
	assert.Contains(t, out, "outer")
	assert.Contains(t, out, "root")
}
