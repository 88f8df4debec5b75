package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestModuleLoggerFollowsSetOutput(t *testing.T) {
	l := Module("test")
	prev := Output()
	defer SetOutput(prev)

	var buf bytes.Buffer
	SetOutput(&buf)
	l.Info().Msg("hello")

	line := buf.String()
	if !strings.Contains(line, `"module":"test"`) || !strings.Contains(line, `"message":"hello"`) {
		t.Errorf("log line = %q", line)
	}

	SetOutput(nil)
	if Output() != io.Discard {
		t.Error("SetOutput(nil) did not discard")
	}
	buf.Reset()
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Error("old writer still receives logs")
	}
}
