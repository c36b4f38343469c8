package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ringlog/ringlog/core"
	"github.com/ringlog/ringlog/sink"
)

func swapDefault(t *testing.T, s *Store) {
	t.Helper()
	old := Default()
	SetDefault(s)
	t.Cleanup(func() { SetDefault(old) })
}

func TestDefault_PackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	s := NewBuilder().
		WithCapacity(10).
		WithConsole(sink.NewConsoleSink(sink.ConsoleConfig{Writer: &buf})).
		Build()
	swapDefault(t, s)

	Message("via package func")
	Warning("warned")
	Record(core.Error, "explicit priority")

	logs := s.FullLogs()
	if len(logs) != 3 {
		t.Fatalf("history length = %d, want 3", len(logs))
	}
	if logs[1].Priority != core.Warning || logs[2].Priority != core.Error {
		t.Errorf("priorities = %v %v", logs[1].Priority, logs[2].Priority)
	}
	if !strings.Contains(buf.String(), "via package func") {
		t.Error("console output missing package-level record")
	}
}

func TestDefault_StreamAndConfig(t *testing.T) {
	s, buf := newTestStore(10, core.Message)
	swapDefault(t, s)

	Append("built ").Append("incrementally").Flush()
	SetVerbosity(core.None)
	Debug("suppressed")
	SetLog("forwarded", core.Message)

	logs := s.FullLogs()
	if len(logs) != 3 {
		t.Fatalf("history length = %d, want 3", len(logs))
	}
	if !strings.HasSuffix(logs[0].Text, "built incrementally") {
		t.Errorf("streamed record = %q", logs[0].Text)
	}
	if logs[2].Text != "forwarded" {
		t.Errorf("injected record = %q", logs[2].Text)
	}
	if strings.Contains(buf.String(), "suppressed") {
		t.Error("Debug reached console despite None verbosity")
	}
}

func TestDefault_IsUsableWithoutSetup(t *testing.T) {
	if Default() == nil {
		t.Fatal("package default store is nil")
	}
}
