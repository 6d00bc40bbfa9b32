package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{logger: zerolog.New(buf)}
}

func TestInitFirstCallWins(t *testing.T) {
	resetForTest()

	if !Init(Config{Level: "debug", Format: "json"}) {
		t.Fatal("first Init should report initialization")
	}
	if Init(Config{Level: "error", Format: "json"}) {
		t.Error("second Init should be a no-op")
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level = %v, want debug from the first Init", zerolog.GlobalLevel())
	}
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	initialized = false
	globalLogger = nil
}

func TestWithComponentTagsEvents(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf).WithComponent("httpclient")

	log.Info("assembled")

	out := buf.String()
	if !strings.Contains(out, `"component":"httpclient"`) {
		t.Errorf("output missing component field: %s", out)
	}
	if !strings.Contains(out, `"message":"assembled"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestFieldsBuildsMap(t *testing.T) {
	m := Fields("op", "assemble", "count", 3)
	if m["op"] != "assemble" {
		t.Errorf("op = %v", m["op"])
	}
	if m["count"] != 3 {
		t.Errorf("count = %v", m["count"])
	}
}

func TestFieldsIgnoresDanglingKey(t *testing.T) {
	m := Fields("op", "assemble", "dangling")
	if _, ok := m["dangling"]; ok {
		t.Error("dangling key should be dropped")
	}
	if len(m) != 1 {
		t.Errorf("len = %d, want 1", len(m))
	}
}

func TestLoggerEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Warn("ignoring unknown cipher suite", Fields("name", "BOGUS"))

	out := buf.String()
	if !strings.Contains(out, `"name":"BOGUS"`) {
		t.Errorf("output missing field: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("output missing level: %s", out)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := Config{Level: "loud", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("invalid level should fail validation")
	}
}
