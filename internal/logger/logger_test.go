package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInitWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	Info("storage resolved", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "storage resolved") {
		t.Errorf("Expected message in output, got: %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("Expected count attr in output, got: %q", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("Expected level tag in output, got: %q", out)
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "json")

	Info("blocks injected", "blocks", 10, "dir", "/data/dn1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Output is not valid JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "blocks injected" {
		t.Errorf("Expected msg field, got: %v", record["msg"])
	}
	if record["blocks"] != float64(10) {
		t.Errorf("Expected blocks=10, got: %v", record["blocks"])
	}
	if record["dir"] != "/data/dn1" {
		t.Errorf("Expected dir field, got: %v", record["dir"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "WARN", "text")

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn")
	Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info suppressed at WARN, got: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("Expected warn/error in output, got: %q", out)
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	if err := Init(Config{Level: "LOUD", Format: "text", Output: "stderr"}); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestInit_InvalidFormat(t *testing.T) {
	if err := Init(Config{Level: "INFO", Format: "xml", Output: "stderr"}); err == nil {
		t.Error("Expected error for invalid format")
	}
}
