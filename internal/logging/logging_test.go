// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_WritesLeveledOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Warnf("missing keys: %s", "[B]")
	logger.Info("done")

	out := buf.String()
	if !strings.Contains(out, "missing keys: [B]") {
		t.Fatalf("missing warn output; got: %s", out)
	}
	if !strings.Contains(out, "done") {
		t.Fatalf("missing info output; got: %s", out)
	}
}

func TestNew_DebugLevelGated(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug output should be suppressed by default; got: %s", buf.String())
	}

	buf.Reset()
	logger = New(&buf, true)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug output should be emitted with debug enabled; got: %s", buf.String())
	}
}
