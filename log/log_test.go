package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	defer SetOutput(os.Stdout)

	if err := SetLevel("warning"); err != nil {
		t.Fatal(err)
	}
	defer SetLevel("info")

	Infof("hidden %d", 1)
	Warningf("shown %d", 2)
	Errorf("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warning level: %s", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "shown 3") {
		t.Errorf("missing warning or error message: %s", out)
	}
}

func TestSeverity(t *testing.T) {
	var s severity
	if err := s.Set("Error"); err != nil || s != ERROR {
		t.Errorf("Set(Error) = %v, severity %v", err, s)
	}
	if err := s.Set("verbose"); err == nil {
		t.Error("Set(verbose) accepted an unknown level")
	}
	if s.String() != "ERROR" {
		t.Errorf("String() = %s", s.String())
	}
}
