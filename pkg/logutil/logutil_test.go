package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[foo] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })

	logger.Println("hello")
	if s := buf.String(); !strings.Contains(s, "[foo] ") || !strings.HasSuffix(s, "hello\n") {
		t.Errorf("logged %q, want prefix [foo] and message hello", s)
	}

	// Loggers created after SetOutput use the new output too.
	GetLogger("[bar] ").Println("world")
	if s := buf.String(); !strings.Contains(s, "[bar] ") {
		t.Errorf("logged %q, want it to contain [bar]", s)
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("[file] ")
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	// Switching back to discard closes the file.
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[file] ") {
		t.Errorf("log file has %q, want it to contain [file]", data)
	}

	if err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Errorf("SetOutputFile with bad path -> nil, want error")
	}
}
