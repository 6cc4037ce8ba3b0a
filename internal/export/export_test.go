package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
)

func sampleEntries() []history.Entry {
	return []history.Entry{
		{
			ID:        "b1a2",
			Password:  "Xk2!pQ9#",
			Score:     67,
			Label:     "Medium",
			CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:        "a0f9",
			Password:  "hello,world",
			Score:     22,
			Label:     "Very weak",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"txt", FormatText},
		{"text", FormatText},
		{"TXT", FormatText},
		{"csv", FormatCSV},
		{"json", FormatJSON},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ParseFormat("xlsx")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xlsx) error = %v, want ErrUnknownFormat", err)
	}
}

func TestRenderText(t *testing.T) {
	data, err := Render(FormatText, sampleEntries())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	want := "Xk2!pQ9#\nhello,world\n"
	if string(data) != want {
		t.Errorf("Render(text) = %q, want %q", data, want)
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := Render(FormatCSV, sampleEntries())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Render(csv) produced %d lines, want 3:\n%s", len(lines), data)
	}
	if lines[0] != "id,password,score,label,created_at" {
		t.Errorf("csv header = %q", lines[0])
	}
	// A password containing a comma must come out quoted.
	if !strings.Contains(lines[2], `"hello,world"`) {
		t.Errorf("comma password not quoted: %q", lines[2])
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(FormatJSON, sampleEntries())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	var decoded []history.Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Render(json) produced invalid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	if decoded[0].Password != "Xk2!pQ9#" {
		t.Errorf("decoded[0].Password = %q", decoded[0].Password)
	}
}

func TestRenderMarkdown(t *testing.T) {
	data, err := Render(FormatMarkdown, sampleEntries())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "# Password History\n") {
		t.Errorf("markdown missing title:\n%s", out)
	}
	if !strings.Contains(out, "| 1 | `Xk2!pQ9#` | 67 | Medium |") {
		t.Errorf("markdown missing first row:\n%s", out)
	}
	if !strings.Contains(out, "| 2 | `hello,world` | 22 | Very weak |") {
		t.Errorf("markdown missing second row:\n%s", out)
	}
}

func TestRenderEmptyHistory(t *testing.T) {
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON, FormatMarkdown} {
		data, err := Render(f, nil)
		if err != nil {
			t.Errorf("Render(%q, nil) unexpected error: %v", f, err)
			continue
		}
		if len(data) == 0 && f != FormatText {
			t.Errorf("Render(%q, nil) produced no output", f)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatText, "text/plain; charset=utf-8"},
		{FormatCSV, "text/csv"},
		{FormatJSON, "application/json"},
		{FormatMarkdown, "text/markdown; charset=utf-8"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.f); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := Filename(FormatCSV, now); got != "lockforge-history-20250601-120000.csv" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	got, err := WriteFile(path, FormatText, sampleEntries())
	if err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("WriteFile() returned %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back export: %v", err)
	}
	if string(data) != "Xk2!pQ9#\nhello,world\n" {
		t.Errorf("file contents = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}
