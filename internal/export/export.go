// Package export renders password history into downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
)

// Format identifies an export encoding.
type Format string

const (
	FormatText     Format = "txt"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied format name to a Format. The empty
// string means plain text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render encodes entries in the given format. Entries are written in the
// order given, newest first.
func Render(f Format, entries []history.Entry) ([]byte, error) {
	switch f {
	case FormatText:
		return renderText(entries), nil
	case FormatCSV:
		return renderCSV(entries)
	case FormatJSON:
		return renderJSON(entries)
	case FormatMarkdown:
		return renderMarkdown(entries), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// renderText writes one password per line, the format browsers save as a
// plain .txt download.
func renderText(entries []history.Entry) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Password)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func renderCSV(entries []history.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"id", "password", "score", "label", "created_at"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.ID,
			e.Password,
			strconv.Itoa(e.Score),
			e.Label,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

func renderJSON(entries []history.Entry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return append(data, '\n'), nil
}

func renderMarkdown(entries []history.Entry) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Password History\n\n")
	buf.WriteString("| # | Password | Score | Label | Created |\n")
	buf.WriteString("|---|----------|-------|-------|---------|\n")

	for i, e := range entries {
		// Backticks keep symbol-heavy passwords from being read as markup.
		buf.WriteString(fmt.Sprintf("| %d | `%s` | %d | %s | %s |\n",
			i+1, e.Password, e.Score, e.Label, e.CreatedAt.Format(time.RFC3339)))
	}

	return buf.Bytes()
}

// ContentType returns the MIME type a download of the format should carry.
func ContentType(f Format) string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Filename builds a timestamped download name like
// lockforge-history-20250601-120000.txt.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("lockforge-history-%s.%s", now.Format("20060102-150405"), f)
}

// WriteFile renders entries and writes them to path, returning the path
// used. An empty path defaults to a timestamped name in the current
// directory. The file is created with owner-only permissions.
func WriteFile(path string, f Format, entries []history.Entry) (string, error) {
	if path == "" {
		path = Filename(f, time.Now())
	}

	data, err := Render(f, entries)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}

	return path, nil
}
