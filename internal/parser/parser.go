package parser

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/evtools/evtchart/internal/models"
)

// Timestamp layouts tried in order. The bracketed code-server format comes
// first since that is the primary input; the rest cover plain ISO variants.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.000", // code-server exthost.log
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Bracketed layout: [timestamp] [tag]... message
// The event marker is the last tag before the message body.
var bracketRe = regexp.MustCompile(`^\[([^\]]+)\]((?:\s*\[[^\]]+\])*)\s*(.*)$`)
var tagRe = regexp.MustCompile(`\[([^\]]+)\]`)

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseLine converts a single log line into a LogRecord. The second return
// value is false for malformed lines (no recognizable timestamp or marker).
//
// Two layouts are accepted:
//
//	[2021-05-01 19:01:27.310] [exthost] [info] ExtensionService#loadCommonJSModule
//	2021-05-01T19:01:27 LOGIN user=alice
//
// In the bracketed layout the event marker is the last bracketed tag; a line
// with a timestamp but no tags counts as a generic "log" event. In the plain
// layout the first field is the timestamp and the second is the marker.
func ParseLine(line string) (models.LogRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return models.LogRecord{}, false
	}

	if strings.HasPrefix(line, "[") {
		return parseBracketed(line)
	}
	return parsePlain(line)
}

func parseBracketed(line string) (models.LogRecord, bool) {
	matches := bracketRe.FindStringSubmatch(line)
	if matches == nil {
		return models.LogRecord{}, false
	}

	ts, ok := parseTimestamp(matches[1])
	if !ok {
		return models.LogRecord{}, false
	}

	eventType := "log"
	tags := tagRe.FindAllStringSubmatch(matches[2], -1)
	if len(tags) > 0 {
		eventType = tags[len(tags)-1][1]
	}

	return models.LogRecord{Timestamp: ts, EventType: eventType}, true
}

func parsePlain(line string) (models.LogRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return models.LogRecord{}, false
	}

	// Single-field timestamp first, then the two-field "date time" variant.
	if ts, ok := parseTimestamp(fields[0]); ok {
		return models.LogRecord{Timestamp: ts, EventType: fields[1]}, true
	}
	if len(fields) >= 3 {
		if ts, ok := parseTimestamp(fields[0] + " " + fields[1]); ok {
			return models.LogRecord{Timestamp: ts, EventType: fields[2]}, true
		}
	}
	return models.LogRecord{}, false
}

// Scanner lazily yields LogRecords from a line-oriented reader. Malformed
// lines are skipped and counted; they never abort the scan. A Scanner is a
// single forward pass and cannot be rewound.
type Scanner struct {
	s       *bufio.Scanner
	rec     models.LogRecord
	line    int
	skipped int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Scan advances to the next well-formed record, skipping malformed lines.
// It returns false at end of input or on a read error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		rec, ok := ParseLine(s.s.Text())
		if !ok {
			s.skipped++
			slog.Debug("skipping malformed log line", "line", s.line)
			continue
		}
		s.rec = rec
		return true
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() models.LogRecord { return s.rec }

// Skipped returns the number of malformed lines seen so far.
func (s *Scanner) Skipped() int { return s.skipped }

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error { return s.s.Err() }

// ReadFile parses a whole log file and returns the records plus the count of
// skipped lines. A missing or unreadable file yields a FileAccessError.
func ReadFile(path string) ([]models.LogRecord, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, &models.FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	var records []models.LogRecord
	scanner := NewScanner(file)
	for scanner.Scan() {
		records = append(records, scanner.Record())
	}
	if err := scanner.Err(); err != nil {
		return nil, scanner.Skipped(), &models.FileAccessError{Path: path, Err: err}
	}
	return records, scanner.Skipped(), nil
}
