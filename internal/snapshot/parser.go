// Package snapshot reads line-oriented world-state dumps into tile
// records. The format has no schema or version field, so parsing is
// tolerant: unrecognized lines are skipped and unknown keys are kept.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
)

// headerPrefix opens a tile block: "TILE <non-negative integer>".
const headerPrefix = "TILE"

// Parser converts a snapshot dump into tile records.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser logging skipped-line counts to logger.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseFile parses the snapshot at path. A missing or unreadable file
// is fatal to the run; the error names the path.
func (p *Parser) ParseFile(path string) ([]domain.TileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads tile blocks from r. The reader runs as a two-state
// classifier: outside a block only a header line is meaningful; inside
// a block each indented "key: value" line adds a property until the
// next header or end of input. The final open block is emitted at EOF
// without needing a terminator. Records come back sorted ascending by
// tile ID so downstream output is deterministic.
func (p *Parser) Parse(r io.Reader) ([]domain.TileRecord, error) {
	var (
		records []domain.TileRecord
		inBlock bool
		tileID  int
		attrs   map[string]domain.Value
		ignored int
		lineNum int
	)

	flush := func() {
		if inBlock {
			records = append(records, domain.NewTileRecord(tileID, attrs))
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if id, ok := parseHeader(line); ok {
			flush()
			inBlock = true
			tileID = id
			attrs = make(map[string]domain.Value)
			continue
		}

		if !inBlock {
			if line != "" {
				ignored++
			}
			continue
		}

		key, value, ok := parseProperty(line)
		if !ok {
			if line != "" {
				ignored++
			}
			continue
		}
		attrs[key] = coerceValue(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	flush()

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	if ignored > 0 {
		p.logger.Debug("skipped unrecognized snapshot lines", "count", ignored, "lines_read", lineNum)
	}
	p.logger.Info("parsed snapshot", "tiles", len(records))
	return records, nil
}

// parseHeader matches "TILE <digits>", tolerating trailing text the
// way the original cache reader did.
func parseHeader(line string) (int, bool) {
	rest, ok := strings.CutPrefix(line, headerPrefix)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 || !isDigits(fields[0]) {
		return 0, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// parseProperty matches "<indentation><key>:<whitespace><value>" with
// a word-character key and a non-empty value.
func parseProperty(line string) (key, value string, ok bool) {
	if line == "" || (line[0] != ' ' && line[0] != '\t') {
		return "", "", false
	}
	trimmed := strings.TrimLeft(line, " \t")
	idx := strings.IndexByte(trimmed, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = trimmed[:idx]
	if !isWordKey(key) {
		return "", "", false
	}
	value = strings.TrimSpace(trimmed[idx+1:])
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

func isWordKey(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// coerceValue applies the dump's dynamic typing: values containing a
// decimal point try a float parse, everything else tries an integer
// parse, and any failure keeps the raw string (which is how the "null"
// sentinel and the "[...]" marker survive).
func coerceValue(text string) domain.Value {
	if strings.Contains(text, ".") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return domain.FloatValue(f)
		}
		return domain.StringValue(text)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return domain.IntValue(i)
	}
	return domain.StringValue(text)
}
