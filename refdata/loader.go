package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Table file names under the data directory.
const (
	ServicesFile = "services.json"
	SchemesFile  = "schemes.json"
)

// ErrUnavailable indicates a reference table could not be loaded: the file
// is missing, unreadable, or not a valid JSON array. Resolvers convert it
// into a user-facing "no data" message.
var ErrUnavailable = errors.New("reference data unavailable")

// Loader reads reference tables from a data directory. Every call reads
// fresh from disk; wrap a Loader in a Store for process-wide caching.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader creates a Loader for the given data directory.
// A nil logger defaults to a no-op logger.
func NewLoader(dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{dir: dir, logger: logger}
}

// Services loads the service-guide table.
func (l *Loader) Services() ([]ServiceRecord, error) {
	return loadTable(l, ServicesFile, func(r ServiceRecord) bool { return r.Name != "" })
}

// Schemes loads the welfare-scheme table.
func (l *Loader) Schemes() ([]SchemeRecord, error) {
	return loadTable(l, SchemesFile, func(r SchemeRecord) bool { return r.Name != "" })
}

// loadTable reads and decodes one JSON array file. Records rejected by
// named are skipped with a warning; file and parse failures wrap
// ErrUnavailable.
func loadTable[T any](l *Loader, filename string, named func(T) bool) ([]T, error) {
	path := filepath.Join(l.dir, filename)

	raw, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error("failed to read reference table",
			zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, filename, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		l.logger.Error("failed to parse reference table",
			zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, filename, err)
	}

	out := make([]T, 0, len(records))
	for i, record := range records {
		if !named(record) {
			l.logger.Warn("skipping record without name",
				zap.String("table", filename), zap.Int("index", i))
			continue
		}
		out = append(out, record)
	}

	l.logger.Debug("loaded reference table",
		zap.String("table", filename), zap.Int("records", len(out)))
	return out, nil
}
