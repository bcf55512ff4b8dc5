// Package store implements the file-backed record stores. Each collection is
// held in memory and mirrored to a single JSON document that is rewritten
// wholesale on every mutation. A store exclusively owns its backing file; no
// other component writes it.
package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/pkg/apperrors"
)

// jsonFile mirrors an in-memory collection of type C to a JSON document.
type jsonFile[C any] struct {
	path   string
	logger zerolog.Logger
}

func newJSONFile[C any](path string, logger zerolog.Logger) *jsonFile[C] {
	return &jsonFile[C]{path: path, logger: logger}
}

// Load reads the backing file into out. A missing file leaves out untouched
// and returns false, letting the caller seed a fresh collection. Malformed
// content is logged and leaves out untouched, but counts as found: the
// service stays available with an empty collection and no reseed. Load never
// fails the caller.
func (f *jsonFile[C]) Load(out *C) bool {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false
		}
		f.logger.Warn().Err(err).Str("path", f.path).Msg("Failed to read backing file, starting empty")
		return true
	}

	if err := json.Unmarshal(raw, out); err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("Malformed backing file, starting empty")
		return true
	}
	return true
}

// Save serializes the full collection and overwrites the backing file. The
// write error is logged here; callers only see the generic persistence kind.
func (f *jsonFile[C]) Save(collection C) error {
	raw, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		f.logger.Error().Err(err).Str("path", f.path).Msg("Failed to serialize collection")
		return apperrors.ErrPersistence
	}

	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		f.logger.Error().Err(err).Str("path", f.path).Msg("Failed to write backing file")
		return apperrors.ErrPersistence
	}
	return nil
}
