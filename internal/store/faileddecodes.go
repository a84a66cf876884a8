package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// InsertFailedDecode records a human rejection of plaintext under the
// given checker (§4.3 insert_failed_decode). The spec signature takes a
// uuid for the row identity; we generate one with google/uuid (mirroring
// internal/campaign/decomposer.go's uuid.New() use) purely for a stable
// external correlation id in logs — the table's own primary key is
// still the autoincrement id.
func (s *Store) InsertFailedDecode(plaintext string, result types.CheckResult) error {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO failed_decodes (plaintext, checker, timestamp) VALUES (?, ?, ?)`,
		plaintext, result.CheckerName, nowStamp())
	if err != nil {
		logging.Get(logging.CategoryStore).Warnw("insert_failed_decode failed", "id", id, "err", err)
		return types.NewStoreError(fmt.Errorf("insert_failed_decode: %w", err))
	}
	logging.Get(logging.CategoryStore).Debugw("recorded failed decode", "id", id, "checker", result.CheckerName)
	return nil
}

// ReadFailedDecodes looks up a prior human rejection of plaintext (§4.3
// read_failed_decodes), returning the most recent row if more than one
// checker has vetoed the same string.
func (s *Store) ReadFailedDecodes(plaintext string) (*types.FailedDecodesRow, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, plaintext, checker, timestamp FROM failed_decodes
		 WHERE plaintext = ? ORDER BY id DESC LIMIT 1`, plaintext)

	var (
		id           int64
		pt, checker  string
		timestampRaw string
	)
	err := row.Scan(&id, &pt, &checker, &timestampRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, types.NewStoreError(fmt.Errorf("read_failed_decodes: %w", err))
	}
	ts, _ := time.ParseInLocation(types.TimestampLayout, timestampRaw, time.Local)
	return &types.FailedDecodesRow{ID: id, Plaintext: pt, Checker: checker, Timestamp: ts}, true, nil
}

// IsFailedUnder reports whether plaintext was previously vetoed
// specifically under checkerName (§3 invariant: "A text present in
// failed_decodes for a given checker must not be returned as the final
// answer when the same checker is active").
func (s *Store) IsFailedUnder(plaintext, checkerName string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM failed_decodes WHERE plaintext = ? AND checker = ? LIMIT 1`,
		plaintext, checkerName).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, types.NewStoreError(fmt.Errorf("is_failed_under: %w", err))
	}
	return true, nil
}
