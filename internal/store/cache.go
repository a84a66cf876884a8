package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// ReadCache performs the primary-key lookup of §4.3: the first cache row
// whose encoded_text equals encodedText, or (nil, false) if none. Per
// Open Question 2 (§9), we specify equality rather than the original's
// "IS" semantics, since encoded_text is NOT NULL.
func (s *Store) ReadCache(encodedText string) (*types.CacheRow, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, encoded_text, decoded_text, path, successful, execution_time_ms, timestamp
		 FROM cache WHERE encoded_text = ? LIMIT 1`, encodedText)

	var (
		id              int64
		enc, dec, path  string
		successful      bool
		execMS          int64
		timestampRaw    string
	)
	err := row.Scan(&id, &enc, &dec, &path, &successful, &execMS, &timestampRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, types.NewStoreError(fmt.Errorf("read_cache: %w", err))
	}

	decodedPath, err := unmarshalPath(path)
	if err != nil {
		return nil, false, types.NewStoreError(fmt.Errorf("read_cache: unmarshal path: %w", err))
	}
	ts, _ := time.ParseInLocation(types.TimestampLayout, timestampRaw, time.Local)

	return &types.CacheRow{
		ID:              id,
		EncodedText:     enc,
		DecodedText:     dec,
		Path:            decodedPath,
		Successful:      successful,
		ExecutionTimeMS: execMS,
		Timestamp:       ts,
	}, true, nil
}

// InsertCache writes a completed search result (§4.3 insert_cache). Per
// Open Question 1 (§9), the underlying SQL execute's own affected-rows
// result is intentionally discarded; failure here is logged by the
// caller (Search never fails because the cache write failed) and
// propagated as an error for that logging, not as a fatal condition.
func (s *Store) InsertCache(row types.CacheRow) error {
	pathJSON, err := marshalPath(row.Path)
	if err != nil {
		return types.NewStoreError(fmt.Errorf("insert_cache: marshal path: %w", err))
	}
	_, err = s.db.Exec(
		`INSERT INTO cache (encoded_text, decoded_text, path, successful, execution_time_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		row.EncodedText, row.DecodedText, pathJSON, row.Successful, row.ExecutionTimeMS, nowStamp())
	if err != nil {
		logging.Get(logging.CategoryStore).Warnw("insert_cache failed", "err", err)
		return types.NewStoreError(fmt.Errorf("insert_cache: %w", err))
	}
	return nil
}
