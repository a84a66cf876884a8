package types

import "time"

// CacheRow is the persisted form of one completed search (§3, §6 schema
// "cache").
type CacheRow struct {
	ID              int64
	EncodedText     string
	DecodedText     string
	Path            []CrackResult
	Successful      bool
	ExecutionTimeMS int64
	Timestamp       time.Time
}

// FailedDecodesRow records that a human vetoed plaintext as the final
// answer under a given checker (§3, §6 schema "failed_decodes").
type FailedDecodesRow struct {
	ID        int64
	Plaintext string
	Checker   string
	Timestamp time.Time
}

// TimestampLayout is the wire format for CacheRow/FailedDecodesRow
// timestamps: "YYYY-MM-DD HH:MM:SS" local time (§6).
const TimestampLayout = "2006-01-02 15:04:05"
