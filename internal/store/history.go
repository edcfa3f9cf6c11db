package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// sourceHashDomain prefixes source hashes for domain separation. The
// version suffix allows a future algorithm change without ambiguity.
const sourceHashDomain = "codeshift/source/v1"

// Record is one completed conversion.
type Record struct {
	ID          string
	CreatedAt   time.Time
	SourceLang  string
	TargetLang  string
	SourceHash  string
	SourceBytes int
	OutputBytes int
}

// SourceHash computes the content hash identifying an input text. The
// text is NFC-normalized first so visually identical inputs with
// different Unicode compositions hash the same.
func SourceHash(src string) string {
	h := sha256.New()
	h.Write([]byte(sourceHashDomain))
	h.Write([]byte{0x00}) // domain/data boundary
	h.Write([]byte(norm.NFC.String(src)))
	return hex.EncodeToString(h.Sum(nil))
}

// Append writes one conversion record. When rec.ID is empty a fresh UUID
// is assigned; when rec.CreatedAt is zero the current time is used. The
// stored record is returned.
func (s *Store) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(id, created_at, source_lang, target_lang, source_hash, source_bytes, output_bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.SourceLang,
		rec.TargetLang,
		rec.SourceHash,
		rec.SourceBytes,
		rec.OutputBytes,
	)
	if err != nil {
		return Record{}, fmt.Errorf("append conversion: %w", err)
	}
	return rec, nil
}

// List returns the most recent records, newest first, up to limit.
// A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, created_at, source_lang, target_lang, source_hash, source_bytes, output_bytes
		FROM conversions
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &created, &rec.SourceLang, &rec.TargetLang,
			&rec.SourceHash, &rec.SourceBytes, &rec.OutputBytes); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
