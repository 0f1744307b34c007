// Package pgstore keeps the dial-code registry in Postgres for
// deployments where the country table is managed centrally.
//
// Expected schema:
//
//	CREATE TABLE contact_countries (
//	    iso2      CHAR(2) PRIMARY KEY,
//	    dial_code TEXT NOT NULL
//	);
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/formbridge/go-contact/dialcode"
	"github.com/formbridge/go-contact/geo"
)

// Executor abstracts *sql.DB and *sql.Tx so callers pick the
// transaction scope.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open connects through the pgx stdlib driver and verifies the
// connection with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type Store struct {
	db Executor
}

func New(db Executor) *Store {
	return &Store{db: db}
}

// DialCode resolves iso2 against the table. A missing row reports
// (_, false, nil); only transport-level failures produce an error.
func (s *Store) DialCode(ctx context.Context, iso2 string) (string, bool, error) {
	norm, ok := geo.NormalizeISO2(iso2)
	if !ok {
		return "", false, nil
	}

	var code string
	err := s.db.QueryRowContext(ctx,
		`SELECT dial_code FROM contact_countries WHERE iso2 = $1`, norm,
	).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pgstore: dial code lookup: %w", err)
	}
	return code, true, nil
}

// Upsert writes a registry snapshot, typically one fetched by
// geo/remote. Entries with malformed codes are skipped.
func (s *Store) Upsert(ctx context.Context, countries []geo.Country) error {
	for _, c := range countries {
		iso2, ok := geo.NormalizeISO2(c.ISO2)
		if !ok {
			continue
		}
		code := dialcode.Digits(c.DialCode)
		if code == "" {
			continue
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO contact_countries (iso2, dial_code) VALUES ($1, $2)
			 ON CONFLICT (iso2) DO UPDATE SET dial_code = EXCLUDED.dial_code`,
			iso2, code,
		)
		if err != nil {
			return fmt.Errorf("pgstore: upsert %s: %w", iso2, err)
		}
	}
	return nil
}

// Countries reads the whole table ordered by ISO2.
func (s *Store) Countries(ctx context.Context) ([]geo.Country, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iso2, dial_code FROM contact_countries ORDER BY iso2`)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list countries: %w", err)
	}
	defer rows.Close()

	var out []geo.Country
	for rows.Next() {
		var c geo.Country
		if err := rows.Scan(&c.ISO2, &c.DialCode); err != nil {
			return nil, fmt.Errorf("pgstore: scan country: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: list countries: %w", err)
	}
	return out, nil
}

// Source adapts the store to geo.Source for a fixed selected country.
// The lookup happens at call time, so table updates are visible to the
// next normalization.
func (s *Store) Source(iso2 string) geo.Source {
	return geo.SourceFunc(func(ctx context.Context) (geo.Selection, bool, error) {
		code, ok, err := s.DialCode(ctx, iso2)
		if err != nil || !ok {
			return geo.Selection{}, false, err
		}
		norm, _ := geo.NormalizeISO2(iso2)
		return geo.Selection{ISO2: norm, DialCode: code}, true, nil
	})
}
