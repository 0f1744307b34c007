package redistore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/formbridge/go-contact/dialcode"
	"github.com/formbridge/go-contact/geo"
)

const defaultKey = "contact:dialcodes"

type Store struct {
	rdb redis.UniversalClient
	key string
}

func New(rdb redis.UniversalClient, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{rdb: rdb, key: key}
}

// DialCode resolves iso2 against the hash. A missing field reports
// (_, false, nil); only transport failures produce an error.
func (s *Store) DialCode(ctx context.Context, iso2 string) (string, bool, error) {
	norm, ok := geo.NormalizeISO2(iso2)
	if !ok {
		return "", false, nil
	}

	code, err := s.rdb.HGet(ctx, s.key, norm).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redistore: dial code lookup: %w", err)
	}
	return code, true, nil
}

// Upsert writes a registry snapshot into the hash in one HSET. Entries
// with malformed codes are skipped.
func (s *Store) Upsert(ctx context.Context, countries []geo.Country) error {
	pairs := make([]any, 0, len(countries)*2)
	for _, c := range countries {
		iso2, ok := geo.NormalizeISO2(c.ISO2)
		if !ok {
			continue
		}
		code := dialcode.Digits(c.DialCode)
		if code == "" {
			continue
		}
		pairs = append(pairs, iso2, code)
	}
	if len(pairs) == 0 {
		return nil
	}

	if err := s.rdb.HSet(ctx, s.key, pairs...).Err(); err != nil {
		return fmt.Errorf("redistore: upsert: %w", err)
	}
	return nil
}

// Countries reads the whole hash. Order is unspecified.
func (s *Store) Countries(ctx context.Context) ([]geo.Country, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redistore: list countries: %w", err)
	}

	out := make([]geo.Country, 0, len(fields))
	for iso2, code := range fields {
		out = append(out, geo.Country{ISO2: iso2, DialCode: code})
	}
	return out, nil
}

// Source adapts the store to geo.Source for a fixed selected country.
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
