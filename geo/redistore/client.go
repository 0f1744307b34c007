// Package redistore keeps the dial-code registry in a Redis hash, one
// field per ISO2 code.
package redistore

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewUniversal is replaceable in unit tests.
var NewUniversal = func(opt *redis.UniversalOptions) redis.UniversalClient {
	return redis.NewUniversalClient(opt)
}

// NewClient connects and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	mode := normalizeMode(cfg.Mode)
	addrs := normalizeAddrs(cfg)
	if err := validateConfig(cfg, mode, addrs); err != nil {
		return nil, err
	}

	opt := &redis.UniversalOptions{
		Addrs:       addrs,
		MasterName:  strings.TrimSpace(cfg.MasterName),
		DB:          cfg.DB,
		Username:    cfg.Username,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
	}
	if cfg.TLSEnabled {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	rdb := NewUniversal(opt)

	pingTimeout := cfg.DialTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(c).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
