package redistore

import (
	"errors"
	"strings"
	"time"
)

type Mode = string

const (
	ModeSingle   Mode = "single"
	ModeSentinel Mode = "sentinel"
)

// Config describes the Redis deployment holding the dial-code hash.
// Cluster mode is intentionally unsupported: the registry is a single
// small hash and gains nothing from sharding.
type Config struct {
	Mode        Mode
	Addr        string
	Addrs       []string
	MasterName  string
	DB          int
	Username    string
	Password    string
	DialTimeout time.Duration
	TLSEnabled  bool
}

var (
	errAddressRequired    = errors.New("redistore: address is required")
	errUnsupportedMode    = errors.New("redistore: unsupported mode")
	errMasterNameRequired = errors.New("redistore: master name is required for sentinel mode")
	errSingleModeAddrs    = errors.New("redistore: single mode requires exactly one address")
	errInvalidDB          = errors.New("redistore: db must be >= 0")
)

func normalizeMode(v string) Mode {
	mode := strings.ToLower(strings.TrimSpace(v))
	if mode == "" {
		return ModeSingle
	}
	return Mode(mode)
}

func normalizeAddrs(cfg Config) []string {
	out := make([]string, 0, len(cfg.Addrs)+1)
	for _, a := range cfg.Addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		if a := strings.TrimSpace(cfg.Addr); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func validateConfig(cfg Config, mode Mode, addrs []string) error {
	if cfg.DB < 0 {
		return errInvalidDB
	}
	if len(addrs) == 0 {
		return errAddressRequired
	}

	switch mode {
	case ModeSingle:
		if len(addrs) != 1 {
			return errSingleModeAddrs
		}
		return nil
	case ModeSentinel:
		if strings.TrimSpace(cfg.MasterName) == "" {
			return errMasterNameRequired
		}
		return nil
	default:
		return errUnsupportedMode
	}
}
