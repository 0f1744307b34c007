// Package remote fetches dial-code registry snapshots over HTTP, for
// deployments that manage the country table centrally instead of
// relying on the built-in one.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/formbridge/go-contact/dialcode"
	"github.com/formbridge/go-contact/geo"
	"github.com/formbridge/go-contact/retry"
)

const (
	defaultMaxElapsed = 15 * time.Second
	maxBodyBytes      = 1 << 20
)

// Loader downloads a JSON array of {iso2, dial_code} objects.
// Concurrent Fetch calls are collapsed into one request.
type Loader struct {
	url        string
	client     *http.Client
	maxElapsed time.Duration
	group      singleflight.Group
}

type Option func(*Loader)

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

func WithMaxElapsed(d time.Duration) Option {
	return func(l *Loader) { l.maxElapsed = d }
}

func NewLoader(url string, opts ...Option) *Loader {
	l := &Loader{
		url:        url,
		client:     &http.Client{Timeout: 10 * time.Second},
		maxElapsed: defaultMaxElapsed,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Fetch retrieves and sanitizes a snapshot. Entries with a malformed
// ISO2 code or a non-digit dial code are dropped, not fatal: a partly
// usable registry beats none. Transport failures are retried with
// exponential backoff until maxElapsed.
func (l *Loader) Fetch(ctx context.Context) ([]geo.Country, error) {
	v, err, _ := l.group.Do(l.url, func() (any, error) {
		var countries []geo.Country
		err := retry.Exponential(ctx, l.maxElapsed, func() error {
			var err error
			countries, err = l.fetchOnce(ctx)
			return err
		})
		return countries, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]geo.Country), nil
}

func (l *Loader) fetchOnce(ctx context.Context) ([]geo.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	var raw []geo.Country
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("registry fetch: decode: %w", err)
	}

	out := make([]geo.Country, 0, len(raw))
	for _, c := range raw {
		iso2, ok := geo.NormalizeISO2(c.ISO2)
		if !ok {
			continue
		}
		code := dialcode.Digits(c.DialCode)
		if code == "" || code != c.DialCode {
			continue
		}
		out = append(out, geo.Country{ISO2: iso2, DialCode: code})
	}
	return out, nil
}
