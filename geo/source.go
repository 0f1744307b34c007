package geo

import "context"

// Selection is the currently selected country as reported by whatever
// drives country choice in the surrounding application (a picker
// widget, an account profile, a request header).
type Selection struct {
	ISO2     string
	DialCode string
}

// Source supplies the current country selection on demand. The second
// return value is false while no country has been selected yet; the
// error covers sources with a remote backend (SQL, Redis). Pure
// in-memory sources return a nil error.
//
// The contract is pull-only: normalization code asks at call time and
// never subscribes. Re-running normalization when the selection
// changes is the adapter's responsibility.
type Source interface {
	Current(ctx context.Context) (Selection, bool, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) (Selection, bool, error)

func (f SourceFunc) Current(ctx context.Context) (Selection, bool, error) { return f(ctx) }

// StaticSource reports a fixed country resolved against the built-in
// registry. The zero value means "nothing selected."
type StaticSource struct {
	iso2 string
	code string
	set  bool
}

// NewStaticSource resolves iso2 against the registry. Unknown or
// malformed codes yield an empty source rather than an error: a form
// with no usable country degrades to digits-only normalization.
func NewStaticSource(iso2 string) StaticSource {
	norm, ok := NormalizeISO2(iso2)
	if !ok {
		return StaticSource{}
	}
	code, ok := dialCodes[norm]
	if !ok {
		return StaticSource{}
	}
	return StaticSource{iso2: norm, code: code, set: true}
}

func (s StaticSource) Current(context.Context) (Selection, bool, error) {
	if !s.set {
		return Selection{}, false, nil
	}
	return Selection{ISO2: s.iso2, DialCode: s.code}, true, nil
}
