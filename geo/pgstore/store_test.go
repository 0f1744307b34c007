package pgstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formbridge/go-contact/geo"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestDialCodeFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT dial_code FROM contact_countries`).
		WithArgs("CZ").
		WillReturnRows(sqlmock.NewRows([]string{"dial_code"}).AddRow("420"))

	code, ok, err := store.DialCode(context.Background(), "cz")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "420", code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDialCodeMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT dial_code FROM contact_countries`).
		WithArgs("ZX").
		WillReturnRows(sqlmock.NewRows([]string{"dial_code"}))

	code, ok, err := store.DialCode(context.Background(), "ZX")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestDialCodeMalformedISO2SkipsQuery(t *testing.T) {
	store, mock := newMockStore(t)

	code, ok, err := store.DialCode(context.Background(), "CZE")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, code)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query expected for malformed input")
}

func TestDialCodeTransportError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT dial_code FROM contact_countries`).
		WithArgs("CZ").
		WillReturnError(errors.New("connection reset"))

	_, _, err := store.DialCode(context.Background(), "CZ")
	assert.ErrorContains(t, err, "dial code lookup")
}

func TestUpsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO contact_countries`).
		WithArgs("CZ", "420").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO contact_countries`).
		WithArgs("DE", "49").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Upsert(context.Background(), []geo.Country{
		{ISO2: "cz", DialCode: "420"},
		{ISO2: "BAD", DialCode: "1"}, // skipped
		{ISO2: "DE", DialCode: "49"},
		{ISO2: "FR", DialCode: ""}, // skipped
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountries(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT iso2, dial_code FROM contact_countries`).
		WillReturnRows(sqlmock.NewRows([]string{"iso2", "dial_code"}).
			AddRow("CZ", "420").
			AddRow("DE", "49"))

	got, err := store.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []geo.Country{{ISO2: "CZ", DialCode: "420"}, {ISO2: "DE", DialCode: "49"}}, got)
}

func TestSource(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT dial_code FROM contact_countries`).
		WithArgs("CZ").
		WillReturnRows(sqlmock.NewRows([]string{"dial_code"}).AddRow("420"))

	sel, ok, err := store.Source("cz").Current(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, geo.Selection{ISO2: "CZ", DialCode: "420"}, sel)
}
