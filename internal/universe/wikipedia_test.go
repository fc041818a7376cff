package universe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<table id="constituents">
  <thead><tr><th>Symbol</th><th>Security</th><th>GICS Sector</th></tr></thead>
  <tbody>
    <tr><td><a href="#">MMM</a></td><td>3M</td><td>Industrials</td></tr>
    <tr><td>AOS</td><td>A. O. Smith</td><td>Industrials</td></tr>
    <tr><td> BRK.B
    </td><td>Berkshire Hathaway</td><td>Financials</td></tr>
  </tbody>
</table>
<table><tr><th>Symbol</th></tr><tr><td>OLD</td></tr></table>
</body></html>`

func TestParseTable(t *testing.T) {
	symbols, err := ParseTable([]byte(page), DefaultColumn)
	require.NoError(t, err)
	assert.Equal(t, []string{"MMM", "AOS", "BRK.B"}, symbols)
}

func TestParseTable_ColumnNotFirst(t *testing.T) {
	html := `<table><tr><th>Name</th><th>Ticker</th></tr><tr><td>Apple</td><td>AAPL</td></tr></table>`
	symbols, err := ParseTable([]byte(html), "Ticker")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, symbols)
}

func TestParseTable_Errors(t *testing.T) {
	_, err := ParseTable([]byte(`<p>no tables</p>`), DefaultColumn)
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = ParseTable([]byte(`<table><tr><th>Ticker</th></tr><tr><td>A</td></tr></table>`), DefaultColumn)
	assert.ErrorIs(t, err, ErrNoSymbolColumn)

	_, err = ParseTable([]byte(`<table><tr><th>Symbol</th></tr></table>`), DefaultColumn)
	assert.ErrorIs(t, err, ErrEmptyUniverse)
}

func TestWikipediaLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	l := NewWikipediaLoader(srv.URL, 0, zerolog.Nop())
	symbols, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, symbols, 3)
}

func TestWikipediaLoader_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewWikipediaLoader(srv.URL, 0, zerolog.Nop()).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestStaticLoader(t *testing.T) {
	symbols, err := StaticLoader{Symbols: []string{"A", "B"}}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, symbols)

	_, err = StaticLoader{}.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptyUniverse)
}
