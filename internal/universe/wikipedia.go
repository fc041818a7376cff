package universe

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultURL lists the S&P 500 constituents; its first table carries a Symbol column.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

// DefaultColumn is the header of the ticker column.
const DefaultColumn = "Symbol"

// WikipediaLoader reads the symbol column of the first HTML table on a page.
type WikipediaLoader struct {
	URL    string
	Column string
	client *resty.Client
	log    zerolog.Logger
}

// NewWikipediaLoader creates a loader for url. An empty url means DefaultURL.
func NewWikipediaLoader(url string, timeout time.Duration, log zerolog.Logger) *WikipediaLoader {
	if url == "" {
		url = DefaultURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "StockPicker/1.0").
		SetLogger(restyNop{})
	return &WikipediaLoader{URL: url, Column: DefaultColumn, client: client, log: log}
}

func (l *WikipediaLoader) Load(ctx context.Context) ([]string, error) {
	l.log.Debug().Str("url", l.URL).Msg("fetching universe")

	resp, err := l.client.R().SetContext(ctx).Get(l.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch universe: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch universe: status %d", resp.StatusCode())
	}

	symbols, err := ParseTable(resp.Body(), l.Column)
	if err != nil {
		return nil, err
	}
	l.log.Info().Int("symbols", len(symbols)).Msg("universe loaded")
	return symbols, nil
}

// ParseTable extracts column from the first <table> in an HTML document, in row order.
func ParseTable(html []byte, column string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse universe page: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	rows := table.Find("tr")
	idx := -1
	headerRow := -1
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		tr.Find("th").EachWithBreak(func(j int, th *goquery.Selection) bool {
			if strings.TrimSpace(th.Text()) == column {
				idx = j
				return false
			}
			return true
		})
		if idx >= 0 {
			headerRow = i
			return false
		}
		return true
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSymbolColumn, column)
	}

	var symbols []string
	rows.Each(func(i int, tr *goquery.Selection) {
		if i <= headerRow {
			return
		}
		cell := tr.Find("td").Eq(idx)
		if cell.Length() == 0 {
			return
		}
		if sym := strings.TrimSpace(cell.Text()); sym != "" {
			symbols = append(symbols, sym)
		}
	})
	if len(symbols) == 0 {
		return nil, ErrEmptyUniverse
	}
	return symbols, nil
}

type restyNop struct{}

func (restyNop) Errorf(string, ...interface{}) {}
func (restyNop) Warnf(string, ...interface{})  {}
func (restyNop) Debugf(string, ...interface{}) {}
