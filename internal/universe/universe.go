package universe

import (
	"context"
	"errors"
)

// Loader produces the ordered list of symbols to scan.
type Loader interface {
	Load(ctx context.Context) ([]string, error)
}

var (
	// ErrNoTable is returned when the reference page has no table.
	ErrNoTable = errors.New("no table on reference page")
	// ErrNoSymbolColumn is returned when the first table lacks the symbol column.
	ErrNoSymbolColumn = errors.New("symbol column not found")
	// ErrEmptyUniverse is returned when no symbols could be extracted.
	ErrEmptyUniverse = errors.New("universe is empty")
)

// StaticLoader returns a fixed symbol list.
type StaticLoader struct {
	Symbols []string
}

func (s StaticLoader) Load(_ context.Context) ([]string, error) {
	if len(s.Symbols) == 0 {
		return nil, ErrEmptyUniverse
	}
	out := make([]string, len(s.Symbols))
	copy(out, s.Symbols)
	return out, nil
}
