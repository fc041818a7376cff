package notifier

import (
	"context"
	"fmt"
	"io"

	"StockPicker/internal/model"
)

// Notifier delivers a run result.
type Notifier interface {
	Notify(ctx context.Context, res *model.Result) error
}

// ConsoleNotifier prints reports to a writer, usually stdout.
type ConsoleNotifier struct {
	Out  io.Writer
	Rows int
}

// NewConsoleNotifier creates a notifier that shows rows trailing rows per symbol.
func NewConsoleNotifier(out io.Writer, rows int) *ConsoleNotifier {
	if rows <= 0 {
		rows = 5
	}
	return &ConsoleNotifier{Out: out, Rows: rows}
}

func (c *ConsoleNotifier) Notify(_ context.Context, res *model.Result) error {
	if _, err := io.WriteString(c.Out, FormatReport(res, c.Rows)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
