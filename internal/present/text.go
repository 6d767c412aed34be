package present

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// WriteText renders p as aligned plain text for terminals.
func WriteText(w io.Writer, p Patch) error {
	tw := newTabWriter(w)
	tw.writef("Card:\t%s\n", p.CardName)
	tw.writef("%s:\t%s\n", p.LiveStatus, p.LivePrice)
	tw.writef("%s:\t%s\n", p.AvgStatus, p.AvgPrice)
	tw.writef("%s:\t%s\n", p.UnitsStatus, p.UnitsSold)
	tw.writef("%s\n", p.MarketMin)
	if p.Link != nil {
		tw.writef("%s:\t%s\n", p.Link.Label, p.Link.URL)
	}
	if p.Message != "" {
		tw.writef("\n%s\n", p.Message)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(p.History) > 0 || p.HistoryEmpty != "" {
		tw = newTabWriter(w)
		tw.writef("\nCONDITION\tPRICE\tSTATUS\tDATE\n")
		for _, h := range p.History {
			date := h.Date
			if date == "" {
				date = "-"
			}
			tw.writef("%s\t%s\t%s\t%s\n", h.Condition, h.Price, h.Status, date)
		}
		if len(p.History) == 0 {
			tw.writef("%s\n", p.HistoryEmpty)
		}
		if err := tw.finish(); err != nil {
			return err
		}
	}

	if len(p.Chart) > 0 {
		tw = newTabWriter(w)
		tw.writef("\nWEEK\tAVG\tSOLD\n")
		for _, c := range p.Chart {
			tw.writef("%s\t%s\t%d\n", c.Week, c.AvgPrice, c.Volume)
		}
		return tw.finish()
	}
	return nil
}
