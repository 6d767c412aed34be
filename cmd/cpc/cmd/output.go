package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/card-price-checker/internal/api/client"
	"github.com/donaldgifford/card-price-checker/pkg/stats"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
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

func printPlan(w io.Writer, resp *apiclient.NormalizeResponse) error {
	id := resp.Identity
	tw := newTabWriter(w)
	tw.writef("Subject:\t%s\n", dash(id.Subject))
	tw.writef("Card number:\t%s\n", dash(id.CardNumber))
	tw.writef("Set marker:\t%s\n", dash(id.SetMarker))
	tw.writef("Year:\t%s\n", dash(id.Year))
	tw.writef("Language:\t%s\n", dash(id.Language))
	tw.writef("Cleaned:\t%s\n\n", id.Cleaned)
	tw.writef("TIER\tKIND\tQUERY\n")
	for _, q := range resp.Plan.Primary {
		tw.writef("primary\t%s\t%s\n", q.Kind, q.Text)
	}
	for _, q := range resp.Plan.Fallback {
		tw.writef("fallback\t%s\t%s\n", q.Kind, q.Text)
	}
	return tw.finish()
}

func printStats(w io.Writer, s *domain.AggregateStats) error {
	tw := newTabWriter(w)
	tw.writef("Grade:\t%s\n", s.Grade)
	tw.writef("Live ask:\t%s\n", s.LiveAsk.Display)
	tw.writef("Trimmed average:\t%s\n", s.TrimmedAverage.Display)
	tw.writef("Units sold (30d):\t%d\n", s.UnitsSold30d)
	tw.writef("Pages:\t%d fetched, %d failed\n", s.PagesFetched, s.PagesFailed)
	if !s.DataAvailable {
		tw.writef("Data:\tunavailable\n")
	}
	if len(s.WeeklyBuckets) > 0 {
		tw.writef("\nWEEK\tAVG\tSOLD\n")
		for _, b := range s.WeeklyBuckets {
			avg := domain.NotAvailable
			if b.AvgPrice != nil {
				avg = stats.FormatUSD(*b.AvgPrice)
			}
			tw.writef("%s\t%s\t%d\n", b.Start.Format(time.DateOnly), avg, b.Volume)
		}
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	if q.Unlimited {
		tw.writef("Daily limit:\tunlimited\n")
	} else {
		tw.writef("Daily limit:\t%d\n", q.DailyLimit)
		tw.writef("Remaining:\t%d\n", q.Remaining)
	}
	tw.writef("Used:\t%d\n", q.DailyUsed)
	if !q.ResetAt.IsZero() {
		tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format(time.RFC1123))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
