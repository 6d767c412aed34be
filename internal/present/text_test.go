package present

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func TestWriteText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		patch   Patch
		want    []string
		notWant []string
	}{
		{
			name: "matched",
			patch: Patch{
				Outcome:     domain.OutcomeMatched,
				CardName:    "Pikachu 025/100",
				LivePrice:   "US $120",
				LiveStatus:  StatusLivePrice,
				AvgPrice:    "US $200",
				AvgStatus:   StatusAverageSold,
				UnitsSold:   "2",
				UnitsStatus: StatusUnitsSold,
				MarketMin:   "Min Market: $95",
				History: []HistoryRow{
					{Condition: "PSA 10", Price: "$210", Status: "SOLD", Date: "2025-06-28"},
					{Condition: "PSA 10", Price: "$190", Status: "SOLD"},
				},
				Chart: []ChartPoint{{Week: "Jun 23", AvgPrice: "US $210", Volume: 1}},
				Link:  &Link{Label: "View on SNKRDUNK", URL: "https://snkrdunk.com/en/trading-cards/42?slide=right"},
			},
			want: []string{
				"Card:", "Pikachu 025/100",
				"Live Price:", "US $120",
				"Average Sold:", "US $200",
				"Min Market: $95",
				"View on SNKRDUNK:",
				"CONDITION", "$210", "2025-06-28",
				"WEEK", "Jun 23",
			},
			notWant: []string{"No recent"},
		},
		{
			name: "no match",
			patch: Patch{
				Outcome:      domain.OutcomeNoMatch,
				CardName:     "mystery",
				LivePrice:    domain.NotAvailable,
				LiveStatus:   StatusNoMatch,
				HistoryEmpty: HistoryManualSearch,
				Message:      MessageNoMatch,
			},
			want:    []string{"No match found", HistoryManualSearch},
			notWant: []string{"WEEK"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, tt.patch))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteText_WriteError(t *testing.T) {
	t.Parallel()

	err := WriteText(failingWriter{}, Loading("Pikachu"))
	require.Error(t, err)
}
