package stats

import (
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

const (
	usdPrefix = "US $"
	trimRatio = 10 // discard count/trimRatio from each end
)

var priceChars = regexp.MustCompile(`[^0-9.]`)

var printer = message.NewPrinter(language.English)

// ParsePrice extracts the numeric amount from a currency-formatted string
// such as "US $1,234" or "¥12,000".
func ParsePrice(s string) (decimal.Decimal, bool) {
	digits := priceChars.ReplaceAllString(s, "")
	digits = strings.Trim(digits, ".")
	if digits == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatUSD renders d rounded to whole dollars with thousands separators.
func FormatUSD(d decimal.Decimal) string {
	return usdPrefix + printer.Sprintf("%d", d.Round(0).IntPart())
}

// NewMoney wraps an amount as available USD money.
func NewMoney(d decimal.Decimal) domain.Money {
	return domain.Money{Amount: d, Display: FormatUSD(d), Available: true}
}

// TrimmedMean sorts values, drops floor(n/10) from each end and averages the
// remainder. It reports false when nothing remains.
func TrimmedMean(values []decimal.Decimal) (decimal.Decimal, bool) {
	if len(values) == 0 {
		return decimal.Zero, false
	}

	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int {
		return a.Cmp(b)
	})

	k := len(sorted) / trimRatio
	kept := sorted[k : len(sorted)-k]
	if len(kept) == 0 {
		return decimal.Zero, false
	}
	return Mean(kept), true
}

// Mean averages values. The caller guarantees len(values) > 0.
func Mean(values []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(values[0], values[1:]...).Div(decimal.NewFromInt(int64(len(values))))
}

// MatchesGrade reports whether condition carries grade. Spacing and case are
// ignored and the grade must not run into a further digit, so "PSA 1" does
// not match "PSA 10".
func MatchesGrade(condition, grade string) bool {
	g := compact(grade)
	if g == "" {
		return true
	}
	c := compact(condition)

	for start := 0; ; {
		i := strings.Index(c[start:], g)
		if i < 0 {
			return false
		}
		end := start + i + len(g)
		if end >= len(c) || !isDigitOrDot(c[end]) {
			return true
		}
		start += i + 1
	}
}

func compact(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

func isDigitOrDot(b byte) bool {
	return b == '.' || b >= '0' && b <= '9'
}
