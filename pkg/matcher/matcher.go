// Package matcher ranks catalog products against a card identity.
package matcher

import (
	"regexp"
	"slices"
	"strings"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// DefaultThreshold is the score a candidate must exceed to be accepted.
const DefaultThreshold = 10

// DefaultThemes are sub-line keywords that reward a product sharing them
// with the title.
var DefaultThemes = []string{"Classic"}

// Weights defines the additive points for each matching feature.
type Weights struct {
	CardNumberExact int `yaml:"card_number_exact" json:"card_number_exact"`
	FractionBonus   int `yaml:"fraction_bonus"    json:"fraction_bonus"`
	CardNumberLoose int `yaml:"card_number_loose" json:"card_number_loose"`
	SetMarker       int `yaml:"set_marker"        json:"set_marker"`
	Year            int `yaml:"year"              json:"year"`
	WrongYear       int `yaml:"wrong_year"        json:"wrong_year"`
	SubjectWord     int `yaml:"subject_word"      json:"subject_word"`
	Theme           int `yaml:"theme"             json:"theme"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		CardNumberExact: 25,
		FractionBonus:   10,
		CardNumberLoose: 10,
		SetMarker:       20,
		Year:            10,
		WrongYear:       -30,
		SubjectWord:     5,
		Theme:           15,
	}
}

// Breakdown shows per-feature points.
type Breakdown struct {
	CardNumber int `json:"card_number"`
	SetMarker  int `json:"set_marker"`
	Year       int `json:"year"`
	Subject    int `json:"subject"`
	Theme      int `json:"theme"`
	Total      int `json:"total"`
}

var (
	yearToken = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	nonAlnum  = regexp.MustCompile(`[^a-z0-9]`)
)

// Score computes the match score of a product name against the identity.
func Score(name string, id domain.CardIdentity, w Weights, themes []string) Breakdown {
	b := Breakdown{}
	lowerName := strings.ToLower(name)

	b.CardNumber = cardNumberScore(name, lowerName, id.CardNumber, w)

	if id.SetMarker != "" && strings.Contains(lowerName, strings.ToLower(id.SetMarker)) {
		b.SetMarker = w.SetMarker
	}

	if id.Year != "" {
		if strings.Contains(name, id.Year) {
			b.Year += w.Year
		}
		for _, y := range yearToken.FindAllString(name, -1) {
			if y != id.Year {
				b.Year += w.WrongYear
				break
			}
		}
	}

	for _, word := range strings.Fields(id.Subject) {
		if len([]rune(word)) > 3 && strings.Contains(lowerName, strings.ToLower(word)) {
			b.Subject += w.SubjectWord
		}
	}

	lowerTitle := strings.ToLower(id.Cleaned)
	for _, theme := range themes {
		t := strings.ToLower(theme)
		if t != "" && strings.Contains(lowerTitle, t) && strings.Contains(lowerName, t) {
			b.Theme += w.Theme
		}
	}

	b.Total = b.CardNumber + b.SetMarker + b.Year + b.Subject + b.Theme
	return b
}

func cardNumberScore(name, lowerName, cardNumber string, w Weights) int {
	if cardNumber == "" {
		return 0
	}

	token := cardNumber
	fraction := false
	if i := strings.IndexAny(cardNumber, "/-"); i > 0 {
		token = cardNumber[:i]
		fraction = true
	}

	exact := regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
	if exact.MatchString(name) {
		score := w.CardNumberExact
		if fraction && strings.Contains(lowerName, strings.ToLower(cardNumber)) {
			score += w.FractionBonus
		}
		return score
	}

	loose := nonAlnum.ReplaceAllString(strings.ToLower(cardNumber), "")
	if loose != "" && strings.Contains(nonAlnum.ReplaceAllString(lowerName, ""), loose) {
		return w.CardNumberLoose
	}
	return 0
}

// Matcher selects the best product for an identity.
type Matcher struct {
	weights   Weights
	threshold int
	themes    []string
}

// Option configures the Matcher.
type Option func(*Matcher)

// WithWeights overrides the default weights.
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		m.weights = w
	}
}

// WithThreshold overrides the acceptance threshold.
func WithThreshold(n int) Option {
	return func(m *Matcher) {
		m.threshold = n
	}
}

// WithThemes overrides the thematic keywords.
func WithThemes(themes []string) Option {
	return func(m *Matcher) {
		m.themes = themes
	}
}

// New creates a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		weights:   DefaultWeights(),
		threshold: DefaultThreshold,
		themes:    DefaultThemes,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scored pairs a product with its breakdown.
type Scored struct {
	Product   domain.CatalogProduct
	Breakdown Breakdown
}

// Rank dedupes products by ID and returns them sorted by descending score.
// Equal scores keep their input order.
func (m *Matcher) Rank(products []domain.CatalogProduct, id domain.CardIdentity) []Scored {
	seen := make(map[string]struct{}, len(products))
	ranked := make([]Scored, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		ranked = append(ranked, Scored{
			Product:   p,
			Breakdown: Score(p.Name, id, m.weights, m.themes),
		})
	}

	slices.SortStableFunc(ranked, func(a, b Scored) int {
		return b.Breakdown.Total - a.Breakdown.Total
	})
	return ranked
}

// SelectBest returns the top product when its score exceeds the threshold.
// A result with a nil Product is a normal no-match outcome.
func (m *Matcher) SelectBest(products []domain.CatalogProduct, id domain.CardIdentity) domain.MatchResult {
	ranked := m.Rank(products, id)
	if len(ranked) == 0 {
		return domain.MatchResult{}
	}

	top := ranked[0]
	if top.Breakdown.Total <= m.threshold {
		return domain.MatchResult{Score: top.Breakdown.Total}
	}

	p := top.Product
	return domain.MatchResult{Product: &p, Score: top.Breakdown.Total}
}
