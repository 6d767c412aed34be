// Package query builds ranked catalog search strings from a card identity.
package query

import (
	"strings"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

const (
	// DefaultFranchise is the franchise word used in the smart query.
	DefaultFranchise = "Pokemon"

	minPrimaryLen  = 3
	minFallbackLen = 2
)

// Builder produces a QueryPlan from a CardIdentity.
type Builder struct {
	franchise string
}

// Option configures the Builder.
type Option func(*Builder)

// WithFranchise overrides the franchise word in the smart query.
func WithFranchise(f string) Option {
	return func(b *Builder) {
		b.franchise = f
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{franchise: DefaultFranchise}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Franchise returns the configured franchise word.
func (b *Builder) Franchise() string {
	return b.franchise
}

// Build returns the ranked plan. Primary queries are set, lean, smart;
// fallback queries are broad, id. Short and duplicate entries are dropped,
// keeping the first occurrence.
func (b *Builder) Build(id domain.CardIdentity) domain.QueryPlan {
	seen := make(map[string]struct{})
	plan := domain.QueryPlan{}

	add := func(list *[]domain.Query, kind domain.QueryKind, minLen int, parts ...string) {
		text := join(parts...)
		if len([]rune(text)) < minLen {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		*list = append(*list, domain.Query{Kind: kind, Text: text})
	}

	if id.SetMarker != "" {
		add(&plan.Primary, domain.QuerySet, minPrimaryLen, id.SetMarker, id.CardNumber, id.Subject)
	}
	add(&plan.Primary, domain.QueryLean, minPrimaryLen, id.Subject, id.CardNumber)
	if !id.IsEmpty() {
		add(&plan.Primary, domain.QuerySmart, minPrimaryLen,
			id.Year, b.franchise, id.Language, id.CardNumber, id.Subject)
	}

	add(&plan.Fallback, domain.QueryBroad, minFallbackLen, id.Cleaned)
	add(&plan.Fallback, domain.QueryID, minFallbackLen, id.CardNumber)

	return plan
}

// join concatenates non-empty parts with single spaces.
func join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
