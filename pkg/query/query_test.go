package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-price-checker/pkg/query"
	"github.com/donaldgifford/card-price-checker/pkg/title"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   domain.CardIdentity
		want domain.QueryPlan
	}{
		{
			name: "full identity",
			id: domain.CardIdentity{
				Subject:    "Pikachu",
				CardNumber: "236/190",
				SetMarker:  "SV4A",
				Year:       "2023",
				Language:   "Japanese",
				Cleaned:    "2023 Japanese SV4a Pikachu 236/190",
			},
			want: domain.QueryPlan{
				Primary: []domain.Query{
					{Kind: domain.QuerySet, Text: "SV4A 236/190 Pikachu"},
					{Kind: domain.QueryLean, Text: "Pikachu 236/190"},
					{Kind: domain.QuerySmart, Text: "2023 Pokemon Japanese 236/190 Pikachu"},
				},
				Fallback: []domain.Query{
					{Kind: domain.QueryBroad, Text: "2023 Japanese SV4a Pikachu 236/190"},
					{Kind: domain.QueryID, Text: "236/190"},
				},
			},
		},
		{
			name: "no set marker skips set query",
			id: domain.CardIdentity{
				Subject:    "Pikachu",
				CardNumber: "025/100",
				Cleaned:    "Pikachu 025/100",
			},
			want: domain.QueryPlan{
				Primary: []domain.Query{
					{Kind: domain.QueryLean, Text: "Pikachu 025/100"},
					{Kind: domain.QuerySmart, Text: "Pokemon 025/100 Pikachu"},
				},
				Fallback: []domain.Query{
					{Kind: domain.QueryID, Text: "025/100"},
				},
			},
		},
		{
			name: "empty identity yields empty plan",
			id:   domain.CardIdentity{},
			want: domain.QueryPlan{},
		},
		{
			name: "single character fallback dropped",
			id: domain.CardIdentity{
				CardNumber: "7",
				Cleaned:    "7",
			},
			want: domain.QueryPlan{
				Primary: []domain.Query{
					{Kind: domain.QuerySmart, Text: "Pokemon 7"},
				},
			},
		},
		{
			name: "short primary dropped but fallback kept",
			id: domain.CardIdentity{
				Subject: "Mu",
				Cleaned: "Mu",
			},
			want: domain.QueryPlan{
				Primary: []domain.Query{
					{Kind: domain.QuerySmart, Text: "Pokemon Mu"},
				},
				Fallback: []domain.Query{
					{Kind: domain.QueryBroad, Text: "Mu"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := query.NewBuilder().Build(tt.id)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_Build_NoDuplicatesAndMinLength(t *testing.T) {
	t.Parallel()

	titles := []string{
		"",
		"a",
		"PSA 10",
		"Pikachu",
		"#1",
		"Pikachu 025/100",
		"PSA 10 2023 Japanese Pikachu #025/100",
		"SV4a",
		"Charizard S8a-P 001/025",
	}

	b := query.NewBuilder()
	for _, raw := range titles {
		plan := b.Build(title.Normalize(raw))

		seen := map[string]bool{}
		for _, q := range plan.All() {
			assert.False(t, seen[q], "duplicate %q for %q", q, raw)
			seen[q] = true
			assert.GreaterOrEqual(t, len(q), 2, "query %q for %q", q, raw)
		}
		for _, q := range plan.Primary {
			assert.GreaterOrEqual(t, len(q.Text), 3)
		}
	}
}

func TestBuilder_WithFranchise(t *testing.T) {
	t.Parallel()

	b := query.NewBuilder(query.WithFranchise("One Piece"))
	plan := b.Build(domain.CardIdentity{Subject: "Luffy", CardNumber: "OP01-001"})

	q, ok := plan.Lookup(domain.QuerySmart)
	assert.True(t, ok)
	assert.Equal(t, "One Piece OP01-001 Luffy", q.Text)
	assert.Equal(t, "One Piece", b.Franchise())
}
