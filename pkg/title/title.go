// Package title turns a free-text marketplace title into a structured
// card identity.
package title

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// noisePattern matches grading labels and generic product vocabulary.
// Longer alternatives come first so "Gem Mint" wins over "Mint".
var noisePattern = regexp.MustCompile(
	`(?i)\b(?:` +
		`(?:PSA|BGS|CGC|SGC)\s*\d+(?:\.\d)?` +
		`|Grader\s+PSA` +
		`|Gem\s*Mint` +
		`|Near\s*Mint` +
		`|Mint` +
		`|NM` +
		`|Excellent` +
		`|Trading\s*Card\s*Game` +
		`|TCG` +
		`|Card\s*Pack` +
		`|Edition` +
		`)\b`,
)

var (
	yearPattern       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	cardNumberPattern = regexp.MustCompile(`#?\d+[/-]\d+|#\d+`)
	setMarkerPattern  = regexp.MustCompile(`(?i)\b([A-Z]{1,4})\d{1,3}[A-Z]?(?:-P)?\b`)
	variantSuffix     = regexp.MustCompile(
		`(?i)[-–](?:Non\s*Holo|Holo|Reverse|Mirror|Parallel|VMAX|VSTAR|Ex|V)$`,
	)
	whitespace = regexp.MustCompile(`\s+`)
)

// DefaultLanguages is the enumerated language vocabulary.
var DefaultLanguages = []string{"Japanese", "English"}

// DefaultSetDenylist holds letter prefixes that look like set codes but are
// grading companies or generic words.
var DefaultSetDenylist = []string{
	"PSA", "BGS", "CGC", "SGC", "ACE", "TAG", "GEM", "TCG", "NO", "POP", "VOL",
}

// fillerWords are never chosen as the subject.
var fillerWords = map[string]struct{}{
	"pokemon": {},
	"pokémon": {},
	"card":    {},
	"cards":   {},
	"promo":   {},
	"holo":    {},
	"reverse": {},
	"ex":      {},
	"gx":      {},
	"v":       {},
	"vmax":    {},
	"vstar":   {},
	// rarity codes
	"c":   {},
	"u":   {},
	"r":   {},
	"rr":  {},
	"rrr": {},
	"ar":  {},
	"sr":  {},
	"sar": {},
	"ur":  {},
	"hr":  {},
	"chr": {},
	"csr": {},
	"ssr": {},
	"tr":  {},
	"pr":  {},
}

const wordTrimChars = ",;:!?\"'()[]{}"

// Normalizer extracts a CardIdentity from raw titles. The zero value is not
// usable; call New.
type Normalizer struct {
	defaultLanguage string
	languages       []string
	languagePattern *regexp.Regexp
	setDenylist     map[string]struct{}
}

// Option configures the Normalizer.
type Option func(*Normalizer)

// WithDefaultLanguage sets the language reported when the title names none.
func WithDefaultLanguage(lang string) Option {
	return func(n *Normalizer) {
		n.defaultLanguage = lang
	}
}

// WithLanguages replaces the recognised language vocabulary.
func WithLanguages(langs []string) Option {
	return func(n *Normalizer) {
		if len(langs) > 0 {
			n.languages = langs
		}
	}
}

// WithSetDenylist replaces the set-code prefix denylist.
func WithSetDenylist(prefixes []string) Option {
	return func(n *Normalizer) {
		n.setDenylist = toSet(prefixes, strings.ToUpper)
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		languages:   DefaultLanguages,
		setDenylist: toSet(DefaultSetDenylist, strings.ToUpper),
	}
	for _, opt := range opts {
		opt(n)
	}

	quoted := make([]string, 0, len(n.languages))
	for _, l := range n.languages {
		quoted = append(quoted, regexp.QuoteMeta(l))
	}
	n.languagePattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return n
}

var defaultNormalizer = New()

// Normalize parses raw with the default configuration.
func Normalize(raw string) domain.CardIdentity {
	return defaultNormalizer.Normalize(raw)
}

// Normalize parses raw into a CardIdentity. It never fails; fields that
// cannot be derived are left empty.
func (n *Normalizer) Normalize(raw string) domain.CardIdentity {
	cleaned := Clean(raw)

	id := domain.CardIdentity{
		Cleaned:  cleaned,
		Year:     yearPattern.FindString(cleaned),
		Language: n.languagePattern.FindString(cleaned),
	}
	if id.Language == "" {
		id.Language = n.defaultLanguage
	}

	numLoc := cardNumberPattern.FindStringIndex(cleaned)
	if numLoc != nil {
		id.CardNumber = strings.ReplaceAll(cleaned[numLoc[0]:numLoc[1]], "#", "")
	}

	id.SetMarker = n.setMarker(cleaned)
	id.Subject = n.subject(cleaned, numLoc, id)

	return id
}

// Clean removes grading and noise vocabulary and collapses whitespace.
func Clean(raw string) string {
	s := noisePattern.ReplaceAllString(raw, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func (n *Normalizer) setMarker(cleaned string) string {
	for _, m := range setMarkerPattern.FindAllStringSubmatch(cleaned, -1) {
		if _, denied := n.setDenylist[strings.ToUpper(m[1])]; denied {
			continue
		}
		return strings.ToUpper(m[0])
	}
	return ""
}

// subject picks the word after the card number, else the last useful word
// before it, else the last useful word of the whole title.
func (n *Normalizer) subject(cleaned string, numLoc []int, id domain.CardIdentity) string {
	if numLoc == nil {
		words := strings.Fields(cleaned)
		for i := len(words) - 1; i >= 0; i-- {
			if strings.HasPrefix(words[i], "(") {
				continue
			}
			if w, ok := n.pick(words[i], id); ok {
				return w
			}
		}
		return ""
	}

	if after := strings.Fields(cleaned[numLoc[1]:]); len(after) > 0 {
		if w, ok := n.pick(after[0], id); ok {
			return w
		}
	}

	before := strings.Fields(cleaned[:numLoc[0]])
	for i := len(before) - 1; i >= 0; i-- {
		if w, ok := n.pick(before[i], id); ok {
			return w
		}
	}
	return ""
}

func (n *Normalizer) pick(raw string, id domain.CardIdentity) (string, bool) {
	w := trimWord(raw)
	if n.trivial(w, id) {
		return "", false
	}
	w = variantSuffix.ReplaceAllString(w, "")
	return w, len([]rune(w)) > 1
}

func (n *Normalizer) trivial(word string, id domain.CardIdentity) bool {
	if len([]rune(word)) <= 1 {
		return true
	}
	if !hasLetter(word) {
		return true
	}
	lower := strings.ToLower(word)
	if _, ok := fillerWords[lower]; ok {
		return true
	}
	for _, l := range n.languages {
		if strings.EqualFold(l, word) {
			return true
		}
	}
	if id.SetMarker != "" && strings.EqualFold(id.SetMarker, word) {
		return true
	}
	return cardNumberPattern.MatchString(word)
}

func trimWord(w string) string {
	return strings.Trim(w, wordTrimChars)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '#' || r == '/' || r == '-' || r == '.' {
			continue
		}
		return true
	}
	return false
}

func toSet(items []string, norm func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[norm(strings.TrimSpace(it))] = struct{}{}
	}
	return set
}
