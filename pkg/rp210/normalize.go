package rp210

import (
	"regexp"
	"strings"
)

// Patterns are compiled once at package init; normalization runs per feed
// row and must not pay a compile on every call.
var (
	lowerToUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	capitalRun   = regexp.MustCompile(`([A-Z])([A-Z]+)`)
	tokenSplit   = regexp.MustCompile(`[\s_]+`)
)

// NormalizeFieldName converts a raw display name from the RP210 feed into
// the canonical lowercase, underscore-joined field name.
//
// The transform is mechanical on capital-letter boundaries, not
// dictionary-aware: an underscore is inserted on every lowercase-to-uppercase
// transition and after the first letter of every uppercase run, then the
// result is lowered and whitespace collapses to single underscores.
// "Random Access" becomes "random_access"; "MPEG Version" becomes
// "m_peg_version". Downstream consumers key on the generated names, so the
// boundary rule (quirks included) must stay stable.
//
// The transform is idempotent: applying it to an already-normalized name is
// a no-op.
func NormalizeFieldName(name string) string {
	s := strings.TrimSpace(name)
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	s = capitalRun.ReplaceAllString(s, "${1}_${2}")
	s = strings.ToLower(s)

	tokens := tokenSplit.Split(s, -1)
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, "_")
}
