package statement

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// KeywordMatcher spots transaction-type words (TRF, QR, BIAYA, ...) in a
// row in a single pass.
type KeywordMatcher struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewKeywordMatcher compiles keywords; matching is case-insensitive.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	k := &KeywordMatcher{}
	for _, kw := range keywords {
		if kw = strings.ToUpper(strings.TrimSpace(kw)); kw != "" {
			k.keywords = append(k.keywords, kw)
		}
	}
	if len(k.keywords) > 0 {
		k.matcher = ahocorasick.NewStringMatcher(k.keywords)
	}
	return k
}

// Match returns the keywords found in text, in the order they were hit.
func (k *KeywordMatcher) Match(text string) []string {
	if k.matcher == nil {
		return nil
	}
	hits := k.matcher.Match([]byte(strings.ToUpper(text)))
	if len(hits) == 0 {
		return nil
	}
	out := make([]string, 0, len(hits))
	for _, i := range hits {
		out = append(out, k.keywords[i])
	}
	return out
}

// Contains reports whether any keyword occurs in text.
func (k *KeywordMatcher) Contains(text string) bool {
	return len(k.Match(text)) > 0
}
