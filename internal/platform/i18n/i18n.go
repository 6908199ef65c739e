// Package i18n defines the languages TaskFlow renders and registers their
// message catalogs with golang.org/x/text/message.
//
// Message keys are the en-US copy itself, so the base language needs no
// catalog entries: a printer with no translation formats the key verbatim.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the languages with registered copy, default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag resolves raw to a supported tag. It reports false when raw is not
// a valid BCP 47 tag or does not match any supported language.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[idx], true
}

// MatchTags picks the best supported tag for a preference list such as the
// one parsed from Accept-Language.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[idx]
}
