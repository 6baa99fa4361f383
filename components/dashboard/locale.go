package dashboard

import (
	"strings"

	"golang.org/x/text/language"
)

// SupportedLocales are the locales number formatting is offered in. The
// first entry is the fallback.
var SupportedLocales = []language.Tag{
	language.English,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Hindi,
}

var localeMatcher = language.NewMatcher(SupportedLocales)

// ResolveLocale picks the best supported locale for an Accept-Language header
// or a plain tag such as "es-MX". Empty or unparsable input yields English.
func ResolveLocale(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return SupportedLocales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return SupportedLocales[0]
	}
	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return SupportedLocales[0]
	}
	return SupportedLocales[index]
}
