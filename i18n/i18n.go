// Package i18n picks the UI locale for a request and holds the strings used
// by the site chrome.
package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported UI locale.
type Locale string

const (
	ZhCN Locale = "zh-CN"
	En   Locale = "en"
)

// Default is used when nothing else matches.
const Default = ZhCN

// Supported lists the locales in matcher preference order.
var Supported = []Locale{ZhCN, En}

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.English,
})

// Parse returns the supported locale for s, if any.
func Parse(s string) (Locale, bool) {
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

// Match resolves the locale for a request. An explicit preference wins,
// then the Accept-Language header, then fallback.
func Match(preferred, acceptLanguage string, fallback Locale) Locale {
	if l, ok := Parse(preferred); ok {
		return l
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Supported[idx]
			}
		}
	}
	if fallback == "" {
		return Default
	}
	return fallback
}

// T returns the message for key in l, falling back to the default locale
// and then to key itself.
func T(l Locale, key string) string {
	if m, ok := catalog[l][key]; ok {
		return m
	}
	if m, ok := catalog[Default][key]; ok {
		return m
	}
	return key
}

// Name returns the locale's own display name.
func (l Locale) Name() string {
	return T(l, "locale.name")
}
