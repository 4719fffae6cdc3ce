// Package languages holds the static per-language crawl configuration:
// the 24-language registry, seed URLs, preferred domains, and the global
// domain and extension denylists.
package languages

import (
	"fmt"
	"sort"
	"strings"
)

// Language describes one target language of the crawl.
type Language struct {
	Code   string
	Name   string
	Native string
	Locale string
}

// registry maps ISO 639-1 codes to language metadata for the 24 official
// EU languages.
var registry = map[string]Language{
	"bg": {Code: "bg", Name: "Bulgarian", Native: "Български", Locale: "bg_BG"},
	"hr": {Code: "hr", Name: "Croatian", Native: "Hrvatski", Locale: "hr_HR"},
	"cs": {Code: "cs", Name: "Czech", Native: "Čeština", Locale: "cs_CZ"},
	"da": {Code: "da", Name: "Danish", Native: "Dansk", Locale: "da_DK"},
	"nl": {Code: "nl", Name: "Dutch", Native: "Nederlands", Locale: "nl_NL"},
	"en": {Code: "en", Name: "English", Native: "English", Locale: "en_GB"},
	"et": {Code: "et", Name: "Estonian", Native: "Eesti", Locale: "et_EE"},
	"fi": {Code: "fi", Name: "Finnish", Native: "Suomi", Locale: "fi_FI"},
	"fr": {Code: "fr", Name: "French", Native: "Français", Locale: "fr_FR"},
	"de": {Code: "de", Name: "German", Native: "Deutsch", Locale: "de_DE"},
	"el": {Code: "el", Name: "Greek", Native: "Ελληνικά", Locale: "el_GR"},
	"hu": {Code: "hu", Name: "Hungarian", Native: "Magyar", Locale: "hu_HU"},
	"ga": {Code: "ga", Name: "Irish", Native: "Gaeilge", Locale: "ga_IE"},
	"it": {Code: "it", Name: "Italian", Native: "Italiano", Locale: "it_IT"},
	"lv": {Code: "lv", Name: "Latvian", Native: "Latviešu", Locale: "lv_LV"},
	"lt": {Code: "lt", Name: "Lithuanian", Native: "Lietuvių", Locale: "lt_LT"},
	"mt": {Code: "mt", Name: "Maltese", Native: "Malti", Locale: "mt_MT"},
	"pl": {Code: "pl", Name: "Polish", Native: "Polski", Locale: "pl_PL"},
	"pt": {Code: "pt", Name: "Portuguese", Native: "Português", Locale: "pt_PT"},
	"ro": {Code: "ro", Name: "Romanian", Native: "Română", Locale: "ro_RO"},
	"sk": {Code: "sk", Name: "Slovak", Native: "Slovenčina", Locale: "sk_SK"},
	"sl": {Code: "sl", Name: "Slovenian", Native: "Slovenščina", Locale: "sl_SI"},
	"es": {Code: "es", Name: "Spanish", Native: "Español", Locale: "es_ES"},
	"sv": {Code: "sv", Name: "Swedish", Native: "Svenska", Locale: "sv_SE"},
}

// Codes returns all registered language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Get looks up a language by code.
func Get(code string) (Language, bool) {
	lang, ok := registry[strings.ToLower(strings.TrimSpace(code))]
	return lang, ok
}

// IsTarget reports whether code is one of the configured target languages.
func IsTarget(code string) bool {
	_, ok := registry[code]
	return ok
}

// Name returns the English display name for code, or "Unknown".
func Name(code string) string {
	if lang, ok := registry[code]; ok {
		return lang.Name
	}
	return "Unknown"
}

// Resolve parses a comma-separated list of language codes, validating each
// against the registry. An empty input resolves to every registered code.
func Resolve(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return Codes(), nil
	}
	var codes []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(input, ",") {
		code := strings.ToLower(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		if !IsTarget(code) {
			return nil, fmt.Errorf("unknown language code %q", code)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no language codes resolved from %q", input)
	}
	return codes, nil
}
