// Package content resolves blog posts stored as Markdown/MDX files with
// front matter across multiple storage roots and languages.
package content

import "strings"

// Language describes one supported content language.
type Language struct {
	Code       string // ISO 639-1 code
	Name       string
	NativeName string
	Flag       string
	Dir        string // "ltr" or "rtl"
}

// DefaultLanguage is the language served at the storage root with no URL prefix.
const DefaultLanguage = "en"

// languages is the static registry of supported languages. Order matters:
// it is the iteration order for sitemap sections and availability probes.
var languages = []Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇺🇸", Dir: "ltr"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸", Dir: "ltr"},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷", Dir: "ltr"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Flag: "🇩🇪", Dir: "ltr"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Flag: "🇯🇵", Dir: "ltr"},
	{Code: "ko", Name: "Korean", NativeName: "한국어", Flag: "🇰🇷", Dir: "ltr"},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳", Dir: "ltr"},
}

// SupportedLanguages returns the codes of all supported languages in
// registry order.
func SupportedLanguages() []string {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	return codes
}

// IsSupported reports whether code is a supported language code.
func IsSupported(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// ResolveLanguage returns the Language for code, falling back to the
// default language when code is unknown.
func ResolveLanguage(code string) Language {
	for _, l := range languages {
		if l.Code == code {
			return l
		}
	}
	return ResolveLanguage(DefaultLanguage)
}

// URLPrefix returns the path prefix for a language: empty for the default
// language, "/<code>" for every other supported code.
func URLPrefix(code string) string {
	if code == DefaultLanguage {
		return ""
	}
	return "/" + code
}

// ExtractLanguageFromPath returns the language encoded in the first path
// segment, or the default language when the segment is not a supported
// two-letter code.
func ExtractLanguageFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	seg, _, _ := strings.Cut(trimmed, "/")
	if len(seg) == 2 && IsSupported(seg) {
		return seg
	}
	return DefaultLanguage
}

// AlternateURLs returns the localized post URL per supported language,
// plus an "x-default" entry pointing at the default-language version.
// Used for hreflang link generation.
func AlternateURLs(slug, baseURL string) map[string]string {
	alternates := make(map[string]string, len(languages)+1)
	for _, l := range languages {
		alternates[l.Code] = baseURL + URLPrefix(l.Code) + "/blog/" + slug
	}
	alternates["x-default"] = baseURL + "/blog/" + slug
	return alternates
}
