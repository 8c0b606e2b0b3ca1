package blogengine

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Slugify converts a name to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

var (
	reTagStrip  = regexp.MustCompile(`[^\w\s-]`)
	reTagSpaces = regexp.MustCompile(`\s+`)
	reTagDashes = regexp.MustCompile(`-+`)
)

// NormalizeTagName converts a display tag name into its URL slug:
// lower-case, non-word characters stripped, whitespace runs and repeated
// hyphens collapsed to a single hyphen, no leading or trailing hyphens.
// Idempotent: normalizing an already-normalized slug is a no-op.
func NormalizeTagName(name string) string {
	s := strings.ToLower(name)
	s = reTagStrip.ReplaceAllString(s, "")
	s = reTagSpaces.ReplaceAllString(s, "-")
	s = reTagDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
