package blogengine

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Mixed CASE  ", "mixed-case"},
		{"Already-slugged", "already-slugged"},
		{"Special!@#Chars", "special-chars"},
		{"trailing punctuation!!!", "trailing-punctuation"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Web Development", "web-development"},
		{"C++ Tips", "c-tips"},
		{"  spaced   out  ", "spaced-out"},
		{"already-normalized", "already-normalized"},
		{"--leading--trailing--", "leading-trailing"},
		{"Émigré", "migr"},
	}
	for _, tt := range tests {
		if got := NormalizeTagName(tt.in); got != tt.want {
			t.Errorf("NormalizeTagName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTagNameIdempotent(t *testing.T) {
	inputs := []string{"Web Development", "C++ Tips", "  spaced   out  ", "Tag #1!"}
	for _, in := range inputs {
		once := NormalizeTagName(in)
		twice := NormalizeTagName(once)
		if once != twice {
			t.Errorf("NormalizeTagName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://example.com", "blog", "hello"); got != "https://example.com/blog/hello" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://example.com/sub", "blog"); got != "https://example.com/sub/blog" {
		t.Errorf("BuildURL with base path = %q", got)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v, want [a b]", got)
	}
}
