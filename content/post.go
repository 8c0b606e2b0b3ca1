package content

import (
	"fmt"
	"io"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Post is one blog content record: the parsed front matter plus the raw
// markup body. (Slug, Language) is unique after merging storage roots.
type Post struct {
	Slug     string
	Language string
	Body     string
	Data     PostData
}

// PostData is the structured front-matter block of a post. Optional fields
// keep their zero value; required-with-default fields are filled by
// applyDefaults.
type PostData struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PublishDate DateTime `yaml:"publishDate"`
	UpdateDate  DateTime `yaml:"updateDate"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	Draft       bool     `yaml:"draft"`

	HeroImage    string `yaml:"heroImage"`
	HeroImageAlt string `yaml:"heroImageAlt"`

	SEOTitle       string `yaml:"seoTitle"`
	SEODescription string `yaml:"seoDescription"`
	SEOKeywords    string `yaml:"seoKeywords"`
	NoIndex        bool   `yaml:"noindex"`
	NoFollow       bool   `yaml:"nofollow"`
	CanonicalURL   string `yaml:"canonicalUrl"`
	OGTitle        string `yaml:"ogTitle"`
	OGDescription  string `yaml:"ogDescription"`
	OGImage        string `yaml:"ogImage"`
}

// DateTime is a front-matter date that accepts bare YAML timestamps as
// well as quoted strings in several common layouts.
type DateTime struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2 2006",
	"January 2, 2006",
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DateTime) UnmarshalYAML(value *yaml.Node) error {
	var t time.Time
	if err := value.Decode(&t); err == nil {
		d.Time = t
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// yamlFormat decodes front matter with yaml.v3. The library's built-in
// YAML format uses yaml.v2, which would bypass DateTime.UnmarshalYAML.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// parsePost splits src into front matter and body and fills the defaults
// the storage format leaves implicit.
func parsePost(src io.Reader, slug, language string) (Post, error) {
	var data PostData
	body, err := frontmatter.Parse(src, &data, yamlFormat)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter: %w", err)
	}
	data.applyDefaults()
	return Post{
		Slug:     slug,
		Language: language,
		Body:     string(body),
		Data:     data,
	}, nil
}

func (d *PostData) applyDefaults() {
	if d.Author == "" {
		d.Author = "default"
	}
	if d.Category == "" {
		d.Category = "Uncategorized"
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.PublishDate.IsZero() {
		d.PublishDate = DateTime{time.Now().UTC()}
	}
}

// Published reports whether the post should appear on public surfaces.
func (p Post) Published() bool {
	return !p.Data.Draft
}
