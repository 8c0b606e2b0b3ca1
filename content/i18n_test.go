package content

import "testing"

func TestTranslateCoversEverySupportedLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		tr := Translate(lang)
		if tr.Blog == "" || tr.Home == "" || tr.ReadMore == "" {
			t.Errorf("incomplete translations for %q: %+v", lang, tr)
		}
	}
}

func TestTranslateFallsBackToDefault(t *testing.T) {
	got := Translate("xx")
	want := Translate(DefaultLanguage)
	if got != want {
		t.Errorf("unknown language should fall back to default, got %+v", got)
	}
}

func TestTranslateIsLocalized(t *testing.T) {
	if Translate("es").Home == Translate("en").Home {
		t.Error("es and en should differ")
	}
	if Translate("ja").Blog != "ブログ" {
		t.Errorf("ja Blog = %q", Translate("ja").Blog)
	}
}
