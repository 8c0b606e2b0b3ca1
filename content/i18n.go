package content

// Translations holds the UI strings rendered around blog content.
type Translations struct {
	RelatedArticles string
	MinRead         string
	PublishedOn     string
	UpdatedOn       string
	BackToBlog      string
	Home            string
	Blog            string
	FeaturedArticle string
	ReadingTime     string
	Category        string
	AboutTheAuthor  string
	Categories      string
	PopularTags     string
	ReadMore        string
	Tags            string
	Author          string
	Share           string
}

var translations = map[string]Translations{
	"en": {
		RelatedArticles: "Related Articles",
		MinRead:         "min read",
		PublishedOn:     "Published on",
		UpdatedOn:       "Updated on",
		BackToBlog:      "Back to Blog",
		Home:            "Home",
		Blog:            "Blog",
		FeaturedArticle: "Featured Article",
		ReadingTime:     "Reading Time",
		Category:        "Category",
		AboutTheAuthor:  "About the Author",
		Categories:      "Categories",
		PopularTags:     "Popular Tags",
		ReadMore:        "Read More",
		Tags:            "Tags",
		Author:          "Author",
		Share:           "Share",
	},
	"es": {
		RelatedArticles: "Artículos Relacionados",
		MinRead:         "min de lectura",
		PublishedOn:     "Publicado el",
		UpdatedOn:       "Actualizado el",
		BackToBlog:      "Volver al Blog",
		Home:            "Inicio",
		Blog:            "Blog",
		FeaturedArticle: "Artículo Destacado",
		ReadingTime:     "Tiempo de Lectura",
		Category:        "Categoría",
		AboutTheAuthor:  "Sobre el Autor",
		Categories:      "Categorías",
		PopularTags:     "Etiquetas Populares",
		ReadMore:        "Leer Más",
		Tags:            "Etiquetas",
		Author:          "Autor",
		Share:           "Compartir",
	},
	"fr": {
		RelatedArticles: "Articles Connexes",
		MinRead:         "min de lecture",
		PublishedOn:     "Publié le",
		UpdatedOn:       "Mis à jour le",
		BackToBlog:      "Retour au Blog",
		Home:            "Accueil",
		Blog:            "Blog",
		FeaturedArticle: "Article en Vedette",
		ReadingTime:     "Temps de Lecture",
		Category:        "Catégorie",
		AboutTheAuthor:  "À Propos de l'Auteur",
		Categories:      "Catégories",
		PopularTags:     "Étiquettes Populaires",
		ReadMore:        "Lire Plus",
		Tags:            "Étiquettes",
		Author:          "Auteur",
		Share:           "Partager",
	},
	"de": {
		RelatedArticles: "Ähnliche Artikel",
		MinRead:         "Min. Lesezeit",
		PublishedOn:     "Veröffentlicht am",
		UpdatedOn:       "Aktualisiert am",
		BackToBlog:      "Zurück zum Blog",
		Home:            "Startseite",
		Blog:            "Blog",
		FeaturedArticle: "Empfohlener Artikel",
		ReadingTime:     "Lesezeit",
		Category:        "Kategorie",
		AboutTheAuthor:  "Über den Autor",
		Categories:      "Kategorien",
		PopularTags:     "Beliebte Tags",
		ReadMore:        "Weiterlesen",
		Tags:            "Tags",
		Author:          "Autor",
		Share:           "Teilen",
	},
	"ja": {
		RelatedArticles: "関連記事",
		MinRead:         "分で読めます",
		PublishedOn:     "公開日",
		UpdatedOn:       "更新日",
		BackToBlog:      "ブログに戻る",
		Home:            "ホーム",
		Blog:            "ブログ",
		FeaturedArticle: "注目の記事",
		ReadingTime:     "読了時間",
		Category:        "カテゴリー",
		AboutTheAuthor:  "著者について",
		Categories:      "カテゴリー",
		PopularTags:     "人気のタグ",
		ReadMore:        "続きを読む",
		Tags:            "タグ",
		Author:          "著者",
		Share:           "共有",
	},
	"ko": {
		RelatedArticles: "관련 기사",
		MinRead:         "분 소요",
		PublishedOn:     "게시일",
		UpdatedOn:       "수정일",
		BackToBlog:      "블로그로 돌아가기",
		Home:            "홈",
		Blog:            "블로그",
		FeaturedArticle: "추천 기사",
		ReadingTime:     "읽는 시간",
		Category:        "카테고리",
		AboutTheAuthor:  "저자 소개",
		Categories:      "카테고리",
		PopularTags:     "인기 태그",
		ReadMore:        "더 읽기",
		Tags:            "태그",
		Author:          "저자",
		Share:           "공유",
	},
	"zh": {
		RelatedArticles: "相关文章",
		MinRead:         "分钟阅读",
		PublishedOn:     "发布于",
		UpdatedOn:       "更新于",
		BackToBlog:      "返回博客",
		Home:            "首页",
		Blog:            "博客",
		FeaturedArticle: "精选文章",
		ReadingTime:     "阅读时间",
		Category:        "分类",
		AboutTheAuthor:  "关于作者",
		Categories:      "分类",
		PopularTags:     "热门标签",
		ReadMore:        "阅读更多",
		Tags:            "标签",
		Author:          "作者",
		Share:           "分享",
	},
}

// Translate returns the UI strings for lang, falling back to the default
// language for unknown codes.
func Translate(lang string) Translations {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}
