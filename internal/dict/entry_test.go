package dict

import (
	"reflect"
	"testing"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"maskulin", Masculine},
		{"m", Masculine},
		{"mask", Masculine},
		{"männlich", Masculine},
		{"masculine", Masculine},
		{"feminin", Feminine},
		{"f", Feminine},
		{"fem", Feminine},
		{"weiblich", Feminine},
		{"neutral", Neuter},
		{"n", Neuter},
		{"neut", Neuter},
		{"sächlich", Neuter},
		{"  Feminin  ", Feminine},
		{"FEM", Feminine},
		{"plural", Unknown},
		{"", Unknown},
		{"xyz", Unknown},
	}

	for _, tt := range tests {
		got := ParseGender(tt.in)
		if got != tt.want {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArticleMapping(t *testing.T) {
	tests := []struct {
		gender  Gender
		article string
	}{
		{Masculine, "der"},
		{Feminine, "die"},
		{Neuter, "das"},
	}

	for _, tt := range tests {
		if got := ArticleFor(tt.gender); got != tt.article {
			t.Errorf("ArticleFor(%q) = %q, want %q", tt.gender, got, tt.article)
		}
		if got := GenderForArticle(tt.article); got != tt.gender {
			t.Errorf("GenderForArticle(%q) = %q, want %q", tt.article, got, tt.gender)
		}
	}

	if got := ArticleFor(Unknown); got != "" {
		t.Errorf("ArticleFor(Unknown) = %q, want empty", got)
	}
	if got := GenderForArticle("ein"); got != Unknown {
		t.Errorf("GenderForArticle(%q) = %q, want Unknown", "ein", got)
	}
}

func TestNormalizeEntryAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Entry
	}{
		{
			name: "canonical fields",
			raw: map[string]any{
				"id": "n-katze", "lemma": "Katze", "gender": "feminin",
				"plural": "Katzen", "pos": "noun",
				"translations": []any{"cat"},
			},
			want: Entry{
				ID: "n-katze", Lemma: "Katze", Gender: Feminine, Article: "die",
				Plural: "Katzen", PartOfSpeech: "noun", Translations: []string{"cat"},
			},
		},
		{
			name: "word and genus shorthand",
			raw: map[string]any{
				"word": "Buch", "genus": "n", "pl": "Bücher",
				"meanings": []any{"book"},
			},
			want: Entry{
				ID: "Buch", Lemma: "Buch", Gender: Neuter, Article: "das",
				Plural: "Bücher", Translations: []string{"book"},
			},
		},
		{
			name: "article derives gender",
			raw:  map[string]any{"lemma": "Haus", "article": "das"},
			want: Entry{ID: "Haus", Lemma: "Haus", Gender: Neuter, Article: "das"},
		},
		{
			name: "article hiding in gender field",
			raw:  map[string]any{"term": "Tisch", "gender": "der"},
			want: Entry{ID: "Tisch", Lemma: "Tisch", Gender: Masculine, Article: "der"},
		},
		{
			name: "no lemma at all",
			raw:  map[string]any{"gender": "feminin"},
			want: Entry{Gender: Feminine, Article: "die"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEntry(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeEntry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEntryBilingualExamples(t *testing.T) {
	raw := map[string]any{
		"lemma": "Buch",
		"examples": []any{
			"Ich lese ein Buch.",
			map[string]any{"de": "Das Buch ist spannend.", "en": "The book is exciting."},
			map[string]any{"en": "no german text"},
		},
	}
	got := NormalizeEntry(raw)
	want := []string{"Ich lese ein Buch.", "Das Buch ist spannend."}
	if !reflect.DeepEqual(got.Examples, want) {
		t.Errorf("Examples = %v, want %v", got.Examples, want)
	}
}

func TestIsNoun(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"explicit noun pos", Entry{Lemma: "Katze", PartOfSpeech: "noun"}, true},
		{"substantiv pos", Entry{Lemma: "Katze", PartOfSpeech: "substantiv"}, true},
		{"gender only", Entry{Lemma: "Katze", Gender: Feminine}, true},
		{"article only", Entry{Lemma: "Haus", Article: "das"}, true},
		{"verb", Entry{Lemma: "lernen", PartOfSpeech: "verb"}, false},
		{"bare adjective", Entry{Lemma: "schön", PartOfSpeech: "adjective"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsNoun(); got != tt.want {
				t.Errorf("IsNoun() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrimaryTranslation(t *testing.T) {
	e := Entry{Translations: []string{"to learn", "to study"}}
	if got := e.PrimaryTranslation(); got != "to learn" {
		t.Errorf("PrimaryTranslation() = %q, want %q", got, "to learn")
	}
	var empty Entry
	if got := empty.PrimaryTranslation(); got != "" {
		t.Errorf("PrimaryTranslation() on empty entry = %q, want empty", got)
	}
}
