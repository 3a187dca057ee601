// Package dict models dictionary entries, the source material for generated
// exercises. Raw entries arrive in several shapes; NormalizeEntry maps every
// known field alias onto the canonical Entry.
package dict

import "strings"

// Gender is the grammatical gender of a noun.
type Gender string

const (
	Masculine Gender = "maskulin"
	Feminine  Gender = "feminin"
	Neuter    Gender = "neutral"
	Unknown   Gender = ""
)

// genderAliases maps every recognized gender spelling (German and English
// full words, single letters, abbreviations) onto the canonical enum.
var genderAliases = map[string]Gender{
	"m": Masculine, "mas": Masculine, "mask": Masculine,
	"maskulin": Masculine, "männlich": Masculine, "masculine": Masculine,
	"f": Feminine, "fem": Feminine,
	"feminin": Feminine, "weiblich": Feminine, "feminine": Feminine,
	"n": Neuter, "neu": Neuter, "neut": Neuter,
	"neutral": Neuter, "neuter": Neuter, "sächlich": Neuter,
}

// articleByGender is the fixed three-way mapping between gender and
// definite article.
var articleByGender = map[Gender]string{
	Masculine: "der",
	Feminine:  "die",
	Neuter:    "das",
}

var genderByArticle = map[string]Gender{
	"der": Masculine,
	"die": Feminine,
	"das": Neuter,
}

// ParseGender resolves any recognized alias to the canonical Gender.
// Unrecognized input yields Unknown.
func ParseGender(s string) Gender {
	if g, ok := genderAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return g
	}
	return Unknown
}

// ArticleFor returns the definite article for a gender, or "" for Unknown.
func ArticleFor(g Gender) string {
	return articleByGender[g]
}

// GenderForArticle returns the gender implied by a definite article,
// or Unknown for anything else.
func GenderForArticle(article string) Gender {
	return genderByArticle[strings.ToLower(strings.TrimSpace(article))]
}

// Entry is a canonical dictionary entry.
type Entry struct {
	// ID identifies the entry for exercise lineage. May be empty for
	// sources without stable ids; generators then fall back to the lemma.
	ID string

	// Lemma is the headword. Required.
	Lemma string

	// Gender and Article agree when both are set; NormalizeEntry derives
	// the missing one from the other.
	Gender  Gender
	Article string

	// Plural is the plural form, when the source provides one.
	Plural string

	// Translations are ordered; the first is the primary translation.
	Translations []string

	// Examples are example sentences containing the lemma.
	Examples []string

	// PartOfSpeech is the source's part-of-speech label, lowercased.
	PartOfSpeech string

	// Level is the CEFR level label of the entry, when provided.
	Level string

	// Tags carry through to generated exercises.
	Tags []string
}

// IsNoun reports whether the entry qualifies for noun exercises: an explicit
// noun part of speech, or any resolvable article/gender signal.
func (e *Entry) IsNoun() bool {
	pos := strings.ToLower(e.PartOfSpeech)
	if strings.Contains(pos, "noun") || pos == "n" || pos == "substantiv" {
		return true
	}
	return e.Gender != Unknown || GenderForArticle(e.Article) != Unknown
}

// PrimaryTranslation returns the first translation, or "".
func (e *Entry) PrimaryTranslation() string {
	if len(e.Translations) == 0 {
		return ""
	}
	return e.Translations[0]
}

// NormalizeEntry builds a canonical Entry from a raw record. Field aliases:
// lemma/word/term, gender/genus/g, plural/pl/plur, pos/partOfSpeech,
// translations/meanings. An entry without a lemma is returned as-is with an
// empty Lemma; callers skip those.
func NormalizeEntry(raw map[string]any) Entry {
	e := Entry{
		ID:           str(raw, "id"),
		Lemma:        first(raw, "lemma", "word", "term"),
		Article:      strings.ToLower(first(raw, "article", "artikel")),
		Plural:       first(raw, "plural", "pl", "plur"),
		PartOfSpeech: strings.ToLower(first(raw, "pos", "partOfSpeech")),
		Level:        first(raw, "level"),
		Translations: strs(raw, "translations", "meanings"),
		Examples:     exampleStrings(raw),
		Tags:         strs(raw, "tags"),
	}

	e.Gender = ParseGender(first(raw, "gender", "genus", "g"))

	// Some sources put the article in the gender field.
	if e.Gender == Unknown && e.Article == "" {
		e.Article = strings.ToLower(first(raw, "gender", "genus", "g"))
		if GenderForArticle(e.Article) == Unknown {
			e.Article = ""
		}
	}

	// Cross-derive whichever of gender/article is missing.
	if e.Article == "" && e.Gender != Unknown {
		e.Article = ArticleFor(e.Gender)
	}
	if e.Gender == Unknown && e.Article != "" {
		e.Gender = GenderForArticle(e.Article)
	}

	if e.ID == "" {
		e.ID = e.Lemma
	}
	return e
}

func str(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}

func first(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := str(raw, k); s != "" {
			return s
		}
	}
	return ""
}

func strs(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		vals, ok := raw[k].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, v := range vals {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// exampleStrings accepts both plain strings and bilingual objects with a
// "de" field, as the original data mixes the two.
func exampleStrings(raw map[string]any) []string {
	vals, ok := raw["examples"].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range vals {
		switch ex := v.(type) {
		case string:
			if strings.TrimSpace(ex) != "" {
				out = append(out, ex)
			}
		case map[string]any:
			if de, ok := ex["de"].(string); ok && strings.TrimSpace(de) != "" {
				out = append(out, de)
			}
		}
	}
	return out
}
