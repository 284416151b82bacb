package validator

import (
	"context"
	"embed"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/issuecheck/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator renders catalog messages. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
	HasTranslation(lang, key string) bool
	DefaultLanguage() string
}

// NewTranslator loads the built-in reason catalogs.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

// Translate renders the reason in lang. Regional tags fall back to their
// base language ("pt-BR" to "pt"), then to the translator's default
// language; when no catalog has the key the English Message is returned.
func (e ValidationError) Translate(t Translator, lang string) string {
	if t == nil || e.TranslationKey == "" {
		return e.Message
	}

	for _, candidate := range langCandidates(lang, t.DefaultLanguage()) {
		if t.HasTranslation(candidate, e.TranslationKey) {
			return t.T(candidate, e.TranslationKey, e.translationArgs(t, candidate)...)
		}
	}
	return e.Message
}

// Localize renders the reason carried by err in lang.
// Errors that are not validation errors are returned as err.Error().
func Localize(t Translator, lang string, err error) string {
	if err == nil {
		return ""
	}
	verr, ok := AsValidationError(err)
	if !ok {
		return err.Error()
	}
	return verr.Translate(t, lang)
}

// LocalizeContext is Localize with the language stored on ctx by i18n.SetLocale.
func LocalizeContext(ctx context.Context, t Translator, err error) string {
	return Localize(t, i18n.GetLocale(ctx), err)
}

func langCandidates(lang, fallback string) []string {
	var candidates []string
	add := func(c string) {
		if c != "" && !slices.Contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}

	if tag, err := language.Parse(lang); err == nil {
		add(tag.String())
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	} else {
		add(lang)
	}
	add(fallback)

	return candidates
}

// translationArgs flattens TranslationValues into sorted key/value pairs.
// The field name is replaced by its "validation.fields.<field>" label when
// lang has one.
func (e ValidationError) translationArgs(t Translator, lang string) []string {
	values := maps.Clone(e.TranslationValues)
	if values == nil {
		values = make(map[string]any, 1)
	}
	if label := "validation.fields." + e.Field; e.Field != "" && t.HasTranslation(lang, label) {
		values["field"] = t.T(lang, label)
	}

	keys := slices.Sorted(maps.Keys(values))
	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
