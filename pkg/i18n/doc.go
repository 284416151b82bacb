// Package i18n renders localized message templates.
//
// A Translator is loaded once from a TranslationAdapter, typically an
// EmbeddedFsAdapter reading YAML catalogs from an embed.FS, and is then safe
// for concurrent use. Catalogs are keyed by language code, with nested keys
// addressed by dot notation:
//
//	en:
//	  validation:
//	    required: "%{field} not provided"
//
//	tr.T("en", "validation.required", "field", "email") // "email not provided"
//
// Placeholders use the %{name} form and are filled from key/value argument
// pairs. SetLocale and GetLocale carry the caller's language on a
// context.Context.
package i18n
