// Package validator provides the format checks used to vet contact details
// submitted through issues: email addresses and GitHub usernames.
//
// Checks are expressed as Rule values, each pairing a boolean Check with the
// ValidationError it reports. Rules for one input are returned as an ordered
// slice (EmailRules, UsernameRules) and evaluated with ApplyFirst, which stops
// at the first failure. Apply is still available to aggregate failures across
// several fields, and ValidEmail/ValidUsername collapse an ordered list into
// a single Rule for that purpose.
//
// # Results
//
// A nil error means the input is valid. Otherwise the error is a
// ValidationError whose Kind is one of the package sentinels:
//
//	err := validator.ValidateEmail("user@@example.com")
//	if errors.Is(err, validator.ErrInvalidFormat) {
//		fmt.Println(validator.Reason(err)) // email must contain exactly one @
//	}
//
// Kinds:
//   - ErrFieldRequired: blank input
//   - ErrInvalidLength: local part, domain or username too long
//   - ErrInvalidFormat: any other syntactic violation
//   - ErrNotFound, ErrLookupFailed, ErrAccountType: produced by the account
//     package after a remote lookup
//
// # Localization
//
// Every error carries a TranslationKey and TranslationValues. The package
// embeds English, Portuguese and Japanese catalogs; NewTranslator loads them
// into an i18n.Translator and Localize renders a reason in the requested
// language:
//
//	tr, _ := validator.NewTranslator(ctx)
//	msg := validator.Localize(tr, "pt-BR", err)
//
// Regional tags fall back to their base language, then to the translator's
// default language (i18n.WithDefaultLanguage). Field names are rendered
// through the catalog's validation.fields labels.
//
// # Email
//
// Checks run in this order: not blank, exactly one "@", local part 1 to 64
// characters, domain 1 to 253 characters, domain has a dot, domain does not
// start or end with a dot, no ".." in the domain, full address pattern.
//
// # Username
//
// GitHub rules: 1 to 39 characters, ASCII letters, digits and hyphens only,
// no leading or trailing hyphen, no consecutive hyphens. Matching is
// case-insensitive.
package validator
