// Package sanitizer holds the small string normalizers applied to user input
// before validation and to third-party error text before it is shown back
// to a user.
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	msg := clean(err.Error())
package sanitizer
