// Package classnames joins conditional CSS class tokens into a single class
// attribute value. Tokens keep their order and are never de-duplicated, so a
// caller-supplied class can follow (and override) a built-in one.
package classnames

import "strings"

// Token pairs a class token with the flag deciding whether it is emitted.
type Token struct {
	Value   string
	Include bool
}

// When builds a Token that is emitted only when include is true.
func When(include bool, value string) Token {
	return Token{Value: value, Include: include}
}

// Always builds a Token that is emitted whenever value is non-empty.
func Always(value string) Token {
	return Token{Value: value, Include: true}
}

// Join concatenates the non-empty tokens with a single space.
func Join(tokens ...string) string {
	var b strings.Builder
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	}
	return b.String()
}

// Compose joins the included, non-empty tokens in order.
func Compose(tokens ...Token) string {
	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !token.Include {
			continue
		}
		values = append(values, token.Value)
	}
	return Join(values...)
}

// Fields splits a class attribute value into its individual tokens.
func Fields(classList string) []string {
	return strings.Fields(classList)
}
