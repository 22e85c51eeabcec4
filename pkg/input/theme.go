package input

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesFromSelection overlays the forminput.* tokens of a theme selection onto
// base. Variant tokens win over manifest tokens; blank and unknown tokens are
// ignored.
func StylesFromSelection(base Styles, selection *theme.Selection) Styles {
	if selection == nil || selection.Manifest == nil {
		return base
	}

	styles := applyTokens(base, selection.Manifest.Tokens)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		styles = applyTokens(styles, variant.Tokens)
	}
	return styles
}

func applyTokens(styles Styles, tokens map[string]string) Styles {
	for _, token := range styleTokens {
		value := strings.TrimSpace(tokens[string(token)])
		if value == "" {
			continue
		}
		styles = styles.With(token, value)
	}
	return styles
}
