package input

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizePolicy admits the markup Render emits minus inline event handlers
// and unknown attributes. The returned policy is shared; do not mutate it.
func SanitizePolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "label", "input", "p")
		policy.AllowNoAttrs().OnElements("label", "input")
		policy.AllowAttrs("class").OnElements("div", "label", "input", "p")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"id", "name", "type", "value", "placeholder", "autocomplete",
			"inputmode", "pattern", "min", "max", "step", "form", "list",
			"minlength", "maxlength", "size", "disabled", "required",
			"readonly", "autofocus", "multiple",
		).OnElements("input")
		policy.AllowAttrs(
			"aria-label", "aria-labelledby", "aria-describedby",
			"aria-invalid", "aria-required",
		).OnElements("input")
		policy.AllowDataAttributes()

		fragmentPolicy = policy
	})
	return fragmentPolicy
}

// Sanitize filters markup through SanitizePolicy.
func Sanitize(markup string) string {
	return SanitizePolicy().Sanitize(markup)
}
