package input

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Props is the full property set of one Input render.
type Props struct {
	// Label is rendered above the field when non-empty.
	Label string
	// Error is rendered below the field when non-empty and switches the input
	// to the error border.
	Error string
	// ClassName is appended after the built-in input classes.
	ClassName string
	// Ref receives a handle onto the rendered <input> element.
	Ref Ref

	Attributes
	Handlers

	// Extra carries attributes without a dedicated field (aria-*, data-*,
	// hx-*, ...). Keys are trimmed and emitted in sorted order. Keys that are
	// not valid attribute names (see ValidAttributeName) are dropped. A "class"
	// key is ignored, use ClassName instead.
	Extra map[string]string
}

// Attributes lists the native <input> attributes forwarded verbatim.
//
// Zero values mean absent: an empty string or a non-positive number is not
// emitted. To send an explicit value="" or minlength="0", leave the field
// unset and put the attribute in Props.Extra.
type Attributes struct {
	ID           string
	Name         string
	Type         string
	Value        string
	DefaultValue string
	Placeholder  string
	AutoComplete string
	InputMode    string
	Pattern      string
	Min          string
	Max          string
	Step         string
	Form         string
	List         string

	MinLength int
	MaxLength int
	Size      int

	Disabled  bool
	Required  bool
	ReadOnly  bool
	AutoFocus bool
	Multiple  bool
}

// Handlers holds inline event handler source forwarded as on* attributes.
type Handlers struct {
	OnChange  string
	OnInput   string
	OnFocus   string
	OnBlur    string
	OnKeyDown string
	OnKeyUp   string
	OnInvalid string
}

func (a Attributes) htmlAttrs() []html.Attribute {
	var out []html.Attribute
	str := func(key, value string) {
		if value != "" {
			out = append(out, html.Attribute{Key: key, Val: value})
		}
	}
	num := func(key string, value int) {
		if value > 0 {
			out = append(out, html.Attribute{Key: key, Val: strconv.Itoa(value)})
		}
	}
	flag := func(key string, value bool) {
		if value {
			out = append(out, html.Attribute{Key: key})
		}
	}

	str("id", a.ID)
	str("name", a.Name)
	str("type", a.Type)
	if a.Value != "" {
		str("value", a.Value)
	} else {
		str("value", a.DefaultValue)
	}
	str("placeholder", a.Placeholder)
	str("autocomplete", a.AutoComplete)
	str("inputmode", a.InputMode)
	str("pattern", a.Pattern)
	str("min", a.Min)
	str("max", a.Max)
	str("step", a.Step)
	str("form", a.Form)
	str("list", a.List)
	num("minlength", a.MinLength)
	num("maxlength", a.MaxLength)
	num("size", a.Size)
	flag("disabled", a.Disabled)
	flag("required", a.Required)
	flag("readonly", a.ReadOnly)
	flag("autofocus", a.AutoFocus)
	flag("multiple", a.Multiple)
	return out
}

func (h Handlers) htmlAttrs() []html.Attribute {
	pairs := [...]struct {
		key, value string
	}{
		{"onchange", h.OnChange},
		{"oninput", h.OnInput},
		{"onfocus", h.OnFocus},
		{"onblur", h.OnBlur},
		{"onkeydown", h.OnKeyDown},
		{"onkeyup", h.OnKeyUp},
		{"oninvalid", h.OnInvalid},
	}
	var out []html.Attribute
	for _, pair := range pairs {
		if pair.value != "" {
			out = append(out, html.Attribute{Key: pair.key, Val: pair.value})
		}
	}
	return out
}

// inputAttrs assembles the <input> attribute list: class first, then the
// enumerated attributes and handlers, then Extra in key order. Extra keys that
// repeat an attribute already emitted are dropped.
func (p Props) inputAttrs(class string) []html.Attribute {
	attrs := []html.Attribute{{Key: "class", Val: class}}
	attrs = append(attrs, p.Attributes.htmlAttrs()...)
	attrs = append(attrs, p.Handlers.htmlAttrs()...)

	if len(p.Extra) == 0 {
		return attrs
	}

	seen := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		seen[attr.Key] = struct{}{}
	}

	keys := make([]string, 0, len(p.Extra))
	for key := range p.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := strings.TrimSpace(key)
		if !ValidAttributeName(name) {
			continue
		}
		normalized := strings.ToLower(name)
		if normalized == "classname" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		attrs = append(attrs, html.Attribute{Key: name, Val: p.Extra[key]})
	}
	return attrs
}

// ValidAttributeName reports whether name can be written as an HTML attribute
// name as is. The serializer does not escape names, so names holding
// whitespace, control characters or any of "'`<>/= are rejected.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError {
			return false
		}
		if strings.ContainsRune("\"'<>/=`", r) {
			return false
		}
	}
	return true
}
