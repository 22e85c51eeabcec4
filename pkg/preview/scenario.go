package preview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forminput/pkg/input"
)

// ErrNoScenarios is returned when a document declares no scenarios.
var ErrNoScenarios = errors.New("preview: document has no scenarios")

// Document is a YAML scenario file.
type Document struct {
	Title      string     `yaml:"title" json:"title"`
	Stylesheet string     `yaml:"stylesheet" json:"stylesheet"`
	Scenarios  []Scenario `yaml:"scenarios" json:"scenarios" validate:"dive"`
}

// Scenario describes one Input render.
type Scenario struct {
	Name        string            `yaml:"name" json:"name" validate:"required"`
	Description string            `yaml:"description" json:"description"`
	Label       string            `yaml:"label" json:"label"`
	Error       string            `yaml:"error" json:"error"`
	ClassName   string            `yaml:"class" json:"class"`
	Field       Field             `yaml:"field" json:"field"`
	Handlers    map[string]string `yaml:"handlers" json:"handlers"`
	Attrs       map[string]string `yaml:"attrs" json:"attrs"`
}

// Field mirrors input.Attributes for scenario files.
type Field struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type" validate:"omitempty,oneof=text email password number tel url search date time datetime-local month week color"`
	Value        string `yaml:"value" json:"value"`
	DefaultValue string `yaml:"default_value" json:"default_value"`
	Placeholder  string `yaml:"placeholder" json:"placeholder"`
	AutoComplete string `yaml:"autocomplete" json:"autocomplete"`
	InputMode    string `yaml:"inputmode" json:"inputmode"`
	Pattern      string `yaml:"pattern" json:"pattern"`
	Min          string `yaml:"min" json:"min"`
	Max          string `yaml:"max" json:"max"`
	Step         string `yaml:"step" json:"step"`
	Form         string `yaml:"form" json:"form"`
	List         string `yaml:"list" json:"list"`
	MinLength    int    `yaml:"minlength" json:"minlength" validate:"gte=0"`
	MaxLength    int    `yaml:"maxlength" json:"maxlength" validate:"gte=0"`
	Size         int    `yaml:"size" json:"size" validate:"gte=0"`
	Disabled     bool   `yaml:"disabled" json:"disabled"`
	Required     bool   `yaml:"required" json:"required"`
	ReadOnly     bool   `yaml:"readonly" json:"readonly"`
	AutoFocus    bool   `yaml:"autofocus" json:"autofocus"`
	Multiple     bool   `yaml:"multiple" json:"multiple"`
}

var handlerSetters = map[string]func(*input.Handlers, string){
	"change":  func(h *input.Handlers, v string) { h.OnChange = v },
	"input":   func(h *input.Handlers, v string) { h.OnInput = v },
	"focus":   func(h *input.Handlers, v string) { h.OnFocus = v },
	"blur":    func(h *input.Handlers, v string) { h.OnBlur = v },
	"keydown": func(h *input.Handlers, v string) { h.OnKeyDown = v },
	"keyup":   func(h *input.Handlers, v string) { h.OnKeyUp = v },
	"invalid": func(h *input.Handlers, v string) { h.OnInvalid = v },
}

// Props converts the scenario into component properties.
func (s Scenario) Props() input.Props {
	props := input.Props{
		Label:     s.Label,
		Error:     s.Error,
		ClassName: s.ClassName,
		Attributes: input.Attributes{
			ID:           s.Field.ID,
			Name:         s.Field.Name,
			Type:         s.Field.Type,
			Value:        s.Field.Value,
			DefaultValue: s.Field.DefaultValue,
			Placeholder:  s.Field.Placeholder,
			AutoComplete: s.Field.AutoComplete,
			InputMode:    s.Field.InputMode,
			Pattern:      s.Field.Pattern,
			Min:          s.Field.Min,
			Max:          s.Field.Max,
			Step:         s.Field.Step,
			Form:         s.Field.Form,
			List:         s.Field.List,
			MinLength:    s.Field.MinLength,
			MaxLength:    s.Field.MaxLength,
			Size:         s.Field.Size,
			Disabled:     s.Field.Disabled,
			Required:     s.Field.Required,
			ReadOnly:     s.Field.ReadOnly,
			AutoFocus:    s.Field.AutoFocus,
			Multiple:     s.Field.Multiple,
		},
	}
	for event, source := range s.Handlers {
		if set, ok := handlerSetters[normalizeEvent(event)]; ok {
			set(&props.Handlers, source)
		}
	}
	if len(s.Attrs) > 0 {
		props.Extra = make(map[string]string, len(s.Attrs))
		for key, value := range s.Attrs {
			props.Extra[key] = value
		}
	}
	return props
}

// Scenario returns the scenario called name.
func (d Document) Scenario(name string) (Scenario, bool) {
	for _, scenario := range d.Scenarios {
		if scenario.Name == name {
			return scenario, true
		}
	}
	return Scenario{}, false
}

// Validate checks struct constraints, unique scenario names, handler event
// names and attribute names.
func (d Document) Validate() error {
	if len(d.Scenarios) == 0 {
		return ErrNoScenarios
	}

	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("preview: invalid document: %w", err)
	}

	seen := make(map[string]struct{}, len(d.Scenarios))
	for _, scenario := range d.Scenarios {
		if _, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("preview: duplicate scenario %q", scenario.Name)
		}
		seen[scenario.Name] = struct{}{}

		events := make([]string, 0, len(scenario.Handlers))
		for event := range scenario.Handlers {
			events = append(events, event)
		}
		sort.Strings(events)
		for _, event := range events {
			if _, ok := handlerSetters[normalizeEvent(event)]; !ok {
				return fmt.Errorf("preview: scenario %q: unknown handler event %q", scenario.Name, event)
			}
		}

		attrs := make([]string, 0, len(scenario.Attrs))
		for key := range scenario.Attrs {
			attrs = append(attrs, key)
		}
		sort.Strings(attrs)
		for _, key := range attrs {
			if !input.ValidAttributeName(strings.TrimSpace(key)) {
				return fmt.Errorf("preview: scenario %q: invalid attribute name %q", scenario.Name, key)
			}
		}
	}
	return nil
}

// Load decodes and validates a YAML document.
func Load(r io.Reader) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrNoScenarios
		}
		return Document{}, fmt.Errorf("preview: decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads a document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("preview: read %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// LoadFS reads a document from fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("preview: read %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

func normalizeEvent(event string) string {
	event = strings.ToLower(strings.TrimSpace(event))
	return strings.TrimPrefix(event, "on")
}
