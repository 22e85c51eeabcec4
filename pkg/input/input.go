package input

import (
	"bytes"
	"fmt"
	"io"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-forminput/pkg/classnames"
)

type Option func(*config)

type config struct {
	styles       Styles
	overrides    []Styles
	selection    *theme.Selection
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// WithStyles overlays the non-empty groups of styles onto the defaults.
// Multiple calls are applied in order, after any theme tokens.
func WithStyles(styles Styles) Option {
	return func(cfg *config) {
		cfg.overrides = append(cfg.overrides, styles)
	}
}

// WithThemeSelection reads style tokens from an already resolved selection.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.selection = selection
	}
}

// WithThemeSelector resolves name/variant through selector when the renderer
// is constructed.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer turns Props into node trees using a fixed set of Styles. It holds
// no per-render state and is safe for concurrent use.
type Renderer struct {
	styles Styles
}

var defaultRenderer = &Renderer{styles: DefaultStyles()}

// New constructs a renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{styles: DefaultStyles()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	selection := cfg.selection
	if selection == nil && cfg.selector != nil {
		resolved, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("input: select theme %q/%q: %w", cfg.themeName, cfg.themeVariant, err)
		}
		selection = resolved
	}

	styles := StylesFromSelection(cfg.styles, selection)
	for _, override := range cfg.overrides {
		styles = styles.Merge(override)
	}
	return &Renderer{styles: styles}, nil
}

// Styles returns the class groups the renderer composes.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Classes composes the <input> class list: base, focus, background, text,
// placeholder, border variant, then the caller's ClassName.
func (r *Renderer) Classes(props Props) string {
	s := r.styles
	hasError := props.Error != ""
	return classnames.Compose(
		classnames.Always(s.Base),
		classnames.Always(s.Focus),
		classnames.Always(s.Background),
		classnames.Always(s.Text),
		classnames.Always(s.Placeholder),
		classnames.When(hasError, s.BorderError),
		classnames.When(!hasError, s.Border),
		classnames.Always(props.ClassName),
	)
}

// Render builds the container node for props and attaches props.Ref to the
// <input> node.
func (r *Renderer) Render(props Props) *html.Node {
	container := newElement(atom.Div, classAttr(r.styles.Container)...)

	if props.Label != "" {
		attrs := classAttr(r.styles.Label)
		if props.ID != "" {
			attrs = append(attrs, html.Attribute{Key: "for", Val: props.ID})
		}
		label := newElement(atom.Label, attrs...)
		label.AppendChild(&html.Node{Type: html.TextNode, Data: props.Label})
		container.AppendChild(label)
	}

	field := newElement(atom.Input, props.inputAttrs(r.Classes(props))...)
	container.AppendChild(field)

	if props.Error != "" {
		message := newElement(atom.P, classAttr(r.styles.ErrorText)...)
		message.AppendChild(&html.Node{Type: html.TextNode, Data: props.Error})
		container.AppendChild(message)
	}

	if props.Ref != nil {
		props.Ref.Attach(&Element{node: field})
	}
	return container
}

// HTML renders props and serializes the result.
func (r *Renderer) HTML(props Props) (string, error) {
	var buf bytes.Buffer
	if err := r.WriteHTML(&buf, props); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML renders props into w.
func (r *Renderer) WriteHTML(w io.Writer, props Props) error {
	return Write(w, r.Render(props))
}

// Render builds props with the default styles.
func Render(props Props) *html.Node {
	return defaultRenderer.Render(props)
}

// Classes composes the <input> class list with the default styles.
func Classes(props Props) string {
	return defaultRenderer.Classes(props)
}

// HTML renders props with the default styles and serializes the result.
func HTML(props Props) (string, error) {
	return defaultRenderer.HTML(props)
}

// WriteHTML renders props with the default styles into w.
func WriteHTML(w io.Writer, props Props) error {
	return defaultRenderer.WriteHTML(w, props)
}

// Write serializes a tree returned by Render, including any changes made
// through a forwarded Element.
func Write(w io.Writer, node *html.Node) error {
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("input: write markup: %w", err)
	}
	return nil
}

func newElement(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

func classAttr(class string) []html.Attribute {
	if class == "" {
		return nil
	}
	return []html.Attribute{{Key: "class", Val: class}}
}
