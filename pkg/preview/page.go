package preview

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-forminput/pkg/input"
	rendertemplate "github.com/goliatone/go-forminput/pkg/render/template"
	"github.com/goliatone/go-forminput/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	pageTemplate = "templates/preview.tmpl"
	defaultTitle = "Input preview"
)

// TemplatesFS exposes the embedded preview templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

type Option func(*config)

type config struct {
	renderer  *input.Renderer
	templates rendertemplate.TemplateRenderer
	sanitize  bool
}

// WithRenderer renders scenarios with a configured input renderer.
func WithRenderer(renderer *input.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithTemplateRenderer replaces the embedded pongo2 engine. The page template
// is requested as "templates/preview.tmpl".
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithSanitize filters every fragment through input.SanitizePolicy.
func WithSanitize(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// Page renders scenario documents into standalone HTML pages.
type Page struct {
	renderer  *input.Renderer
	templates rendertemplate.TemplateRenderer
	sanitize  bool
}

// NewPage constructs a Page applying any provided options.
func NewPage(options ...Option) (*Page, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.renderer == nil {
		renderer, err := input.New()
		if err != nil {
			return nil, fmt.Errorf("preview: configure input renderer: %w", err)
		}
		cfg.renderer = renderer
	}

	if cfg.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("preview: configure template renderer: %w", err)
		}
		cfg.templates = engine
	}

	return &Page{
		renderer:  cfg.renderer,
		templates: cfg.templates,
		sanitize:  cfg.sanitize,
	}, nil
}

// ContentType is the media type of Render output.
func (p *Page) ContentType() string {
	return "text/html; charset=utf-8"
}

// Fragment renders a single scenario.
func (p *Page) Fragment(scenario Scenario) (string, error) {
	return p.fragment(scenario.Props())
}

// FragmentProps renders arbitrary props with the page renderer.
func (p *Page) FragmentProps(props input.Props) (string, error) {
	return p.fragment(props)
}

func (p *Page) fragment(props input.Props) (string, error) {
	markup, err := p.renderer.HTML(props)
	if err != nil {
		return "", fmt.Errorf("preview: render input: %w", err)
	}
	if p.sanitize {
		markup = input.Sanitize(markup)
	}
	return markup, nil
}

// Render writes every scenario of doc into the page template.
func (p *Page) Render(ctx context.Context, doc Document) ([]byte, error) {
	if len(doc.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	items := make([]any, 0, len(doc.Scenarios))
	for _, scenario := range doc.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		markup, err := p.Fragment(scenario)
		if err != nil {
			return nil, fmt.Errorf("preview: scenario %q: %w", scenario.Name, err)
		}
		items = append(items, map[string]any{
			"name":        scenario.Name,
			"description": scenario.Description,
			"markup":      markup,
		})
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = defaultTitle
	}

	result, err := p.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":      title,
		"stylesheet": doc.Stylesheet,
		"scenarios":  items,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: render template: %w", err)
	}
	return []byte(result), nil
}
