package forminput

import (
	"context"
	"io"
	"io/fs"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/preview"
)

// Props aliases input.Props so callers can stay on the root package for the
// common case.
type Props = input.Props

// Attributes aliases input.Attributes.
type Attributes = input.Attributes

// Handlers aliases input.Handlers.
type Handlers = input.Handlers

// Ref aliases input.Ref.
type Ref = input.Ref

// NewRenderer exposes the input renderer constructor from the top-level
// module.
func NewRenderer(options ...input.Option) (*input.Renderer, error) {
	return input.New(options...)
}

// GenerateHTML renders props with a renderer built from options. It is the
// simplest entry point for callers that just want markup.
func GenerateHTML(props Props, options ...input.Option) (string, error) {
	renderer, err := input.New(options...)
	if err != nil {
		return "", err
	}
	return renderer.HTML(props)
}

// GeneratePreview loads a YAML scenario document from r and renders it into a
// standalone preview page.
func GeneratePreview(ctx context.Context, r io.Reader, options ...preview.Option) ([]byte, error) {
	doc, err := preview.Load(r)
	if err != nil {
		return nil, err
	}
	page, err := preview.NewPage(options...)
	if err != nil {
		return nil, err
	}
	return page.Render(ctx, doc)
}

// EmbeddedTemplates exposes the built-in preview templates so callers can
// reuse or extend them without importing the preview package directly.
func EmbeddedTemplates() fs.FS {
	return preview.TemplatesFS()
}
