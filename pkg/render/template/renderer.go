package template

import (
	"io"
)

// TemplateRenderer is the seam page renderers rely on. Implementations render
// a named template or raw template content and optionally mirror the result
// into the supplied writers.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
