package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-forminput/pkg/render/template/gotemplate"
	"github.com/goliatone/go-forminput/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_WithFilters(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilters(map[string]gotemplate.FilterFunc{
		"shout": func(input any, _ any) (any, error) {
			if input == nil {
				return "", nil
			}
			return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
		},
	}))

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilterValidation(t *testing.T) {
	engine := newEngine(t)
	if err := engine.RegisterFilter("", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected error for empty filter name")
	}
	if err := engine.RegisterFilter("trim", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected error for duplicate filter")
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ greeting|trim }}, {{ name }}", map[string]any{
		"greeting": "  Hi ",
		"name":     "Grace",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Hi, Grace" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_Autoescape(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{"markup": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result, "<p>&lt;b&gt;x&lt;/b&gt;</p>") {
		t.Fatalf("expected escaped markup, got %q", result)
	}
	if !strings.Contains(result, "<p><b>x</b></p>") {
		t.Fatalf("expected raw markup behind safe, got %q", result)
	}
}

func TestGoTemplateEngine_StructData(t *testing.T) {
	engine := newEngine(t)

	type view struct {
		Name string `json:"name"`
	}
	result, err := engine.RenderTemplate("hello", view{Name: "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
