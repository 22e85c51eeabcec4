package forminput

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-forminput/pkg/input"
)

func TestEmbeddedTemplatesContainsPreviewPage(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "templates/preview.tmpl")
	if err != nil {
		t.Fatalf("expected preview template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-scenario") {
		t.Fatalf("expected preview template to tag scenarios")
	}
}

func TestGenerateHTMLMatchesInputPackage(t *testing.T) {
	props := Props{
		Label:      "Email",
		Error:      "Required",
		Attributes: Attributes{Name: "email", Type: "email"},
	}

	got, err := GenerateHTML(props)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want, err := input.HTML(props)
	if err != nil {
		t.Fatalf("input html: %v", err)
	}
	if got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestGenerateHTMLAppliesStyles(t *testing.T) {
	styles := input.Styles{Base: "field"}
	got, err := GenerateHTML(Props{}, input.WithStyles(styles))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(got, `<input class="field `) {
		t.Fatalf("expected base override, got %s", got)
	}
}

func TestGeneratePreview(t *testing.T) {
	source := strings.NewReader("title: Root\nscenarios:\n  - name: plain\n")

	out, err := GeneratePreview(context.Background(), source)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(string(out), `data-scenario="plain"`) {
		t.Fatalf("expected plain scenario in page:\n%s", out)
	}
}
