package preview_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/preview"
	"github.com/goliatone/go-forminput/pkg/testsupport"
)

func loadScenarios(t *testing.T) preview.Document {
	t.Helper()
	doc, err := preview.LoadFile(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("load scenarios: %v", err)
	}
	return doc
}

func TestLoadFile(t *testing.T) {
	doc := loadScenarios(t)

	if doc.Title != "Sign-up inputs" {
		t.Fatalf("title = %q", doc.Title)
	}
	var names []string
	for _, scenario := range doc.Scenarios {
		names = append(names, scenario.Name)
	}
	if diff := cmp.Diff([]string{"email", "required", "custom-class"}, names); diff != "" {
		t.Fatalf("scenario names mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_Props(t *testing.T) {
	doc := loadScenarios(t)

	scenario, ok := doc.Scenario("custom-class")
	if !ok {
		t.Fatalf("expected custom-class scenario")
	}
	got := scenario.Props()
	want := input.Props{
		ClassName: "w-64",
		Attributes: input.Attributes{
			Value: "x",
		},
		Handlers: input.Handlers{
			OnChange: "handleChange(event)",
		},
		Extra: map[string]string{"data-field": "nickname"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}

	email, _ := doc.Scenario("email")
	if props := email.Props(); props.Label != "Email" || props.Type != "email" || props.ID != "email" {
		t.Fatalf("unexpected email props: %+v", props)
	}
}

func TestLoad_InvalidType(t *testing.T) {
	_, err := preview.LoadFile(filepath.Join("testdata", "invalid_type.yaml"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "Type") {
		t.Fatalf("expected error to mention the Type field, got %v", err)
	}
}

func TestLoad_DuplicateNames(t *testing.T) {
	_, err := preview.LoadFile(filepath.Join("testdata", "duplicate.yaml"))
	if err == nil || !strings.Contains(err.Error(), `duplicate scenario "email"`) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoad_Empty(t *testing.T) {
	if _, err := preview.Load(strings.NewReader("")); !errors.Is(err, preview.ErrNoScenarios) {
		t.Fatalf("expected ErrNoScenarios for empty input, got %v", err)
	}
	if _, err := preview.Load(strings.NewReader("title: nothing\n")); !errors.Is(err, preview.ErrNoScenarios) {
		t.Fatalf("expected ErrNoScenarios for missing scenarios, got %v", err)
	}
}

func TestLoad_MissingName(t *testing.T) {
	_, err := preview.Load(strings.NewReader("scenarios:\n  - label: Email\n"))
	if err == nil || !strings.Contains(err.Error(), "Name") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := preview.Load(strings.NewReader("scenarios:\n  - name: a\n    colour: red\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoad_UnknownHandler(t *testing.T) {
	_, err := preview.Load(strings.NewReader("scenarios:\n  - name: a\n    handlers:\n      hover: go()\n"))
	if err == nil || !strings.Contains(err.Error(), `unknown handler event "hover"`) {
		t.Fatalf("expected unknown handler error, got %v", err)
	}
}

func TestLoad_InvalidAttrName(t *testing.T) {
	source := "scenarios:\n  - name: a\n    attrs:\n      \"x><script>\": \"1\"\n"
	_, err := preview.Load(strings.NewReader(source))
	if err == nil || !strings.Contains(err.Error(), "invalid attribute name") {
		t.Fatalf("expected invalid attribute name error, got %v", err)
	}
}

func TestPage_Render(t *testing.T) {
	doc := loadScenarios(t)

	page, err := preview.NewPage()
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	out, err := page.Render(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<title>Sign-up inputs</title>") {
		t.Fatalf("expected page title, got:\n%s", html)
	}
	for _, scenario := range doc.Scenarios {
		fragment, err := page.Fragment(scenario)
		if err != nil {
			t.Fatalf("fragment %s: %v", scenario.Name, err)
		}
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected unescaped fragment for %s in page", scenario.Name)
		}
		if !strings.Contains(html, `data-scenario="`+scenario.Name+`"`) {
			t.Fatalf("expected section for %s", scenario.Name)
		}
	}

	sections := testsupport.FindAll(testsupport.MustParseDocument(t, html), "section")
	if len(sections) != len(doc.Scenarios) {
		t.Fatalf("expected %d sections, got %d", len(doc.Scenarios), len(sections))
	}
}

func TestPage_DefaultTitle(t *testing.T) {
	page, err := preview.NewPage()
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	out, err := page.Render(testsupport.Context(), preview.Document{
		Scenarios: []preview.Scenario{{Name: "plain"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Input preview</title>") {
		t.Fatalf("expected default title, got:\n%s", out)
	}
}

func TestPage_Sanitize(t *testing.T) {
	page, err := preview.NewPage(preview.WithSanitize(true))
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	fragment, err := page.Fragment(preview.Scenario{
		Name:     "x",
		Handlers: map[string]string{"change": "steal()"},
	})
	if err != nil {
		t.Fatalf("fragment: %v", err)
	}
	if strings.Contains(fragment, "onchange") {
		t.Fatalf("expected handler stripped, got %s", fragment)
	}
}

func TestPage_Canceled(t *testing.T) {
	page, err := preview.NewPage()
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := page.Render(ctx, loadScenarios(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPage_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{}
	page, err := preview.NewPage(preview.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	out, err := page.Render(testsupport.Context(), loadScenarios(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output %q", out)
	}
	if stub.name != "templates/preview.tmpl" {
		t.Fatalf("unexpected template name %q", stub.name)
	}
	data, ok := stub.data.(map[string]any)
	if !ok {
		t.Fatalf("expected map data, got %T", stub.data)
	}
	if data["title"] != "Sign-up inputs" {
		t.Fatalf("unexpected title %v", data["title"])
	}
	if items, _ := data["scenarios"].([]any); len(items) != 3 {
		t.Fatalf("expected 3 scenario items, got %v", data["scenarios"])
	}
}

type stubTemplateRenderer struct {
	name string
	data any
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	s.name = name
	s.data = data
	return "custom-output", nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
