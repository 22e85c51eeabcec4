package classnames_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/classnames"
)

func TestJoin(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "empty", tokens: nil, want: ""},
		{name: "all empty", tokens: []string{"", "", ""}, want: ""},
		{name: "single", tokens: []string{"w-full"}, want: "w-full"},
		{name: "skips empty", tokens: []string{"a", "", "b", "", "c"}, want: "a b c"},
		{name: "keeps order", tokens: []string{"z", "a", "m"}, want: "z a m"},
		{name: "keeps duplicates", tokens: []string{"border", "px-3", "border"}, want: "border px-3 border"},
		{name: "multi-token entries untouched", tokens: []string{"px-3 py-2", "rounded-lg"}, want: "px-3 py-2 rounded-lg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classnames.Join(tc.tokens...); got != tc.want {
				t.Fatalf("Join(%q) = %q, want %q", tc.tokens, got, tc.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	got := classnames.Compose(
		classnames.Always("base"),
		classnames.When(false, "hidden"),
		classnames.When(true, "visible"),
		classnames.When(true, ""),
		classnames.Always("base"),
	)
	if want := "base visible base"; got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	tokens := []classnames.Token{
		classnames.Always("a"),
		classnames.When(true, "b"),
		classnames.When(false, "c"),
	}
	first := classnames.Compose(tokens...)
	for i := 0; i < 10; i++ {
		if got := classnames.Compose(tokens...); got != first {
			t.Fatalf("iteration %d: got %q, want %q", i, got, first)
		}
	}
}

func TestCompose_ExclusiveVariants(t *testing.T) {
	for _, hasError := range []bool{true, false} {
		got := classnames.Compose(
			classnames.Always("base"),
			classnames.When(hasError, "error"),
			classnames.When(!hasError, "default"),
		)
		want := "base default"
		if hasError {
			want = "base error"
		}
		if got != want {
			t.Fatalf("Compose(hasError=%v) = %q, want %q", hasError, got, want)
		}
	}
}

func TestFields(t *testing.T) {
	got := classnames.Fields("  w-full  px-3\tpy-2 ")
	want := []string{"w-full", "px-3", "py-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Fields mismatch (-want +got):\n%s", diff)
	}
}
