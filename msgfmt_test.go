package msgfmt_test

import (
	"testing"
	"time"

	msgfmt "github.com/goliatone/go-msgfmt"
)

func TestFormatSubstitutesFromArbitraryData(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	got := msgfmt.Format("{{name}} is {{age}}", user{Name: "Ada", Age: 36})
	if got != "Ada is 36" {
		t.Fatalf("Format = %q, want %q", got, "Ada is 36")
	}

	got = msgfmt.Format("Hello, {{user.name}}!", map[string]any{
		"user": map[string]any{"name": "John"},
	})
	if got != "Hello, John!" {
		t.Fatalf("Format = %q, want %q", got, "Hello, John!")
	}
}

func TestFormatIsTotal(t *testing.T) {
	t.Parallel()

	if got := msgfmt.Format("", map[string]any{"a": 1}); got != "" {
		t.Fatalf("empty template = %q, want empty", got)
	}
	if got := msgfmt.Format("{{missing}}", nil); got != "" {
		t.Fatalf("nil data = %q, want empty", got)
	}
	if got := msgfmt.Format("plain text", nil); got != "plain text" {
		t.Fatalf("plain text = %q, want unchanged", got)
	}
	// nil data behaves exactly like an empty mapping
	withNil := msgfmt.Format("{{a}} {{default(b,'x')}}", nil)
	withEmpty := msgfmt.Format("{{a}} {{default(b,'x')}}", map[string]any{})
	if withNil != withEmpty {
		t.Fatalf("nil data rendered %q, empty mapping rendered %q", withNil, withEmpty)
	}
}

func TestFormatEndToEnd(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"user": map[string]any{
			"name":   "John",
			"signup": 1678886400,
		},
		"items": []any{"apple", "banana"},
		"note":  "This is a test.",
	}

	signup := time.Unix(1678886400, 0).Format("1/2/2006")

	cases := []struct {
		template string
		want     string
	}{
		{"{{user.name}} joined {{date(user.signup)}}", "John joined " + signup},
		{"{{items.0}}", "apple"},
		{"{{default(user.nickname,'friend')}}", "friend"},
		{"{{replace(note, ['is','WAS'], ['test','T'])}}", "ThWAS WAS a T."},
		{"{{bogus(user.name)}}", msgfmt.ErrorText},
		{"{{user.name", "{{user.name"},
		{"{{}}", ""},
	}
	for _, tc := range cases {
		if got := msgfmt.Format(tc.template, data); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestFormatDocumentSkipsNormalization(t *testing.T) {
	t.Parallel()

	doc := msgfmt.Normalize(map[string]any{"greeting": "hi"})
	if got := msgfmt.FormatDocument("{{greeting}}", doc); got != "hi" {
		t.Fatalf("FormatDocument = %q, want %q", got, "hi")
	}
}

func TestCheckAndPlaceholdersRoundTrip(t *testing.T) {
	t.Parallel()

	template := "Hello {{user.name}}, {{default(plan,'free')}}"

	phs := msgfmt.Placeholders(template)
	if len(phs) != 2 {
		t.Fatalf("Placeholders = %v, want two regions", phs)
	}
	if phs[0].Path != "user.name" || phs[1].Transform != "default" {
		t.Fatalf("unexpected placeholder detail: %v", phs)
	}

	if problems := msgfmt.Check(template); len(problems) != 0 {
		t.Fatalf("Check flagged a clean template: %v", problems)
	}
}
