package interpolate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-msgfmt/pkg/interpolate"
)

func TestPlaceholdersReportsRegionsInOrder(t *testing.T) {
	t.Parallel()

	template := "Hi {{user.name}}, {{default(a,'X')}} {{oops"

	got := interpolate.Placeholders(template)
	want := []interpolate.Placeholder{
		{Start: 3, End: 16, Body: "user.name", Path: "user.name"},
		{Start: 18, End: 36, Body: "default(a,'X')", Path: "a", Transform: "default"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}

	for _, ph := range got {
		if template[ph.Start:ph.Start+2] != "{{" || template[ph.End-2:ph.End] != "}}" {
			t.Fatalf("placeholder bounds %d:%d do not cover a delimited region", ph.Start, ph.End)
		}
	}
}

func TestPlaceholdersSkipsBrokenRegions(t *testing.T) {
	t.Parallel()

	if got := interpolate.Placeholders("{{a{b}}"); len(got) != 0 {
		t.Fatalf("expected no placeholders for stray-brace region, got %v", got)
	}

	got := interpolate.Placeholders("{{{name}}}")
	want := []interpolate.Placeholder{
		{Start: 1, End: 9, Body: "name", Path: "name"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("brace-stacked placeholder mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckFlagsRenderTimeSurprises(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		template string
		contains string
	}{
		{"unknown transformation", "{{bogus(x)}}", `unknown transformation "bogus"`},
		{"default without fallback", "{{default(x)}}", "default needs a string fallback"},
		{"default with list fallback", "{{default(x,['a','b'])}}", "default needs a string fallback"},
		{"replace with scalar pair", "{{replace(x, 'nope')}}", "not a [search, replacement] pair"},
		{"replace with short pair", "{{replace(x, ['only'])}}", "not a [search, replacement] pair"},
		{"unterminated region", "text {{tail", "unterminated {{"},
	}
	for _, tc := range cases {
		problems := interpolate.Check(tc.template)
		if len(problems) == 0 {
			t.Fatalf("%s: expected a problem for %q", tc.name, tc.template)
		}
		found := false
		for _, p := range problems {
			if strings.Contains(p.Message, tc.contains) {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: no problem mentions %q in %v", tc.name, tc.contains, problems)
		}
	}
}

func TestCheckReportsUnterminatedTailOnce(t *testing.T) {
	t.Parallel()

	// both openers sit in the same literal tail, only the first is flagged
	problems := interpolate.Check("pre {{a {{b")
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if problems[0].Offset != 4 {
		t.Fatalf("problem offset = %d, want 4", problems[0].Offset)
	}
	if !strings.Contains(problems[0].Message, "unterminated") {
		t.Fatalf("problem message %q does not mention unterminated", problems[0].Message)
	}
}

func TestCheckAcceptsCleanTemplates(t *testing.T) {
	t.Parallel()

	clean := []string{
		"no placeholders",
		"{{name}}",
		"{{default(a,'b')}}",
		"{{date(t)}}",
		"{{replace(s, ['a','b'], ['c','d'])}}",
		"{{{name}}}",
		"{{}}",
	}
	for _, template := range clean {
		if problems := interpolate.Check(template); len(problems) != 0 {
			t.Fatalf("Check(%q) = %v, want none", template, problems)
		}
	}
}

func TestCheckOffsetsPointAtRegions(t *testing.T) {
	t.Parallel()

	template := "ok {{name}} bad {{bogus(x)}}"
	problems := interpolate.Check(template)
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if problems[0].Offset != 16 {
		t.Fatalf("problem offset = %d, want 16", problems[0].Offset)
	}
}
