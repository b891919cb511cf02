package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-msgfmt/pkg/document"
)

func TestNormalizeRoundTripsStructs(t *testing.T) {
	t.Parallel()

	type address struct {
		City string `json:"city"`
		Zip  string `json:"zip"`
	}
	type user struct {
		Name    string   `json:"name"`
		Age     int      `json:"age"`
		Address address  `json:"address"`
		Tags    []string `json:"tags"`
	}

	doc := document.Normalize(user{
		Name:    "Ada",
		Age:     36,
		Address: address{City: "London", Zip: "N1"},
		Tags:    []string{"admin", "ops"},
	})

	want := document.Document{
		"name": "Ada",
		"age":  float64(36),
		"address": map[string]any{
			"city": "London",
			"zip":  "N1",
		},
		"tags": []any{"admin", "ops"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("normalized document mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeNestedValues(t *testing.T) {
	t.Parallel()

	type point struct {
		X int `json:"x"`
	}

	doc := document.Normalize(map[string]any{
		"label":  "origin",
		"point":  point{X: 3},
		"counts": []any{1, 2, point{X: 9}},
		"none":   nil,
	})

	want := document.Document{
		"label":  "origin",
		"point":  map[string]any{"x": float64(3)},
		"counts": []any{float64(1), float64(2), map[string]any{"x": float64(9)}},
		"none":   nil,
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("normalized document mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeTotality(t *testing.T) {
	t.Parallel()

	if got := document.Normalize(nil); len(got) != 0 {
		t.Fatalf("expected empty document for nil input, got %v", got)
	}
	// a non-mapping root cannot become a document
	if got := document.Normalize("just a string"); len(got) != 0 {
		t.Fatalf("expected empty document for scalar input, got %v", got)
	}
	if got := document.Normalize(make(chan int)); len(got) != 0 {
		t.Fatalf("expected empty document for unmarshalable input, got %v", got)
	}
}

func TestResolveTraversesMappingsAndSequences(t *testing.T) {
	t.Parallel()

	doc := document.Document{
		"user": map[string]any{
			"name": "John",
			"address": map[string]any{
				"city": "Springfield",
			},
		},
		"items": []any{"apple", "banana"},
		"env":   map[string]string{"stage": "prod"},
	}

	cases := []struct {
		path  string
		want  any
		found bool
	}{
		{"user.name", "John", true},
		{"user.address.city", "Springfield", true},
		{"items.0", "apple", true},
		{"items.1", "banana", true},
		{"env.stage", "prod", true},
		{"items.2", nil, false},
		{"items.00", nil, false},
		{"items.-1", nil, false},
		{"items.+1", nil, false},
		{"user.missing", nil, false},
		{"user.name.deeper", nil, false},
		{"", nil, false},
		{"user..name", nil, false},
	}
	for _, tc := range cases {
		got, found := doc.Resolve(tc.path)
		if found != tc.found {
			t.Fatalf("Resolve(%q) found = %v, want %v", tc.path, found, tc.found)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestResolveDistinguishesNullFromMissing(t *testing.T) {
	t.Parallel()

	doc := document.Document{"nickname": nil}

	got, found := doc.Resolve("nickname")
	if !found || got != nil {
		t.Fatalf("expected present null, got (%v, %v)", got, found)
	}

	got, found = doc.Resolve("surname")
	if found || got != nil {
		t.Fatalf("expected missing path, got (%v, %v)", got, found)
	}
}

func TestDisplayString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"integral float", float64(42), "42"},
		{"fractional float", 3.14, "3.14"},
		{"negative float", -0.5, "-0.5"},
		{"large float stays decimal", 1e15, "1000000000000000"},
		{"int", 7, "7"},
		{"mapping", map[string]any{"a": float64(1)}, `{"a":1}`},
		{"sequence", []any{"x", float64(2), true}, `["x",2,true]`},
	}
	for _, tc := range cases {
		if got := document.DisplayString(tc.value); got != tc.want {
			t.Fatalf("%s: DisplayString(%v) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}
