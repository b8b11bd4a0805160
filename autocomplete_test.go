package pdoc

import (
	"reflect"
	"testing"
)

var companies = []string{"Acme Co.", "Acme Foods", "Beta LLC"}

func TestMatches(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"ac", []string{"Acme Co.", "Acme Foods"}},
		{"ACME F", []string{"Acme Foods"}},
		{"b", []string{"Beta LLC"}},
		{"z", nil},
		{"", []string{"Acme Co.", "Acme Foods", "Beta LLC"}},
	}
	for _, tc := range tests {
		got := Matches(companies, tc.prefix)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Matches(%q) = %v, want %v", tc.prefix, got, tc.want)
		}
	}
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"Acme Co.", "Acme Foods"}, "Acme "},
		{[]string{"yellow", "red", "blue", "green"}, ""},
		{[]string{"solo"}, "solo"},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := CommonPrefix(tc.in); got != tc.want {
			t.Errorf("CommonPrefix(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ac", "Acme "},      // several matches: longest common extension
		{"acme c", "Acme Co."}, // single match: the full candidate
		{"z", ""},             // no match: no suggestion
		{"acme ", ""},         // common prefix does not extend the input
	}
	for _, tc := range tests {
		if got := Completion(companies, tc.input); got != tc.want {
			t.Errorf("Completion(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions(companies, "ac")
	want := []string{"Acme ", "Acme Co.", "Acme Foods"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(%q) = %v, want %v", "ac", got, want)
	}

	// A single match must not be duplicated.
	got = Suggestions(companies, "acme c")
	want = []string{"Acme Co."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(%q) = %v, want %v", "acme c", got, want)
	}
}
