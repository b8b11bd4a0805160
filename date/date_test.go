package date

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-02-17", want: New(2023, time.February, 17)},
		{in: "2024-02-29", want: New(2024, time.February, 29)}, // leap year
		{in: "2023-13-01", wantErr: true},
		{in: "2023-02-30", wantErr: true},
		{in: "2023-2-7", wantErr: true}, // unpadded fields are rejected
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"2023-01-07", "1999-12-31", "2024-02-29"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestLong(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2023-02-17", "February 17, 2023"},
		{"2023-01-07", "January 7, 2023"},
	}
	for _, tc := range tests {
		if got := MustParse(tc.in).Long(); got != tc.want {
			t.Errorf("MustParse(%q).Long() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAdd(t *testing.T) {
	d := MustParse("2023-01-28")
	if got, want := d.Add(7).String(), "2023-02-04"; got != want {
		t.Errorf("Add(7) = %q, want %q", got, want)
	}
	if got, want := d.Add(0).String(), "2023-01-28"; got != want {
		t.Errorf("Add(0) = %q, want %q", got, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	d := MustParse("2023-02-17")
	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var back Date
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal(%q): %v", out, err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestYAMLRejectsInvalid(t *testing.T) {
	var d Date
	if err := yaml.Unmarshal([]byte(`"2023-13-01"`), &d); err == nil {
		t.Error("unmarshalling an invalid date did not fail")
	}
}
