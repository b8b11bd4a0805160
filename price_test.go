package pdoc

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "10.3", want: "10.30"},
		{in: "10.30", want: "10.30"},
		{in: "0", want: "0.00"},
		{in: "9.999", want: "10.00"}, // display rounds, storage keeps precision
		{in: "1234.5", want: "1234.50"},
		{in: "-1", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
	}
	for _, tc := range tests {
		p, err := ParsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q) = %v, want error", tc.in, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) returned unexpected error: %v", tc.in, err)
			continue
		}
		if got := p.String(); got != tc.want {
			t.Errorf("ParsePrice(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPriceStorageKeepsPrecision(t *testing.T) {
	p, err := ParsePrice("10.345")
	if err != nil {
		t.Fatal(err)
	}
	// Truncation happens on display, not on storage.
	if float64(p) != 10.345 {
		t.Errorf("stored value = %v, want 10.345", float64(p))
	}
}

func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		in   PriceUSD
		want string
	}{
		{10.3, "$10.30"},
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
	}
	for _, tc := range tests {
		if got := tc.in.Display(); got != tc.want {
			t.Errorf("PriceUSD(%v).Display() = %q, want %q", float64(tc.in), got, tc.want)
		}
	}
}
