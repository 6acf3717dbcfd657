package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		240:     "Rs 240",
		1200:    "Rs 1,200",
		1500000: "Rs 1,500,000",
		-240:    "-Rs 240",
	}
	for amount, want := range cases {
		if got := FormatINR(amount); got != want {
			t.Fatalf("FormatINR(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestParseINR(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
	}{
		{"Rs 1,200", 1200},
		{"240", 240},
		{"rs 1,500,000", 1500000},
	} {
		got, err := ParseINR(tc.in)
		if err != nil {
			t.Fatalf("ParseINR(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseINR(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParseINR("Rs "); err == nil {
		t.Fatalf("empty amount should error")
	}
}
