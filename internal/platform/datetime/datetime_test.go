package datetime

import (
	"testing"
	"time"
)

func TestParseAcceptedLayouts(t *testing.T) {
	want := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	cases := []string{
		"2024-05-17T09:30:00Z",
		"2024-05-17T11:30:00+02:00",
		"2024-05-17T09:30",
		"2024-05-17 09:30:00",
		"  2024-05-17T09:30:00Z  ",
	}
	for _, in := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
	d, err := Parse("2024-05-17")
	if err != nil || !d.Equal(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date only: %v %v", d, err)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "17/05/2024"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestFormatZero(t *testing.T) {
	if Format(time.Time{}) != "" || FormatInput(time.Time{}) != "" {
		t.Fatal("zero values must render empty")
	}
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	if got := Format(ts); got != "2024-01-02T02:04:05Z" {
		t.Fatalf("Format = %q", got)
	}
	if got := FormatInput(ts); got != "2024-01-02T02:04" {
		t.Fatalf("FormatInput = %q", got)
	}
}
