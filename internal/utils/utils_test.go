package utils

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFrom(ctx); got != "req-1" {
		t.Fatalf("got %q", got)
	}
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" Sulthan Bathery/Pala "); got != "Sulthan_Bathery_Pala" {
		t.Fatalf("got %q", got)
	}
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("got %q", got)
	}
}

func TestSafeFilenamePartKeepsRunesWhole(t *testing.T) {
	in := strings.Repeat("a", 39) + "₹₹"
	got := SafeFilenamePart(in)
	if !utf8.ValidString(got) {
		t.Fatalf("invalid utf-8 %q", got)
	}
	if want := strings.Repeat("a", 39) + "₹"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDateTime(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := FormatDateTime(at); got != "2025-01-02 03:04:05" {
		t.Fatalf("got %q", got)
	}
}
