package util

import (
	"testing"
	"time"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "zero", amount: 0, expected: "$0.00"},
		{name: "cents", amount: 9.5, expected: "$9.50"},
		{name: "rounding", amount: 19.999, expected: "$20.00"},
		{name: "thousands", amount: 1234.5, expected: "$1,234.50"},
		{name: "millions", amount: 1234567.891, expected: "$1,234,567.89"},
		{name: "negative", amount: -42, expected: "-$42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(tt.amount); got != tt.expected {
				t.Fatalf("FormatPrice(%v) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	if got := FormatDate(time.Time{}); got != "-" {
		t.Fatalf("FormatDate(zero) = %s, want -", got)
	}

	date := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.Local)
	if got := FormatDate(date); got != "Mar 7, 2026" {
		t.Fatalf("FormatDate(%s) = %s, want Mar 7, 2026", date, got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "fits", input: "Voucher", width: 10, expected: "Voucher"},
		{name: "cut", input: "Notion Template Pack", width: 8, expected: "Notion …"},
		{name: "multibyte", input: "Delivered ✓✓", width: 10, expected: "Delivered…"},
		{name: "no width", input: "anything", width: 0, expected: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Truncate(tt.input, tt.width); got != tt.expected {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}
