// Package util holds small display helpers shared by the CLI and the dashboard.
package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatPrice formats an amount as US dollars with thousands separators (e.g., "$1,234.50").
func FormatPrice(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents%100)
}

// FormatDate formats a timestamp as a short local date (e.g., "Jan 2, 2006").
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format("Jan 2, 2006")
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	return string(runes[:width-1]) + "…"
}
