package config

import (
	"strings"
	"unicode"
)

// canonicalizeEnvKey turns POLLER_NOTIFICATION_TITLE into poller.notificationTitle by matching
// runs of segments against the keys already loaded from yaml. Unknown segments are lowercased.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var segments []string
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	path := make([]string, 0, len(segments))
	current := known
	for i := 0; i < len(segments); {
		key, next, width := matchSegments(current, segments[i:])
		if width == 0 {
			key, next, width = segments[i], nil, 1
		}
		path = append(path, key)
		current = next
		i += width
	}

	return strings.Join(path, ".")
}

// matchSegments finds the key of current spelled by the longest run of leading segments
func matchSegments(current map[string]any, segments []string) (string, map[string]any, int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for width := len(segments); width > 0; width-- {
		needle := normalizeToken(strings.Join(segments[:width], ""))
		for key, value := range current {
			if normalizeToken(key) == needle {
				child, _ := value.(map[string]any)

				return key, child, width
			}
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
