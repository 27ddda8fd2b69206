package processor

// ABOUTME: Tiered JSON extraction from LLM responses with markdown support
// ABOUTME: Tries code fences first, then bracket matching for objects and arrays

import (
	"regexp"
	"strings"

	"github.com/estiens/open-router-enhanced-sub001/pkg/util/json"
)

// markdownCodeRegex matches JSON wrapped in markdown code fences, with or
// without a language tag.
var markdownCodeRegex = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON extracts the first valid JSON object or array embedded in s.
// Strategies run in order of likelihood for LLM output:
//  1. markdown code fences (```json ... ```)
//  2. brace matching for objects mixed into surrounding text
//  3. bracket matching for arrays
//
// Returns "" when no valid JSON is found.
func ExtractJSON(s string) string {
	if strings.Contains(s, "```") {
		if matches := markdownCodeRegex.FindStringSubmatch(s); len(matches) > 1 {
			candidate := strings.TrimSpace(matches[1])
			if looksDelimited(candidate) && json.Valid([]byte(candidate)) {
				return candidate
			}
		}
	}

	if found := scanDelimited(s, '{', '}'); found != "" {
		return found
	}
	return scanDelimited(s, '[', ']')
}

// looksDelimited is a cheap pre-check before full validation.
func looksDelimited(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}

// scanDelimited finds the first balanced open..close span that parses as
// JSON, tracking string context and escapes so brackets inside strings are
// ignored.
func scanDelimited(s string, open, close byte) string {
	for i := 0; i < len(s); i++ {
		if s[i] != open {
			continue
		}

		level := 0
		inString := false
		escaped := false
		for j := i; j < len(s); j++ {
			if escaped {
				escaped = false
				continue
			}
			switch s[j] {
			case '\\':
				escaped = true
			case '"':
				inString = !inString
			case open:
				if !inString {
					level++
				}
			case close:
				if inString {
					continue
				}
				level--
				if level == 0 {
					candidate := s[i : j+1]
					if json.Valid([]byte(candidate)) {
						return candidate
					}
					// Balanced but invalid; resume scanning after i.
					j = len(s)
				}
			}
		}
	}
	return ""
}
