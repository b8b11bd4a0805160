package pdoc

import "strings"

// Matches returns the candidates whose lowercase form starts with the
// lowercase prefix, preserving original case and relative order.
func Matches(candidates []string, prefix string) []string {
	lower := strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	return out
}

// CommonPrefix returns the longest prefix shared by all strings.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	prefix := []rune(ss[0])
	for _, s := range ss[1:] {
		rs := []rune(s)
		if len(rs) < len(prefix) {
			prefix = prefix[:len(rs)]
		}
		for i := range prefix {
			if rs[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
	}
	return string(prefix)
}

// Completion suggests how to extend input against the candidate set:
// the full candidate when exactly one matches, the longest common
// prefix when it extends beyond what was typed, and nothing otherwise.
func Completion(candidates []string, input string) string {
	matches := Matches(candidates, input)
	switch len(matches) {
	case 0:
		return ""
	case 1:
		return matches[0]
	}
	common := CommonPrefix(matches)
	if len([]rune(common)) > len([]rune(input)) {
		return common
	}
	return ""
}

// Suggestions builds the list shown under a name prompt: the suggested
// completion first (when it is not already a match), then every match.
func Suggestions(candidates []string, input string) []string {
	matches := Matches(candidates, input)
	completion := Completion(candidates, input)
	if completion == "" {
		return matches
	}
	for _, m := range matches {
		if m == completion {
			return matches
		}
	}
	return append([]string{completion}, matches...)
}
