package pkgs

import "strings"

// substVars are the recognized placeholder variables, in scan order.
// VERSION is a textual substring of the other three, so it must be tested
// last or it would shadow them.
var substVars = [...]string{"VERSION_MAJOR", "VERSION_MINOR", "VERSION_MICRO", "VERSION"}

// substituteOnce replaces at most one occurrence of a placeholder variable in
// pattern, trying the braced form ${NAME} before the bare form NAME.
//
// It returns the resulting string and whether a replacement was made.
func substituteOnce(pattern string, lookup func(string) (string, error)) (string, bool, error) {
	for _, v := range substVars {
		braced := "${" + v + "}"
		if strings.Contains(pattern, braced) {
			value, err := lookup(v)
			if err != nil {
				return pattern, false, err
			}
			return strings.Replace(pattern, braced, value, 1), true, nil
		}
		if strings.Contains(pattern, v) {
			value, err := lookup(v)
			if err != nil {
				return pattern, false, err
			}
			return strings.Replace(pattern, v, value, 1), true, nil
		}
	}
	return pattern, false, nil
}

// substitute expands every placeholder occurrence in pattern.
//
// It repeatedly rescans and replaces one occurrence at a time until none of
// the token spellings remain. Version strings contain only digits, dots, and
// release tags, never a token spelling, so the loop terminates. A lookup
// failure (version absent, or too few components for the requested part)
// aborts with that error.
func substitute(pattern string, lookup func(string) (string, error)) (string, error) {
	for {
		next, replaced, err := substituteOnce(pattern, lookup)
		if err != nil {
			return "", err
		}
		if !replaced {
			return next, nil
		}
		pattern = next
	}
}
