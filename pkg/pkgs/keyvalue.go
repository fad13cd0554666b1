package pkgs

import (
	"bufio"
	"os"
	"regexp"
)

// assignmentRE matches a single var=value line. The identifier is restricted
// to letters, digits and underscore; the value is everything after the first
// '=' on the line, unstripped.
var assignmentRE = regexp.MustCompile(`^([A-Za-z0-9_]*)=(.*)$`)

// readKeyValues parses a flat var=value file into a map.
//
// Lines not matching the assignment pattern (comments, blanks, prose) are
// skipped silently. A missing file yields an empty map, not an error. When a
// variable repeats, the last assignment wins.
func readKeyValues(path string) (map[string]string, error) {
	result := make(map[string]string)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := assignmentRE.FindStringSubmatch(scanner.Text()); m != nil {
			result[m[1]] = m[2]
		}
	}
	return result, scanner.Err()
}
