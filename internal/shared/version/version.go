// Package version carries the build version and the loose semantic version
// comparison used by the update check.
package version

import (
	"strconv"
	"strings"
)

// Current is the running application version. Overridable at build time via
// -ldflags "-X tlogi/internal/shared/version.Current=x.y.z".
var Current = "1.0.0"

// Compare compares two dotted version strings segment by segment.
// Missing segments are treated as 0, so "1.0" == "1.0.0". Non-numeric
// segments also parse as 0. Returns -1, 0 or 1.
func Compare(a, b string) int {
	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")

	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}

	for i := 0; i < n; i++ {
		na := segment(pa, i)
		nb := segment(pb, i)
		if na > nb {
			return 1
		}
		if na < nb {
			return -1
		}
	}
	return 0
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
