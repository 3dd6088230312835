package resolver

import (
	"fmt"
	"regexp"
)

// rustcVersionRe matches strings like
// "rustc 1.45.0-nightly (abcdef123 2020-05-01)".
var rustcVersionRe = regexp.MustCompile(`(\d+\.\d+\.\d+(?:-\w+)?(?:\.\d+)?) \((\w+) (\d+)-(\d+)-(\d+)\)`)

// ParseRustcVersion turns a raw `rustc --version` string into the
// resource suffix used for compiler-versioned static assets, e.g.
// "rustc 1.45.0-nightly (abcdef123 2020-05-01)" becomes
// "20200501-1.45.0-nightly-abcdef123".
func ParseRustcVersion(version string) (string, error) {
	captures := rustcVersionRe.FindStringSubmatch(version)
	if captures == nil {
		return "", fmt.Errorf("invalid rustc version: %q", version)
	}
	return fmt.Sprintf("%s%s%s-%s-%s",
		captures[3], captures[4], captures[5], captures[1], captures[2]), nil
}
