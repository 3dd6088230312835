//go:build property

package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestScannerProperties validates logical-name normalization across
// arbitrary directory shapes.
func TestScannerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	segment := gen.RegexMatch(`[a-z][a-z0-9]{0,7}`)

	properties.Property("logical name is the slash-joined relative path", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 || len(segments) > 4 {
				return true
			}

			root := t.TempDir()
			rel := filepath.Join(segments...)
			full := filepath.Join(root, rel)
			if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
				return true
			}
			if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
				return true
			}

			files, err := Scan(root)
			if err != nil || len(files) != 1 {
				return false
			}

			return files[0].Name == strings.Join(segments, "/")
		},
		gen.SliceOf(segment),
	))

	properties.Property("scan of an unchanged tree is stable", prop.ForAll(
		func(names []string) bool {
			if len(names) > 8 {
				return true
			}

			root := t.TempDir()
			for _, name := range names {
				if err := os.WriteFile(filepath.Join(root, name+".html"), []byte("x"), 0644); err != nil {
					return true
				}
			}

			first, err1 := Scan(root)
			second, err2 := Scan(root)
			if err1 != nil || err2 != nil {
				return false
			}
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.RegexMatch(`[a-z]{1,8}`)),
	))

	properties.TestingRun(t)
}
