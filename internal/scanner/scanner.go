// Package scanner discovers template source files for the catalog
// builder.
//
// The scanner walks the template root recursively and yields one
// (path, logical name) pair per regular file. Logical names are the
// root-relative path with separators normalized to forward slashes,
// so catalogs built on different host platforms name their templates
// identically. The scan is all-or-nothing: any unreadable entry fails
// the whole scan, because building a catalog from a partial source
// set would silently drop templates.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/docsrv/docsrv/internal/errors"
)

// TemplateFile is one discovered template source.
type TemplateFile struct {
	// Path is the absolute filesystem path of the source file.
	Path string
	// Name is the logical template name: the root-relative path with
	// forward-slash separators on every platform.
	Name string
}

// Scan enumerates every regular file under root. The returned slice
// is sorted by logical name so repeated scans of an unchanged tree
// produce identical input for the builder.
func Scan(root string) ([]TemplateFile, error) {
	canonical, err := canonicalize(root)
	if err != nil {
		return nil, &errors.ScanError{Root: root, Err: err}
	}

	var files []TemplateFile
	walkErr := filepath.WalkDir(canonical, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &errors.ScanError{Root: root, Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(canonical, path)
		if err != nil {
			return &errors.ScanError{Root: root, Path: path, Err: err}
		}

		files = append(files, TemplateFile{
			Path: path,
			Name: filepath.ToSlash(rel),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// canonicalize resolves root to an absolute, symlink-free path.
func canonicalize(root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
