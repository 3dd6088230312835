package catalog

import (
	"html/template"
	"os"
	"time"

	"github.com/docsrv/docsrv/internal/errors"
	"github.com/docsrv/docsrv/internal/scanner"
)

// Build compiles the scanned files into one catalog with the given
// registrations attached. The build fails as a unit: if any file does
// not compile, no catalog is returned and the error names the
// offending file. Cross-template references resolve within the
// returned snapshot because every file is parsed into the same set.
func Build(files []scanner.TemplateFile, regs []Registration) (*Catalog, error) {
	fm, err := funcMap(regs)
	if err != nil {
		return nil, &errors.BuildError{Err: err}
	}

	root := template.New("docsrv").Funcs(fm)
	names := make([]string, 0, len(files))

	for _, f := range files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, &errors.BuildError{File: f.Name, Err: err}
		}
		if _, err := root.New(f.Name).Parse(string(content)); err != nil {
			return nil, &errors.BuildError{File: f.Name, Err: err}
		}
		names = append(names, f.Name)
	}

	return &Catalog{
		templates: root,
		names:     names,
		builtAt:   time.Now(),
	}, nil
}
