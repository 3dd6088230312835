// Package catalog builds and represents immutable template catalogs.
//
// A Catalog is a complete, self-contained snapshot: every template
// found under the source root, compiled together with the runtime
// functions and filters registered into it. It is never mutated after
// construction, so any number of renders can share one catalog
// without locking. Replacement happens wholesale through the store.
package catalog

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

// Catalog is an immutable compiled template set.
type Catalog struct {
	templates *template.Template
	names     []string
	builtAt   time.Time
}

// Render executes the named template against data. The name is the
// logical name assigned by the scanner (forward-slash relative path).
func (c *Catalog) Render(w io.Writer, name string, data interface{}) error {
	if c.templates.Lookup(name) == nil {
		return fmt.Errorf("template %q not found in catalog", name)
	}
	return c.templates.ExecuteTemplate(w, name, data)
}

// Has reports whether the catalog contains the named template.
func (c *Catalog) Has(name string) bool {
	return c.templates.Lookup(name) != nil
}

// Names returns the logical names of all templates, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int { return len(c.names) }

// BuiltAt returns when this snapshot was built.
func (c *Catalog) BuiltAt() time.Time { return c.builtAt }
