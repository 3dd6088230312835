package catalog

import (
	"fmt"
	"html/template"

	"github.com/docsrv/docsrv/internal/logging"
	"github.com/docsrv/docsrv/internal/resolver"
)

// FilterFunc is a pure transform over a single input value plus a
// fixed set of named options. Filters run at render time against
// page-local data, so type mismatches must come back as errors, not
// panics.
type FilterFunc func(value interface{}, opts ...string) (interface{}, error)

type registrationKind int

const (
	kindConstant registrationKind = iota
	kindFilter
)

// Registration is one named callable attached to a catalog. The set
// of kinds is closed: a constant function returns a value fixed at
// build time, a filter transforms a value during rendering. Dispatch
// happens by name lookup in the compiled template set.
type Registration struct {
	name     string
	kind     registrationKind
	constant interface{}
	filter   FilterFunc
}

// Constant creates a registration whose value is fixed at build time.
func Constant(name string, value interface{}) Registration {
	return Registration{name: name, kind: kindConstant, constant: value}
}

// Filter creates a registration for a render-time transform.
func Filter(name string, fn FilterFunc) Registration {
	return Registration{name: name, kind: kindFilter, filter: fn}
}

// Name returns the name the registration is dispatched under.
func (r Registration) Name() string { return r.name }

// funcMap lowers registrations into the template function table.
func funcMap(regs []Registration) (template.FuncMap, error) {
	fm := make(template.FuncMap, len(regs))
	for _, reg := range regs {
		if _, dup := fm[reg.name]; dup {
			return nil, fmt.Errorf("duplicate registration %q", reg.name)
		}
		switch reg.kind {
		case kindConstant:
			value := reg.constant
			fm[reg.name] = func() interface{} { return value }
		case kindFilter:
			fm[reg.name] = reg.filter
		default:
			return nil, fmt.Errorf("registration %q has unknown kind", reg.name)
		}
	}
	return fm, nil
}

// DefaultRegistrations is the fixed set of functions and filters every
// docsrv catalog carries, bound to one resolved value set.
func DefaultRegistrations(vals *resolver.Values, logger logging.Logger) []Registration {
	// A nil alert stays a bare nil so {{with global_alert}} skips the
	// alert block instead of rendering a placeholder.
	var alert interface{}
	if vals.Alert != nil {
		alert = vals.Alert
	}

	return []Registration{
		Constant("global_alert", alert),
		Constant("docsrv_version", vals.BuildVersion),
		Constant("rustc_resource_suffix", vals.RustcResourceSuffix),
		Filter("timeformat", Timeformat),
		Filter("dedent", Dedent),
		Filter("dbg", Dbg(logger)),
	}
}
