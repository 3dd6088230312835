// Package resolver supplies the runtime-resolved values the catalog
// builder cannot know statically: the service build version, the
// optional site-wide alert, and the compiler resource suffix read
// from the config store.
//
// Resolution never fails. Externally-sourced values degrade to a
// documented fallback and a warning; the optional alert degrades to
// absence. A broken config store must never prevent a catalog build,
// since the server may start before essential rows exist during
// development.
package resolver

import (
	"context"

	"github.com/spf13/cast"

	"github.com/docsrv/docsrv/internal/logging"
)

// RustcVersionKey is the config-store row holding the raw compiler
// version string.
const RustcVersionKey = "rustc_version"

// FallbackResourceSuffix is substituted when the compiler version
// cannot be fetched or parsed. Rendering with it degrades the page
// (stale resource links) but keeps the service up.
const FallbackResourceSuffix = "???"

// ConfigSource is a key lookup against the external config store.
// The second return distinguishes "row absent" from a lookup error.
type ConfigSource interface {
	Get(ctx context.Context, key string) (interface{}, bool, error)
}

// Alert is the optional site-wide alert rendered at the top of every
// page. A nil *Alert means no alert, which is distinct from any
// fallback.
type Alert struct {
	Text     string `yaml:"text" json:"text"`
	CSSClass string `yaml:"css_class" json:"css_class"`
}

// Values is a consistent set of resolved context for one catalog
// build. It is captured into the catalog's registrations and swapped
// atomically with it.
type Values struct {
	// BuildVersion is the docsrv build identifier, fixed at process
	// start.
	BuildVersion string
	// Alert is the global alert, nil when absent.
	Alert *Alert
	// RustcResourceSuffix is the parsed compiler resource suffix, or
	// FallbackResourceSuffix when it could not be resolved.
	RustcResourceSuffix string
}

// Resolver resolves Values against a ConfigSource.
type Resolver struct {
	source       ConfigSource
	alert        *Alert
	buildVersion string
	logger       logging.Logger
}

// New creates a resolver. source may be nil when no config store is
// configured; every externally-sourced value then resolves to its
// fallback.
func New(source ConfigSource, alert *Alert, buildVersion string, logger logging.Logger) *Resolver {
	return &Resolver{
		source:       source,
		alert:        alert,
		buildVersion: buildVersion,
		logger:       logger.WithComponent("resolver"),
	}
}

// Resolve produces the value set for one catalog build.
func (r *Resolver) Resolve(ctx context.Context) *Values {
	return &Values{
		BuildVersion:        r.buildVersion,
		Alert:               r.alert,
		RustcResourceSuffix: r.resourceSuffix(ctx),
	}
}

func (r *Resolver) resourceSuffix(ctx context.Context) string {
	if r.source == nil {
		r.logger.Warn(ctx, nil, "no config source, using fallback resource suffix")
		return FallbackResourceSuffix
	}

	raw, ok, err := r.source.Get(ctx, RustcVersionKey)
	if err != nil {
		r.logger.Warn(ctx, err, "failed to load rustc version, using fallback")
		return FallbackResourceSuffix
	}
	if !ok {
		r.logger.Warn(ctx, nil, "rustc version missing from config store, using fallback")
		return FallbackResourceSuffix
	}

	versionStr, err := cast.ToStringE(raw)
	if err != nil {
		r.logger.Warn(ctx, err, "rustc version is not a string, using fallback")
		return FallbackResourceSuffix
	}

	suffix, err := ParseRustcVersion(versionStr)
	if err != nil {
		r.logger.Warn(ctx, err, "failed to parse rustc version, using fallback", "raw", versionStr)
		return FallbackResourceSuffix
	}
	return suffix
}

// StaticSource is an in-memory ConfigSource for tests and local
// development.
type StaticSource map[string]interface{}

// Get implements ConfigSource.
func (s StaticSource) Get(_ context.Context, key string) (interface{}, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}
