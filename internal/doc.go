// Package internal contains the core implementation packages for
// docsrv.
//
// The packages are organized by functional domain:
//
//   - scanner: template source discovery with normalized logical names
//   - catalog: immutable catalog construction, functions, and filters
//   - resolver: runtime-resolved values with documented fallbacks
//   - store: the atomically-swappable catalog handle
//   - watcher: filesystem monitoring, debouncing, and the reload loop
//   - server: HTTP page rendering, live reload, and metrics endpoints
//   - config: configuration management with validation
//   - logging: component-scoped structured logging
//   - errors: the shared error taxonomy
//
// Data flows scanner -> catalog (consulting resolver) -> store; the
// watcher triggers that flow in the background, and the server reads
// one store snapshot per request.
package internal
