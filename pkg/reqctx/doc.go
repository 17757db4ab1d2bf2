// Package reqctx provides centralized request context management.
//
// It is the single source of truth for request-scoped data: request
// metadata set by HTTP middleware and the resolved auth session.
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
package reqctx
