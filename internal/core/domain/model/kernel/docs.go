// Package kernel contains shared value objects used across the domain model.
//
// The package provides two identifier types:
//   - UUID: internal entity identifier, wrapping github.com/google/uuid
//   - TrackingCode: the public, human-facing shipment identifier
//
// Both are immutable value objects whose zero values fail Validate. They are
// constructed only through the provided factory functions so that invalid
// identifiers cannot leak into aggregates or persistence.
package kernel
