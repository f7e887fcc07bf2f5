// Package services contains stateless domain services that coordinate
// behavior across entities.
//
// The only service today is the StatusProjector, which copies the status of
// a freshly appended shipment update onto its owning order. It lives behind
// an interface so transition validation could be layered in later without
// touching the update-append use case.
package services
