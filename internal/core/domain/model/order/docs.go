// Package order contains the Order aggregate and its Status enum.
//
// An Order is the shipment request record: customer contact details, the
// origin and destination addresses, the public tracking code, and a mutable
// status that always mirrors the most recent shipment update (or "pending"
// when no updates exist yet).
//
// Status is deliberately not a state machine. The recognized values form a
// closed enum used for rendering and filtering, but any value may follow any
// other — a shipment can go from "delivered" back to "pending" if staff
// record it that way. Transition validation, if ever wanted, belongs in the
// services.StatusProjector seam, not here.
package order
