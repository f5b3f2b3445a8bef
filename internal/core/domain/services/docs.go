// Package services contains stateless domain services operating across
// aggregates: tag binding and lookup, bag selection, completion estimation and
// the cancellation policy. Services hold no state and perform no I/O; all
// collaborators arrive as arguments.
package services
