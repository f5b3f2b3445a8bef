// Package order implements the Order aggregate: the workflow state machine
// keyed by service type, tag binding, sorting sub-status for bag logistics,
// and the append-only workflow audit log.
package order
