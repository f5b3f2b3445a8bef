package order

import "time"

// LogEntry is one immutable audit record of the order's workflow log:
// which stage boundary was crossed, when, by whom, and why. The log is
// append-only; entries are never mutated or removed.
type LogEntry struct {
	// From is the stage the order left, nil for the intake entry.
	From *Stage

	// To is the stage the order entered, or the current stage for
	// non-transition events (tagging, bag milestones, cancellation).
	To Stage

	// At is the event timestamp.
	At time.Time

	// Actor is the display name of the acting operator, recorded verbatim.
	Actor string

	// Note is free text describing the event.
	Note string
}

// newLogEntry builds an audit record. A copy of from is taken so later stage
// mutations cannot alias into the log.
func newLogEntry(from *Stage, to Stage, at time.Time, actor, note string) LogEntry {
	var fromCopy *Stage
	if from != nil {
		f := *from
		fromCopy = &f
	}
	return LogEntry{
		From:  fromCopy,
		To:    to,
		At:    at,
		Actor: actor,
		Note:  note,
	}
}
