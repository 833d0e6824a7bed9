// file: internals/features/lms/progress/model/progress_event_type.go
package model

/* =============================================================================
   ENUM-like: Progress Event ('start','progress','complete','passed','failed')
   Event klien yang menggerakkan transition table ItemProgress.
============================================================================= */
type ProgressEventType string

const (
	ProgressEventStart    ProgressEventType = "start"
	ProgressEventProgress ProgressEventType = "progress"
	ProgressEventComplete ProgressEventType = "complete"
	ProgressEventPassed   ProgressEventType = "passed"
	ProgressEventFailed   ProgressEventType = "failed"
)

func (e ProgressEventType) String() string { return string(e) }
func (e ProgressEventType) Valid() bool {
	switch e {
	case ProgressEventStart, ProgressEventProgress, ProgressEventComplete, ProgressEventPassed, ProgressEventFailed:
		return true
	default:
		return false
	}
}

// IsTerminal: event yang menutup module (complete/passed/failed).
func (e ProgressEventType) IsTerminal() bool {
	return e == ProgressEventComplete || e == ProgressEventPassed || e == ProgressEventFailed
}
