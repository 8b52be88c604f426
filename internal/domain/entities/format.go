package entities

import "time"

// DebatePhase is a named segment of a debate with a fixed time budget
type DebatePhase string

const (
	PhaseOpening   DebatePhase = "opening"
	PhaseRebuttals DebatePhase = "rebuttals"
	PhaseCrossExam DebatePhase = "cross-exam"
	PhaseClosing   DebatePhase = "closing"
	PhaseFinished  DebatePhase = "finished"
)

// PhaseOrder is the fixed progression every format walks through
var PhaseOrder = []DebatePhase{PhaseOpening, PhaseRebuttals, PhaseCrossExam, PhaseClosing}

// PhaseLabel returns the display name for a phase
func PhaseLabel(phase DebatePhase) string {
	switch phase {
	case PhaseOpening:
		return "Opening Arguments"
	case PhaseRebuttals:
		return "Rebuttals"
	case PhaseCrossExam:
		return "Cross-Examination"
	case PhaseClosing:
		return "Closing Statements"
	case PhaseFinished:
		return "Debate Finished"
	}
	return string(phase)
}

// DebateFormat is a named timing profile mapping phases to durations
type DebateFormat string

const (
	FormatClassic  DebateFormat = "classic"
	FormatFast     DebateFormat = "fast"
	FormatFreeform DebateFormat = "freeform"
)

var phaseDurations = map[DebateFormat]map[DebatePhase]time.Duration{
	FormatClassic: {
		PhaseOpening:   2 * time.Minute,
		PhaseRebuttals: 4 * time.Minute,
		PhaseCrossExam: 2 * time.Minute,
		PhaseClosing:   2 * time.Minute,
	},
	FormatFast: {
		PhaseOpening:   1 * time.Minute,
		PhaseRebuttals: 2 * time.Minute,
		PhaseCrossExam: 1 * time.Minute,
		PhaseClosing:   1 * time.Minute,
	},
	FormatFreeform: {
		PhaseOpening:   3 * time.Minute,
		PhaseRebuttals: 6 * time.Minute,
		PhaseCrossExam: 3 * time.Minute,
		PhaseClosing:   3 * time.Minute,
	},
}

var formatDurations = map[DebateFormat]int{
	FormatClassic:  10,
	FormatFast:     5,
	FormatFreeform: 15,
}

// IsValid checks whether the format is a known timing profile
func (f DebateFormat) IsValid() bool {
	_, ok := phaseDurations[f]
	return ok
}

// DurationMinutes returns the total debate duration for this format
func (f DebateFormat) DurationMinutes() int {
	if minutes, ok := formatDurations[f]; ok {
		return minutes
	}
	return formatDurations[FormatClassic]
}

// PhaseDuration returns the time budget of a phase under this format
func (f DebateFormat) PhaseDuration(phase DebatePhase) (time.Duration, bool) {
	durations, ok := phaseDurations[f]
	if !ok {
		return 0, false
	}
	d, ok := durations[phase]
	return d, ok
}

// NextPhase returns the phase following the given one, or false on the last
func NextPhase(phase DebatePhase) (DebatePhase, bool) {
	for i, p := range PhaseOrder {
		if p == phase && i+1 < len(PhaseOrder) {
			return PhaseOrder[i+1], true
		}
	}
	return phase, false
}

// FormatInfo describes a selectable format for API consumers
type FormatInfo struct {
	Value       DebateFormat `json:"value"`
	Label       string       `json:"label"`
	Duration    int          `json:"duration"`
	Description string       `json:"description"`
}

// DebateFormats lists the selectable timing profiles
func DebateFormats() []FormatInfo {
	return []FormatInfo{
		{Value: FormatClassic, Label: "Classic", Duration: 10, Description: "Traditional debate format with all phases"},
		{Value: FormatFast, Label: "Fast", Duration: 5, Description: "Quick-fire debate with shorter phases"},
		{Value: FormatFreeform, Label: "Freeform", Duration: 15, Description: "Extended debate with flexible structure"},
	}
}
