// Package tui provides the terminal user interface for willflow.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeAdd                 // Quick-add input
	ModeDiary               // Diary input
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeDiary:
		return "diary"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeAdd || m == ModeDiary
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmRemove               // Remove the selected task
	ConfirmStart                // End planning
	ConfirmNewDay               // Close the day
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmRemove:
		return "remove this task"
	case ConfirmStart:
		return "start execution"
	case ConfirmNewDay:
		return "close the day"
	default:
		return ""
	}
}
