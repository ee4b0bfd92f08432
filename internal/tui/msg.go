package tui

import "github.com/runoshun/willflow/internal/usecase"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgLoaded is sent when the today view has been (re)loaded.
type MsgLoaded struct {
	Today *usecase.ShowTodayOutput
}

func (MsgLoaded) sealed() {}

// MsgChanged is sent after a change was stored. Info is shown in the footer.
type MsgChanged struct {
	Info string
}

func (MsgChanged) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
