package app

import "github.com/alwayselse/trackbuddy/internal/model"

// errMsg surfaces a store error in the status bar.
type errMsg struct {
	err error
}

// logFormReadyMsg carries the goal options needed before the time log
// form can open. edit is nil when creating.
type logFormReadyMsg struct {
	goals []model.Goal
	edit  *model.TimeLog
}

// noteFormReadyMsg carries the goal options needed before the note form
// can open. edit is nil when creating.
type noteFormReadyMsg struct {
	goals []model.Goal
	edit  *model.Note
}
