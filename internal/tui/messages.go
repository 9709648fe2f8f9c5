package tui

import "time"

// pollMsg asks the model to pick up a newer document version.
type pollMsg time.Time

// actionDoneMsg reports a finished controller call.
type actionDoneMsg struct {
	action string
	err    error
}
