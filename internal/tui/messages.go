package tui

import (
	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

// NavigateTo switches the router to another page. Payload, when non-nil, is
// re-delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// SessionChanged is pushed into the program whenever the session store
// notifies a change: sign-in, profile merge, resync, or logout.
type SessionChanged struct {
	Snap session.Snapshot
}

// AuthResult finishes a login or registration attempt.
type AuthResult struct {
	Err  error
	User models.User
}

type calendarLoadedMsg struct {
	calendar    models.Calendar
	unscheduled []models.Task
	err         error
}

type chatReplyMsg struct {
	reply models.ChatReply
	err   error
}

type competitionsLoadedMsg struct {
	competitions []models.Competition
	err          error
}

// leaderboardLoadedMsg carries the competition it was fetched for so stale
// responses can be dropped after the selection moved on.
type leaderboardLoadedMsg struct {
	competitionID uuid.UUID
	seq           uint64
	entries       []models.LeaderboardEntry
	err           error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userSavedMsg struct {
	user models.User
	err  error
}

type userDeletedMsg struct {
	id  uuid.UUID
	err error
}

type competitionSavedMsg struct {
	competition models.Competition
	err         error
}

type competitionDeletedMsg struct {
	id  uuid.UUID
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type accountDeletedMsg struct {
	err error
}

type catalogLoadedMsg struct {
	items []catalogItem
	err   error
}

type catalogSavedMsg struct {
	err error
}

type themeChangedMsg struct {
	theme models.Theme
}

// sessionExpiredMsg is raised by surfaceError when a page action came back
// with a 401. The router answers it by signing the session out.
type sessionExpiredMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
