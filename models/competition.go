package models

import (
	"time"

	"github.com/google/uuid"
)

// Competition is a time-boxed period during which enrolled users accumulate
// points toward a leaderboard.
type Competition struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// CompetitionStatus is derived from the competition date range; it is never
// stored or transmitted.
type CompetitionStatus string

const (
	CompetitionUpcoming CompetitionStatus = "upcoming"
	CompetitionActive   CompetitionStatus = "active"
	CompetitionFinished CompetitionStatus = "finished"
)

// StatusAt derives the competition state at the given instant:
// before the start date it is upcoming, between start and end (inclusive)
// it is active, after the end date it is finished.
func (c Competition) StatusAt(now time.Time) CompetitionStatus {
	switch {
	case now.Before(c.StartDate):
		return CompetitionUpcoming
	case now.After(c.EndDate):
		return CompetitionFinished
	default:
		return CompetitionActive
	}
}

// TimeRemainingAt returns how long until the competition starts (when
// upcoming) or ends (when active). Finished competitions have no remaining
// time.
func (c Competition) TimeRemainingAt(now time.Time) time.Duration {
	switch c.StatusAt(now) {
	case CompetitionUpcoming:
		return c.StartDate.Sub(now)
	case CompetitionActive:
		return c.EndDate.Sub(now)
	default:
		return 0
	}
}

// CompetitionSpec is the body of POST /competitions.
type CompetitionSpec struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// CompetitionPatch is a partial update for PUT /competitions/{id}.
type CompetitionPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// LeaderboardEntry is one row of GET /leaderboard/{competitionId}, ordered by
// score descending. Score is the participant's points inside that competition,
// not the account-wide total.
type LeaderboardEntry struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Score     int    `json:"score"`
}
