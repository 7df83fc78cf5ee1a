package models

import (
	"time"

	"github.com/google/uuid"
)

// RewardType is reference data describing a category of point grants
// (e.g. "sprint goal", "peer bonus").
type RewardType struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

// RewardTypeSpec creates or fully describes a reward type.
type RewardTypeSpec struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Reward is a point-bearing grant issued to a user.
type Reward struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	TypeID       uuid.UUID `json:"type_id"`
	PointsAmount int       `json:"points_amount"`
	AwardedAt    time.Time `json:"awarded_at"`
	Reason       *string   `json:"reason,omitempty"`
}

// RewardGrant is the body of POST /rewards.
type RewardGrant struct {
	UserID       uuid.UUID `json:"user_id"`
	TypeID       uuid.UUID `json:"type_id"`
	PointsAmount int       `json:"points_amount"`
	Reason       *string   `json:"reason,omitempty"`
}
