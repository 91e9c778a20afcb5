package models

import "time"

// UserPoints is a member's current point balance within one family.
type UserPoints struct {
	UserID      string    `json:"userId"`
	FamilyID    string    `json:"familyId"`
	TotalPoints int       `json:"totalPoints"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
