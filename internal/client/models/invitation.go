package models

import "time"

// InvitationInfo describes an invitation fetched by code. Invitations are
// ephemeral: fetched, shown, accepted, never persisted locally.
type InvitationInfo struct {
	Code       string    `json:"code"`
	FamilyID   string    `json:"familyId"`
	FamilyName string    `json:"familyName"`
	Role       Role      `json:"role"`
	InvitedBy  string    `json:"invitedBy"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// IsExpired reports whether the invitation's expiry has passed.
func (i InvitationInfo) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
