package models

import "time"

// QuestStatus tracks a quest through its server-side lifecycle. The client
// never mutates quest fields directly; transitions happen via API calls and
// the client re-fetches to observe the new state.
type QuestStatus string

const (
	QuestStatusAssigned  QuestStatus = "ASSIGNED"
	QuestStatusSubmitted QuestStatus = "SUBMITTED"
	QuestStatusApproved  QuestStatus = "APPROVED"
	QuestStatusRejected  QuestStatus = "REJECTED"
	QuestStatusExpired   QuestStatus = "EXPIRED"
)

// Quest is a chore with a point reward, assigned to one family member.
type Quest struct {
	ID               string      `json:"id"`
	FamilyID         string      `json:"familyId"`
	AssignedToUserID string      `json:"assignedToUserId"`
	CreatedByUserID  string      `json:"createdByUserId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Points           int         `json:"points"`
	DueAt            time.Time   `json:"dueAt"`
	Status           QuestStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// QuestProof is a photographic completion proof submitted by the assignee.
type QuestProof struct {
	ID                string    `json:"id"`
	QuestID           string    `json:"questId"`
	MediaID           string    `json:"mediaId"`
	Note              string    `json:"note,omitempty"`
	SubmittedByUserID string    `json:"submittedByUserId"`
	CreatedAt         time.Time `json:"createdAt"`
}
