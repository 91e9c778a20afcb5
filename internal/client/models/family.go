package models

import "time"

// Role of a member within a family.
type Role string

const (
	RoleParent Role = "PARENT"
	RoleChild  Role = "CHILD"
)

// Family is a family account on the backend.
type Family struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FamilyMember is a user's membership record within one family.
type FamilyMember struct {
	ID       string    `json:"id"`
	FamilyID string    `json:"familyId"`
	UserID   string    `json:"userId"`
	Role     Role      `json:"role"`
	Nickname string    `json:"nickname"`
	JoinedAt time.Time `json:"joinedAt"`
}

// FamilyInfo is the flattened family+membership view kept in the family
// membership store and shown in family pickers.
type FamilyInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	Nickname string    `json:"nickname"`
	JoinedAt time.Time `json:"joinedAt"`
}

// UserFamily pairs a family with the caller's membership in it, as
// returned by GET /v1/users/me/families.
type UserFamily struct {
	Family Family       `json:"family"`
	Member FamilyMember `json:"member"`
}

// Info flattens the pair into the store representation.
func (uf UserFamily) Info() FamilyInfo {
	return FamilyInfo{
		ID:       uf.Family.ID,
		Name:     uf.Family.Name,
		Role:     uf.Member.Role,
		Nickname: uf.Member.Nickname,
		JoinedAt: uf.Member.JoinedAt,
	}
}
