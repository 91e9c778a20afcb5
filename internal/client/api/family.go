package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nadocloud/nadoquest/internal/client/models"
)

// FamilyAPI groups the family and membership endpoints.
type FamilyAPI struct {
	c *Client
}

type CreateFamilyRequest struct {
	Name string `json:"name"`
}

func (f *FamilyAPI) Create(ctx context.Context, req CreateFamilyRequest) (models.Family, error) {
	var family models.Family
	err := f.c.doJSON(ctx, http.MethodPost, "/v1/families", req, &family)
	return family, err
}

type AddMemberRequest struct {
	UserID   string      `json:"userId"`
	Nickname string      `json:"nickname,omitempty"`
	Role     models.Role `json:"role"`
}

func (f *FamilyAPI) AddMember(ctx context.Context, familyID string, req AddMemberRequest) (models.FamilyMember, error) {
	var member models.FamilyMember
	err := f.c.doJSON(ctx, http.MethodPost, "/v1/families/"+url.PathEscape(familyID)+"/members", req, &member)
	return member, err
}

func (f *FamilyAPI) ListMembers(ctx context.Context, familyID string) ([]models.FamilyMember, error) {
	var resp listEnvelope[models.FamilyMember]
	err := f.c.doJSON(ctx, http.MethodGet, "/v1/families/"+url.PathEscape(familyID)+"/members", nil, &resp)
	return resp.Data, err
}

// ListMine returns the calling user's family memberships.
func (f *FamilyAPI) ListMine(ctx context.Context) ([]models.UserFamily, error) {
	var resp listEnvelope[models.UserFamily]
	err := f.c.doJSON(ctx, http.MethodGet, "/v1/users/me/families", nil, &resp)
	return resp.Data, err
}

type CreateInvitationRequest struct {
	Role models.Role `json:"role"`
}

func (f *FamilyAPI) CreateInvitation(ctx context.Context, familyID string, req CreateInvitationRequest) (models.InvitationInfo, error) {
	var inv models.InvitationInfo
	err := f.c.doJSON(ctx, http.MethodPost, "/v1/families/"+url.PathEscape(familyID)+"/invitations", req, &inv)
	return inv, err
}
