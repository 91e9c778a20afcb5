package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nadocloud/nadoquest/internal/client/models"
)

// InvitationAPI groups the invitation-by-code endpoints.
type InvitationAPI struct {
	c *Client
}

// Get fetches invitation details by its code.
func (i *InvitationAPI) Get(ctx context.Context, code string) (models.InvitationInfo, error) {
	var inv models.InvitationInfo
	err := i.c.doJSON(ctx, http.MethodGet, "/invitations/"+url.PathEscape(code), nil, &inv)
	return inv, err
}

type AcceptInvitationResponse struct {
	Message  string `json:"message"`
	FamilyID string `json:"familyId"`
}

// Accept joins the calling user to the invitation's family.
func (i *InvitationAPI) Accept(ctx context.Context, code string) (AcceptInvitationResponse, error) {
	var resp AcceptInvitationResponse
	err := i.c.doJSON(ctx, http.MethodPost, "/invitations/"+url.PathEscape(code)+"/accept", nil, &resp)
	return resp, err
}
