package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nadocloud/nadoquest/internal/client/models"
)

// PointAPI groups the point balance endpoints.
type PointAPI struct {
	c *Client
}

// GetUserPoints returns a member's balance within one family.
func (p *PointAPI) GetUserPoints(ctx context.Context, familyID, userID string) (models.UserPoints, error) {
	var points models.UserPoints
	path := "/v1/families/" + url.PathEscape(familyID) + "/users/" + url.PathEscape(userID) + "/points"
	err := p.c.doJSON(ctx, http.MethodGet, path, nil, &points)
	return points, err
}
