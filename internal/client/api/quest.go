package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nadocloud/nadoquest/internal/client/models"
)

// QuestAPI groups the quest lifecycle endpoints.
type QuestAPI struct {
	c *Client
}

// ListQuestsOptions narrows a quest listing. Nil pointer fields are not
// sent, letting the server apply its own defaults.
type ListQuestsOptions struct {
	Limit  *int
	Offset *int
	Status models.QuestStatus // empty means no status filter
}

// Int is a convenience for building ListQuestsOptions literals.
func Int(n int) *int { return &n }

// QuestPage is one page of a quest listing. HasMore indicates pages exist
// beyond offset+len(Data).
type QuestPage struct {
	Data    []models.Quest `json:"data"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	HasMore bool           `json:"hasMore"`
}

// List fetches quests for a family. opts may be nil.
func (q *QuestAPI) List(ctx context.Context, familyID string, opts *ListQuestsOptions) (QuestPage, error) {
	path := "/v1/families/" + url.PathEscape(familyID) + "/quests"

	if opts != nil {
		query := url.Values{}
		if opts.Limit != nil {
			query.Set("limit", strconv.Itoa(*opts.Limit))
		}
		if opts.Offset != nil {
			query.Set("offset", strconv.Itoa(*opts.Offset))
		}
		if opts.Status != "" {
			query.Set("status", string(opts.Status))
		}
		if len(query) > 0 {
			path += "?" + query.Encode()
		}
	}

	var page QuestPage
	err := q.c.doJSON(ctx, http.MethodGet, path, nil, &page)
	return page, err
}

type CreateQuestRequest struct {
	AssignedToUserID string    `json:"assignedToUserId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Points           int       `json:"points"`
	DueAt            time.Time `json:"dueAt"`
}

func (q *QuestAPI) Create(ctx context.Context, familyID string, req CreateQuestRequest) (models.Quest, error) {
	var quest models.Quest
	err := q.c.doJSON(ctx, http.MethodPost, "/v1/families/"+url.PathEscape(familyID)+"/quests", req, &quest)
	return quest, err
}

type SubmitProofRequest struct {
	MediaID string `json:"mediaId"`
	Note    string `json:"note,omitempty"`
}

// SubmitProof attaches a completion proof to a quest.
func (q *QuestAPI) SubmitProof(ctx context.Context, questID string, req SubmitProofRequest) (models.QuestProof, error) {
	var proof models.QuestProof
	err := q.c.doJSON(ctx, http.MethodPost, "/v1/quests/"+url.PathEscape(questID)+"/proofs", req, &proof)
	return proof, err
}

// Approve accepts a submitted proof, awarding the quest's points.
func (q *QuestAPI) Approve(ctx context.Context, questID string) (models.Quest, error) {
	var quest models.Quest
	err := q.c.doJSON(ctx, http.MethodPut, "/v1/quests/"+url.PathEscape(questID)+"/approve", nil, &quest)
	return quest, err
}

type RejectQuestRequest struct {
	Reason string `json:"reason"`
}

// Reject declines a submitted proof with a reason.
func (q *QuestAPI) Reject(ctx context.Context, questID string, req RejectQuestRequest) (models.Quest, error) {
	var quest models.Quest
	err := q.c.doJSON(ctx, http.MethodPut, "/v1/quests/"+url.PathEscape(questID)+"/reject", req, &quest)
	return quest, err
}
