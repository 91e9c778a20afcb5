package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadocloud/nadoquest/internal/client/models"
)

// questBackend is an in-memory double for the quest endpoints: create
// assigns ids and ASSIGNED status, list applies status filter and paging,
// proofs/approve/reject flip statuses the way the server does.
type questBackend struct {
	quests []models.Quest
}

func (b *questBackend) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/families/{familyID}/quests", func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		now := time.Now().UTC()
		quest := models.Quest{
			ID:               uuid.NewString(),
			FamilyID:         r.PathValue("familyID"),
			AssignedToUserID: req.AssignedToUserID,
			CreatedByUserID:  uuid.NewString(),
			Title:            req.Title,
			Description:      req.Description,
			Points:           req.Points,
			DueAt:            req.DueAt,
			Status:           models.QuestStatusAssigned,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		b.quests = append(b.quests, quest)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(quest)
	})

	mux.HandleFunc("GET /v1/families/{familyID}/quests", func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		limit := 20
		if s := r.URL.Query().Get("limit"); s != "" {
			limit, _ = strconv.Atoi(s)
		}
		offset := 0
		if s := r.URL.Query().Get("offset"); s != "" {
			offset, _ = strconv.Atoi(s)
		}

		filtered := make([]models.Quest, 0, len(b.quests))
		for _, q := range b.quests {
			if q.FamilyID != r.PathValue("familyID") {
				continue
			}
			if status != "" && string(q.Status) != status {
				continue
			}
			filtered = append(filtered, q)
		}

		total := len(filtered)
		end := offset + limit
		if offset > total {
			offset = total
		}
		if end > total {
			end = total
		}
		page := filtered[offset:end]

		_ = json.NewEncoder(w).Encode(QuestPage{
			Data:    page,
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(page) < total,
		})
	})

	mux.HandleFunc("POST /v1/quests/{questID}/proofs", func(w http.ResponseWriter, r *http.Request) {
		var req SubmitProofRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		id := r.PathValue("questID")
		for i := range b.quests {
			if b.quests[i].ID == id {
				b.quests[i].Status = models.QuestStatusSubmitted
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(models.QuestProof{
					ID:        uuid.NewString(),
					QuestID:   id,
					MediaID:   req.MediaID,
					Note:      req.Note,
					CreatedAt: time.Now().UTC(),
				})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "quest not found"})
	})

	transition := func(to models.QuestStatus) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("questID")
			for i := range b.quests {
				if b.quests[i].ID == id {
					b.quests[i].Status = to
					_ = json.NewEncoder(w).Encode(b.quests[i])
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "quest not found"})
		}
	}
	mux.HandleFunc("PUT /v1/quests/{questID}/approve", transition(models.QuestStatusApproved))
	mux.HandleFunc("PUT /v1/quests/{questID}/reject", transition(models.QuestStatusRejected))

	return mux
}

func TestQuestAPI_CreateThenListRoundTrip(t *testing.T) {
	backend := &questBackend{}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	ctx := context.Background()
	familyID := uuid.NewString()
	due := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)

	created, err := c.Quests.Create(ctx, familyID, CreateQuestRequest{
		AssignedToUserID: "kid-1",
		Title:            "Take out the trash",
		Description:      "Both bins, before dinner",
		Points:           15,
		DueAt:            due,
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuestStatusAssigned, created.Status)

	page, err := c.Quests.List(ctx, familyID, nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	got := page.Data[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Take out the trash", got.Title)
	assert.Equal(t, 15, got.Points)
	assert.True(t, due.Equal(got.DueAt), "dueAt must round-trip")
	assert.Equal(t, models.QuestStatusAssigned, got.Status)
}

func TestQuestAPI_List_OmitsUnsetParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(QuestPage{})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	ctx := context.Background()

	t.Run("nil options", func(t *testing.T) {
		_, err := c.Quests.List(ctx, "f1", nil)
		require.NoError(t, err)
		assert.Empty(t, gotQuery)
	})

	t.Run("empty options", func(t *testing.T) {
		_, err := c.Quests.List(ctx, "f1", &ListQuestsOptions{})
		require.NoError(t, err)
		assert.Empty(t, gotQuery)
	})

	t.Run("all options set", func(t *testing.T) {
		_, err := c.Quests.List(ctx, "f1", &ListQuestsOptions{
			Limit:  Int(10),
			Offset: Int(0),
			Status: models.QuestStatusSubmitted,
		})
		require.NoError(t, err)
		assert.Contains(t, gotQuery, "limit=10")
		assert.Contains(t, gotQuery, "offset=0", "explicit zero offset must be sent")
		assert.Contains(t, gotQuery, "status=SUBMITTED")
	})
}

func TestQuestAPI_List_StatusFilterAndPaging(t *testing.T) {
	backend := &questBackend{}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	ctx := context.Background()
	familyID := "fam-1"

	for i := 0; i < 5; i++ {
		_, err := c.Quests.Create(ctx, familyID, CreateQuestRequest{
			AssignedToUserID: "kid-1",
			Title:            "chore " + strconv.Itoa(i),
			Points:           5,
			DueAt:            time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
	}

	page, err := c.Quests.List(ctx, familyID, &ListQuestsOptions{Limit: Int(2), Offset: Int(2)})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Total)
	assert.True(t, page.HasMore)

	last, err := c.Quests.List(ctx, familyID, &ListQuestsOptions{Limit: Int(2), Offset: Int(4)})
	require.NoError(t, err)
	assert.Len(t, last.Data, 1)
	assert.False(t, last.HasMore)

	none, err := c.Quests.List(ctx, familyID, &ListQuestsOptions{Status: models.QuestStatusApproved})
	require.NoError(t, err)
	assert.Empty(t, none.Data)
}

func TestQuestAPI_ProofLifecycle(t *testing.T) {
	backend := &questBackend{}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	ctx := context.Background()

	quest, err := c.Quests.Create(ctx, "fam-1", CreateQuestRequest{
		AssignedToUserID: "kid-1",
		Title:            "Walk the dog",
		Points:           10,
		DueAt:            time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)

	proof, err := c.Quests.SubmitProof(ctx, quest.ID, SubmitProofRequest{MediaID: "m-123", Note: "done!"})
	require.NoError(t, err)
	assert.Equal(t, quest.ID, proof.QuestID)
	assert.Equal(t, "m-123", proof.MediaID)

	approved, err := c.Quests.Approve(ctx, quest.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuestStatusApproved, approved.Status)

	rejected, err := c.Quests.Reject(ctx, quest.ID, RejectQuestRequest{Reason: "blurry photo"})
	require.NoError(t, err)
	assert.Equal(t, models.QuestStatusRejected, rejected.Status)
}

func TestQuestAPI_NotFoundErrors(t *testing.T) {
	backend := &questBackend{}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.Quests.Approve(context.Background(), "missing")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.True(t, strings.Contains(apiErr.Message, "not found"))
}
