package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nadocloud/nadoquest/internal/client/api"
	"github.com/nadocloud/nadoquest/internal/client/models"
)

// Quests lists the active family's quests, optionally filtered by status
// ("assigned", "submitted", "approved", "rejected", "expired").
func (a *App) Quests(ctx context.Context, status string) error {
	if !a.requireAuth("/quests") {
		return nil
	}
	familyID, err := a.currentFamilyID()
	if err != nil {
		return err
	}

	var opts *api.ListQuestsOptions
	if status != "" {
		opts = &api.ListQuestsOptions{Status: models.QuestStatus(strings.ToUpper(status))}
	}

	page, err := a.client.Quests.List(ctx, familyID, opts)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(page.Data) == 0 {
		printlnFn("No quests found")
		return nil
	}

	for _, q := range page.Data {
		printlnFn(fmt.Sprintf("%s  [%s] %s (%d pts, due %s)",
			q.ID, q.Status, q.Title, q.Points, q.DueAt.Format("2006-01-02")))
	}
	if page.HasMore {
		printlnFn(fmt.Sprintf("Showing %d of %d", len(page.Data), page.Total))
	}
	return nil
}

// AddQuest interactively collects quest fields and creates the quest in
// the active family.
func (a *App) AddQuest(ctx context.Context) error {
	if !a.requireAuth("/quests") {
		return nil
	}
	familyID, err := a.currentFamilyID()
	if err != nil {
		return err
	}

	assignee, err := getSimpleText(a.reader, "Assign to (userId, see 'members')", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}
	points, err := a.promptInt("Points reward")
	if err != nil {
		return err
	}
	days, err := a.promptInt("Due in (days)")
	if err != nil {
		return err
	}

	quest, err := a.client.Quests.Create(ctx, familyID, api.CreateQuestRequest{
		AssignedToUserID: assignee,
		Title:            title,
		Description:      description,
		Points:           points,
		DueAt:            time.Now().AddDate(0, 0, days),
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Created quest", quest.ID)
	return nil
}

// SubmitProof uploads a proof photo and attaches it to the quest.
func (a *App) SubmitProof(ctx context.Context, questID string) error {
	if !a.requireAuth("/quests") {
		return nil
	}

	path, err := getSimpleText(a.reader, "Path to proof photo", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.uploadFile(ctx, path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	proof, err := a.client.Quests.SubmitProof(ctx, questID, api.SubmitProofRequest{
		MediaID: res.Key,
		Note:    note,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Submitted proof", proof.ID)
	return nil
}

// Approve accepts a submitted quest, awarding its points.
func (a *App) Approve(ctx context.Context, questID string) error {
	if !a.requireAuth("/proofs/pending") {
		return nil
	}

	quest, err := a.client.Quests.Approve(ctx, questID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Approved %q, %d points awarded", quest.Title, quest.Points))
	return nil
}

// Reject declines a submitted quest with a reason.
func (a *App) Reject(ctx context.Context, questID string) error {
	if !a.requireAuth("/proofs/pending") {
		return nil
	}

	reason, err := getSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}

	quest, err := a.client.Quests.Reject(ctx, questID, api.RejectQuestRequest{Reason: reason})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Rejected %q", quest.Title))
	return nil
}

// Points shows a member's point balance in the active family. With an
// empty userID the signed-in user's balance is shown.
func (a *App) Points(ctx context.Context, userID string) error {
	if !a.requireAuth("/points") {
		return nil
	}
	familyID, err := a.currentFamilyID()
	if err != nil {
		return err
	}

	if userID == "" {
		u := a.sessions.User()
		if u == nil {
			return nil
		}
		userID = u.ID
	}

	pts, err := a.client.Points.GetUserPoints(ctx, familyID, userID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("%s has %d points", pts.UserID, pts.TotalPoints))
	return nil
}

func (a *App) promptInt(prompt string) (int, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		log.Printf("not a number: %q", text)
		return 0, err
	}
	return n, nil
}
