package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nadocloud/nadoquest/internal/client/api"
	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/common"
)

// Families refreshes memberships from the backend and lists them, marking
// the active family with an asterisk.
func (a *App) Families(ctx context.Context) error {
	if !a.requireAuth("/family") {
		return nil
	}

	if err := a.provider.Refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	families := a.families.Families()
	if len(families) == 0 {
		printlnFn("You are not a member of any family yet. Use 'newfamily' or 'accept <code>'.")
		return nil
	}

	current := a.families.CurrentFamilyID()
	for _, f := range families {
		marker := " "
		if f.ID == current {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s (%s)", marker, f.ID, f.Name, f.Role))
	}
	return nil
}

// UseFamily selects the active family. The id is stored as given; if it
// does not match any membership the selection simply resolves to nothing
// until memberships catch up.
func (a *App) UseFamily(ctx context.Context, id string) error {
	if !a.requireAuth("/family") {
		return nil
	}

	if err := a.families.SetCurrentFamily(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if fam := a.families.CurrentFamily(); fam != nil {
		printlnFn("Active family:", fam.Name)
	} else {
		printlnFn("Selected family", id, "is not among your memberships yet")
	}
	return nil
}

// NewFamily prompts for a name, creates the family, and refreshes
// memberships so the new family shows up immediately.
func (a *App) NewFamily(ctx context.Context) error {
	if !a.requireAuth("/family") {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter family name", os.Stdout)
	if err != nil {
		return err
	}

	fam, err := a.client.Families.Create(ctx, api.CreateFamilyRequest{Name: name})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Created family", fam.Name, "with id", fam.ID)
	if err := a.provider.Refresh(ctx); err != nil {
		log.Printf("could not refresh families: %v", err)
	}
	return nil
}

// Members lists the members of the active family.
func (a *App) Members(ctx context.Context) error {
	if !a.requireAuth("/family") {
		return nil
	}
	familyID, err := a.currentFamilyID()
	if err != nil {
		return err
	}

	members, err := a.client.Families.ListMembers(ctx, familyID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, m := range members {
		name := m.Nickname
		if name == "" {
			name = m.UserID
		}
		printlnFn(fmt.Sprintf("%s  %s (%s)", m.UserID, name, m.Role))
	}
	return nil
}

// Invite creates an invitation for the active family and prints its code.
func (a *App) Invite(ctx context.Context) error {
	if !a.requireAuth("/family") {
		return nil
	}
	familyID, err := a.currentFamilyID()
	if err != nil {
		return err
	}

	roleText, err := getSimpleText(a.reader, "Enter role (parent/child)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.RoleChild
	if strings.EqualFold(roleText, "parent") {
		role = models.RoleParent
	}

	inv, err := a.client.Families.CreateInvitation(ctx, familyID, api.CreateInvitationRequest{Role: role})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Invitation code:", inv.Code)
	printlnFn("Expires:", inv.ExpiresAt.Format("2006-01-02 15:04:05"))
	return nil
}

// ShowInvitation previews an invitation by code. This works without a
// session so an invitee can inspect a code before registering.
func (a *App) ShowInvitation(ctx context.Context, code string) error {
	inv, err := a.client.Invitations.Get(ctx, code)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Invitation to join %s as %s, invited by %s", inv.FamilyName, inv.Role, inv.InvitedBy))
	if inv.IsExpired() {
		printlnFn("This invitation has expired")
	} else {
		printlnFn("Expires:", inv.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// AcceptInvitation joins the family behind the code and refreshes
// memberships. The joined family becomes active when none was selected.
func (a *App) AcceptInvitation(ctx context.Context, code string) error {
	if !a.requireAuth("/invite") {
		return nil
	}

	resp, err := a.client.Invitations.Accept(ctx, code)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if resp.Message != "" {
		printlnFn(resp.Message)
	}
	if err := a.provider.Refresh(ctx); err != nil {
		log.Printf("could not refresh families: %v", err)
	}
	return nil
}

// currentFamilyID resolves the active family, reporting to the user when
// none is selected.
func (a *App) currentFamilyID() (string, error) {
	id := a.families.CurrentFamilyID()
	if id == "" {
		printlnFn("No family selected. Use 'families' and 'use <familyId>'.")
		return "", common.ErrNoFamilySelected
	}
	return id, nil
}
