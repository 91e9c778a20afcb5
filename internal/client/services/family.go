package services

import (
	"context"

	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/client/state"
	"github.com/nadocloud/nadoquest/internal/logging"
)

// FamilyAPI is the slice of the API client the provider needs.
type FamilyAPI interface {
	ListMine(ctx context.Context) ([]models.UserFamily, error)
}

// FamilyProvider fetches the user's family memberships and populates the
// family store. Refresh is expected after authentication becomes true;
// there is no interval re-fetch and no cancellation of an in-flight
// refresh, so overlapping calls resolve last-writer-wins.
type FamilyProvider struct {
	api      FamilyAPI
	sessions *state.SessionStore
	families *state.FamilyStore
	log      logging.Logger
}

func NewFamilyProvider(api FamilyAPI, sessions *state.SessionStore, families *state.FamilyStore, log logging.Logger) *FamilyProvider {
	return &FamilyProvider{api: api, sessions: sessions, families: families, log: log}
}

// Refresh populates the family store from the backend. It is a no-op
// while unauthenticated.
func (p *FamilyProvider) Refresh(ctx context.Context) error {
	if !p.sessions.IsAuthenticated() {
		return nil
	}

	mine, err := p.api.ListMine(ctx)
	if err != nil {
		return err
	}

	infos := make([]models.FamilyInfo, 0, len(mine))
	for _, uf := range mine {
		infos = append(infos, uf.Info())
	}

	if err := p.families.SetFamilies(ctx, infos); err != nil {
		return err
	}

	p.log.Debug(ctx, "families refreshed", "count", len(infos), "current", p.families.CurrentFamilyID())
	return nil
}
