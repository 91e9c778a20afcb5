package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/client/repositories/records"
)

// FamilyNamespace is the persistence namespace of the membership snapshot.
const FamilyNamespace = "quest-family"

// familyRecord is the persisted shape of the membership slice.
type familyRecord struct {
	CurrentFamilyID *string             `json:"currentFamilyId"`
	Families        []models.FamilyInfo `json:"families"`
}

// FamilyStore holds the user's family memberships and the currently
// selected family. Repopulating the list auto-selects the first entry
// only while no selection exists; an existing selection is kept even when
// its id is absent from the new list, in which case CurrentFamily returns
// nil until the caller selects again.
type FamilyStore struct {
	mu        sync.RWMutex
	repo      records.Repository
	currentID string
	families  []models.FamilyInfo
}

// NewFamilyStore builds a store rehydrated from the persisted snapshot.
// A missing or corrupt snapshot yields an empty store.
func NewFamilyStore(ctx context.Context, repo records.Repository) (*FamilyStore, error) {
	f := &FamilyStore{repo: repo}

	raw, err := repo.Get(ctx, FamilyNamespace)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return f, nil
	}

	var rec familyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return f, nil
	}
	if rec.CurrentFamilyID != nil {
		f.currentID = *rec.CurrentFamilyID
	}
	f.families = rec.Families
	return f, nil
}

// SetCurrentFamily selects a family by id. The id is not validated
// against the known list.
func (f *FamilyStore) SetCurrentFamily(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.currentID = id
	return f.save(ctx)
}

// SetFamilies replaces the full membership list. When no selection exists
// yet and the new list is non-empty, the first entry becomes current.
func (f *FamilyStore) SetFamilies(ctx context.Context, families []models.FamilyInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.families = make([]models.FamilyInfo, len(families))
	copy(f.families, families)

	if f.currentID == "" && len(f.families) > 0 {
		f.currentID = f.families[0].ID
	}
	return f.save(ctx)
}

// CurrentFamilyID returns the selected family id ("" when unset).
func (f *FamilyStore) CurrentFamilyID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.currentID
}

// CurrentFamily looks up the selected family in the current list. Returns
// nil when nothing is selected or the selected id is absent.
func (f *FamilyStore) CurrentFamily() *models.FamilyInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for i := range f.families {
		if f.families[i].ID == f.currentID {
			info := f.families[i]
			return &info
		}
	}
	return nil
}

// Families returns a copy of the membership list.
func (f *FamilyStore) Families() []models.FamilyInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]models.FamilyInfo, len(f.families))
	copy(out, f.families)
	return out
}

// save persists the current slice; callers hold the write lock.
func (f *FamilyStore) save(ctx context.Context) error {
	rec := familyRecord{Families: f.families}
	if f.currentID != "" {
		id := f.currentID
		rec.CurrentFamilyID = &id
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return f.repo.Set(ctx, FamilyNamespace, raw)
}
