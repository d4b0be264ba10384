package services

import (
	"context"
	"io"
	"sort"

	"posyandu-backend/internal/models"
	"posyandu-backend/internal/repository"
)

// fakeStore implements MemberStore, DashboardStore and AdminStore in memory
// and records every call in order.
type fakeStore struct {
	guardians map[uint64]*models.Guardian
	children  []models.Child
	visits    []models.VisitRecord
	admins    map[string]*models.Admin

	failOn  map[string]error
	calls   []string
	updates []models.GuardianUpdate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		guardians: map[uint64]*models.Guardian{},
		admins:    map[string]*models.Admin{},
		failOn:    map[string]error{},
	}
}

func (f *fakeStore) record(op string) error {
	f.calls = append(f.calls, op)
	return f.failOn[op]
}

func (f *fakeStore) ListGuardians(ctx context.Context) ([]models.Guardian, error) {
	if err := f.record("ListGuardians"); err != nil {
		return nil, err
	}
	out := make([]models.Guardian, 0, len(f.guardians))
	for _, g := range f.guardians {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetGuardian(ctx context.Context, id uint64) (*models.Guardian, error) {
	if err := f.record("GetGuardian"); err != nil {
		return nil, err
	}
	g, ok := f.guardians[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeStore) UpdateGuardian(ctx context.Context, id uint64, u models.GuardianUpdate) error {
	if err := f.record("UpdateGuardian"); err != nil {
		return err
	}
	f.updates = append(f.updates, u)
	return nil
}

func (f *fakeStore) DeleteGuardian(ctx context.Context, id uint64) error {
	if err := f.record("DeleteGuardian"); err != nil {
		return err
	}
	delete(f.guardians, id)
	return nil
}

func (f *fakeStore) ChildrenByGuardian(ctx context.Context, guardianID uint64) ([]models.Child, error) {
	if err := f.record("ChildrenByGuardian"); err != nil {
		return nil, err
	}
	var out []models.Child
	for _, c := range f.children {
		if c.GuardianID == guardianID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteChild(ctx context.Context, id uint64) error {
	if err := f.record("DeleteChild"); err != nil {
		return err
	}
	kept := f.children[:0]
	for _, c := range f.children {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.children = kept
	return nil
}

func (f *fakeStore) CountGuardiansByAdmin(ctx context.Context, adminID uint64) (int64, error) {
	if err := f.record("CountGuardiansByAdmin"); err != nil {
		return 0, err
	}
	var n int64
	for _, g := range f.guardians {
		if g.AdminID == adminID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ChildrenByAdmin(ctx context.Context, adminID uint64) ([]models.Child, error) {
	if err := f.record("ChildrenByAdmin"); err != nil {
		return nil, err
	}
	var out []models.Child
	for _, c := range f.children {
		if c.AdminID == adminID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ActivitiesByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error) {
	if err := f.record("ActivitiesByChildren"); err != nil {
		return nil, err
	}
	out := f.visitsOf(childIDs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DibuatPada.After(out[j].DibuatPada) })
	return out, nil
}

func (f *fakeStore) GrowthByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error) {
	if err := f.record("GrowthByChildren"); err != nil {
		return nil, err
	}
	return f.visitsOf(childIDs), nil
}

func (f *fakeStore) visitsOf(childIDs []uint64) []models.VisitRecord {
	want := map[uint64]bool{}
	for _, id := range childIDs {
		want[id] = true
	}
	var out []models.VisitRecord
	for _, v := range f.visits {
		if want[v.ChildID] {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeStore) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if err := f.record("AdminByEmail"); err != nil {
		return nil, err
	}
	a, ok := f.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) mutations() []string {
	var out []string
	for _, c := range f.calls {
		switch c {
		case "UpdateGuardian", "DeleteGuardian", "DeleteChild":
			out = append(out, c)
		}
	}
	return out
}

type upload struct {
	path        string
	contentType string
	data        []byte
}

// fakeObjects is an ObjectStore that records uploads and removals
type fakeObjects struct {
	uploads   []upload
	removed   []string
	uploadErr error
	removeErr map[string]error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{removeErr: map[string]error{}}
}

func (f *fakeObjects) Upload(ctx context.Context, objectPath string, body io.Reader, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.uploads = append(f.uploads, upload{path: objectPath, contentType: contentType, data: data})
	return nil
}

func (f *fakeObjects) Remove(ctx context.Context, objectPaths ...string) error {
	for _, p := range objectPaths {
		if err := f.removeErr[p]; err != nil {
			return err
		}
	}
	f.removed = append(f.removed, objectPaths...)
	return nil
}

func (f *fakeObjects) PublicURL(objectPath string) string {
	return "https://cdn.test/images/" + objectPath
}

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }
