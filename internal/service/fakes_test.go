package service

import (
	"context"
	"errors"
	"sync"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/contract"
	"startup-compliance-be/internal/repository/implementation"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var errFakeRepo = errors.New("fake repository failure")

// fakeStore is an in-memory stand-in for the GORM-backed unit of work. It
// interprets the same specification values the real repositories translate to
// SQL, enforces the (user_id, name) uniqueness of checklists, and supports
// snapshot-based rollback so transactional behavior is observable.
type fakeStore struct {
	mu sync.Mutex

	checklists []*entity.Checklist
	items      []*entity.ChecklistItem
	documents  []*entity.Document
	activities []*entity.RecentActivity
	alerts     []*entity.ComplianceAlert

	// failStep makes the named operation fail, e.g. "activity.create".
	failStep string

	begins    int
	commits   int
	rollbacks int

	snapshot *storeSnapshot
}

type storeSnapshot struct {
	checklists []*entity.Checklist
	items      []*entity.ChecklistItem
	documents  []*entity.Document
	activities []*entity.RecentActivity
	alerts     []*entity.ComplianceAlert
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// RepositoryFactory

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return s
}

// UnitOfWork

func (s *fakeStore) Begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begins++
	s.snapshot = &storeSnapshot{
		checklists: append([]*entity.Checklist(nil), s.checklists...),
		items:      append([]*entity.ChecklistItem(nil), s.items...),
		documents:  append([]*entity.Document(nil), s.documents...),
		activities: append([]*entity.RecentActivity(nil), s.activities...),
		alerts:     append([]*entity.ComplianceAlert(nil), s.alerts...),
	}
	return nil
}

func (s *fakeStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commits++
	s.snapshot = nil
	return nil
}

func (s *fakeStore) Rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollbacks++
	if s.snapshot != nil {
		s.checklists = s.snapshot.checklists
		s.items = s.snapshot.items
		s.documents = s.snapshot.documents
		s.activities = s.snapshot.activities
		s.alerts = s.snapshot.alerts
		s.snapshot = nil
	}
	return nil
}

func (s *fakeStore) ChecklistRepository() contract.ChecklistRepository {
	return &fakeChecklistRepo{s: s}
}

func (s *fakeStore) ChecklistItemRepository() contract.ChecklistItemRepository {
	return &fakeChecklistItemRepo{s: s}
}

func (s *fakeStore) DocumentRepository() contract.DocumentRepository {
	return &fakeDocumentRepo{s: s}
}

func (s *fakeStore) RecentActivityRepository() contract.RecentActivityRepository {
	return &fakeRecentActivityRepo{s: s}
}

func (s *fakeStore) ComplianceAlertRepository() contract.ComplianceAlertRepository {
	return &fakeComplianceAlertRepo{s: s}
}

// Specification interpretation

func matchChecklist(c *entity.Checklist, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.OwnedByUser:
			if c.UserId != sp.UserID {
				return false
			}
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.ByName:
			if c.Name != sp.Name {
				return false
			}
		case specification.ByNames:
			found := false
			for _, n := range sp.Names {
				if c.Name == n {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func matchItem(i *entity.ChecklistItem, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if i.Id != sp.ID {
				return false
			}
		case specification.ByChecklistID:
			if i.ChecklistId != sp.ChecklistID {
				return false
			}
		case specification.FilterBy:
			if sp.Field == "completed" && i.Completed != sp.Value.(bool) {
				return false
			}
		}
	}
	return true
}

func matchDocument(d *entity.Document, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.OwnedByUser:
			if d.UserId != sp.UserID {
				return false
			}
		case specification.ByID:
			if d.Id != sp.ID {
				return false
			}
		case specification.NotUploaded:
			if d.FilePath != nil {
				return false
			}
		}
	}
	return true
}

func matchActivity(a *entity.RecentActivity, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.OwnedByUser:
			if a.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func matchAlert(a *entity.ComplianceAlert, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.OwnedByUser:
			if a.UserId != sp.UserID {
				return false
			}
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		case specification.ByStatus:
			if a.Status != sp.Status {
				return false
			}
		}
	}
	return true
}

func paginate[T any](records []T, specs []specification.Specification) []T {
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(records) {
				return nil
			}
			records = records[p.Offset:]
			if p.Limit > 0 && p.Limit < len(records) {
				records = records[:p.Limit]
			}
		}
	}
	return records
}

// Checklist repository

type fakeChecklistRepo struct{ s *fakeStore }

func (r *fakeChecklistRepo) Create(ctx context.Context, checklist *entity.Checklist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStep == "checklist.create" {
		return errFakeRepo
	}
	for _, existing := range r.s.checklists {
		if existing.UserId == checklist.UserId && existing.Name == checklist.Name {
			return implementation.ErrChecklistNameTaken
		}
	}
	r.s.checklists = append(r.s.checklists, checklist)
	return nil
}

func (r *fakeChecklistRepo) Update(ctx context.Context, checklist *entity.Checklist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.checklists {
		if existing.Id == checklist.Id {
			r.s.checklists[i] = checklist
			return nil
		}
	}
	return nil
}

func (r *fakeChecklistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.checklists {
		if existing.Id == id {
			r.s.checklists = append(r.s.checklists[:i], r.s.checklists[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeChecklistRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Checklist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.checklists {
		if matchChecklist(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeChecklistRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Checklist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Checklist
	for _, c := range r.s.checklists {
		if matchChecklist(c, specs) {
			out = append(out, c)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeChecklistRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.s.failStep == "checklist.count" {
		return 0, errFakeRepo
	}
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Checklist item repository

type fakeChecklistItemRepo struct{ s *fakeStore }

func (r *fakeChecklistItemRepo) CreateBatch(ctx context.Context, items []*entity.ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStep == "item.createbatch" {
		return errFakeRepo
	}
	r.s.items = append(r.s.items, items...)
	return nil
}

func (r *fakeChecklistItemRepo) Update(ctx context.Context, item *entity.ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.items {
		if existing.Id == item.Id {
			r.s.items[i] = item
			return nil
		}
	}
	return nil
}

func (r *fakeChecklistItemRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.items {
		if matchItem(i, specs) {
			return i, nil
		}
	}
	return nil, nil
}

func (r *fakeChecklistItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ChecklistItem
	for _, i := range r.s.items {
		if matchItem(i, specs) {
			out = append(out, i)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeChecklistItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Document repository

type fakeDocumentRepo struct{ s *fakeStore }

func (r *fakeDocumentRepo) CreateBatch(ctx context.Context, documents []*entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStep == "document.createbatch" {
		return errFakeRepo
	}
	r.s.documents = append(r.s.documents, documents...)
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, document *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.documents {
		if existing.Id == document.Id {
			r.s.documents[i] = document
			return nil
		}
	}
	return nil
}

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.documents {
		if matchDocument(d, specs) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Document
	for _, d := range r.s.documents {
		if matchDocument(d, specs) {
			out = append(out, d)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Recent activity repository

type fakeRecentActivityRepo struct{ s *fakeStore }

func (r *fakeRecentActivityRepo) Create(ctx context.Context, activity *entity.RecentActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStep == "activity.create" {
		return errFakeRepo
	}
	r.s.activities = append(r.s.activities, activity)
	return nil
}

func (r *fakeRecentActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecentActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.RecentActivity
	for _, a := range r.s.activities {
		if matchActivity(a, specs) {
			out = append(out, a)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeRecentActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Compliance alert repository

type fakeComplianceAlertRepo struct{ s *fakeStore }

func (r *fakeComplianceAlertRepo) Create(ctx context.Context, alert *entity.ComplianceAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failStep == "alert.create" {
		return errFakeRepo
	}
	r.s.alerts = append(r.s.alerts, alert)
	return nil
}

func (r *fakeComplianceAlertRepo) Update(ctx context.Context, alert *entity.ComplianceAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.alerts {
		if existing.Id == alert.Id {
			r.s.alerts[i] = alert
			return nil
		}
	}
	return nil
}

func (r *fakeComplianceAlertRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceAlert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.alerts {
		if matchAlert(a, specs) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeComplianceAlertRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceAlert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ComplianceAlert
	for _, a := range r.s.alerts {
		if matchAlert(a, specs) {
			out = append(out, a)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeComplianceAlertRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// nopLogger discards everything; tests assert on outcomes, not log lines.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
