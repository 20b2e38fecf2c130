package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/urban-report-service/internal/domain"
	"github.com/spec-kit/urban-report-service/internal/events"
	"github.com/spec-kit/urban-report-service/internal/repository"
)

type fakeReportRepo struct {
	reports    map[string]*domain.Report
	nextID     int
	lastFilter repository.ReportFilter
	lastPatch  *repository.ReportPatch
	stats      []domain.CategoryStats
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*domain.Report{}}
}

func (f *fakeReportRepo) Create(_ context.Context, report *domain.Report) error {
	f.nextID++
	report.ID = fmt.Sprintf("report-%d", f.nextID)
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	stored := *report
	f.reports[report.ID] = &stored
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id string) (*domain.Report, error) {
	stored, ok := f.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeReportRepo) List(_ context.Context, filter repository.ReportFilter) ([]domain.Report, error) {
	f.lastFilter = filter
	result := []domain.Report{}
	for _, stored := range f.reports {
		if filter.UserID != nil && stored.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && stored.Status != *filter.Status {
			continue
		}
		if filter.CategoryID != nil && stored.CategoryID != *filter.CategoryID {
			continue
		}
		result = append(result, *stored)
	}
	return result, nil
}

func (f *fakeReportRepo) Update(_ context.Context, id string, patch repository.ReportPatch) error {
	stored, ok := f.reports[id]
	if !ok {
		return pgx.ErrNoRows
	}
	f.lastPatch = &patch
	if patch.Title != nil {
		stored.Title = *patch.Title
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		stored.CategoryID = *patch.CategoryID
	}
	if patch.Status != nil {
		stored.Status = *patch.Status
	}
	if patch.Priority != nil {
		stored.Priority = *patch.Priority
	}
	if patch.AdminNotes != nil {
		stored.AdminNotes = patch.AdminNotes
	}
	if patch.ResolvedAt != nil {
		stored.ResolvedAt = patch.ResolvedAt
	}
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeReportRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.reports[id]; !ok {
		return false, nil
	}
	delete(f.reports, id)
	return true, nil
}

func (f *fakeReportRepo) StatsByCategory(context.Context) ([]domain.CategoryStats, error) {
	return f.stats, nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func newFakeCategoryRepo(ids ...string) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[string]*domain.Category{}}
	for _, id := range ids {
		repo.categories[id] = &domain.Category{ID: id, Name: "category " + id}
	}
	return repo
}

func (f *fakeCategoryRepo) List(context.Context) ([]domain.Category, error) {
	result := []domain.Category{}
	for _, category := range f.categories {
		result = append(result, *category)
	}
	return result, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

type fakeCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*domain.Comment{}}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	f.nextID++
	comment.ID = fmt.Sprintf("comment-%d", f.nextID)
	comment.CreatedAt = time.Now()
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentRepo) ListByReport(_ context.Context, reportID string) ([]domain.Comment, error) {
	result := []domain.Comment{}
	for _, comment := range f.comments {
		if comment.ReportID == reportID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.comments[id]; !ok {
		return false, nil
	}
	delete(f.comments, id)
	return true, nil
}

type fakeUserRepo struct {
	usersByID    map[string]*domain.User
	usersByEmail map[string]*domain.User
	createErr    error
	createCalls  int
	nextID       int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{usersByID: map[string]*domain.User{}, usersByEmail: map[string]*domain.User{}}
	for _, user := range users {
		repo.usersByID[user.ID] = user
		repo.usersByEmail[user.Email] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.usersByID[user.ID] = &stored
	f.usersByEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, patch repository.UserUpdate) error {
	stored, ok := f.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if patch.Email != nil {
		delete(f.usersByEmail, stored.Email)
		stored.Email = *patch.Email
		f.usersByEmail[stored.Email] = stored
	}
	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Phone != nil {
		stored.Phone = *patch.Phone
	}
	if patch.AvatarURL != nil {
		stored.AvatarURL = patch.AvatarURL
	}
	if patch.NotificationsEnabled != nil {
		stored.NotificationsEnabled = *patch.NotificationsEnabled
	}
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	result := []domain.User{}
	for _, user := range f.usersByID {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return false, nil
	}
	delete(f.usersByEmail, user.Email)
	delete(f.usersByID, id)
	return true, nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
