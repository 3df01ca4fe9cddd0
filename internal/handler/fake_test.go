package handler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/abhishek622/hirewizard/internal/groq"
	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
)

type fakeRepo struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*model.User
	jobs       []model.Job
	rounds     []model.Round
	interviews map[uuid.UUID]*model.Interview
	drafts     map[uuid.UUID]*model.InterviewDraft
	questions  map[uuid.UUID][]model.Question
	statuses   map[uuid.UUID][]model.ProcessStatus
	createErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:      map[uuid.UUID]*model.User{},
		interviews: map[uuid.UUID]*model.Interview{},
		drafts:     map[uuid.UUID]*model.InterviewDraft{},
		questions:  map[uuid.UUID][]model.Question{},
		statuses:   map[uuid.UUID][]model.ProcessStatus{},
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrAlreadyExists
		}
	}
	u.UserID = uuid.New()
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	cp := *u
	f.users[u.UserID] = &cp
	return nil
}

func (f *fakeRepo) InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	u := &model.User{Name: name, Email: email, Role: role, Status: model.UserStatusInvited}
	if err := f.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) ListInterviewers(_ context.Context, limit, offset int, search string) ([]model.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []model.User
	for _, u := range f.users {
		if u.Role == model.UserRoleInterviewer && strings.Contains(u.Name, search) {
			all = append(all, *u)
		}
	}
	return window(all, limit, offset), len(all), nil
}

func (f *fakeRepo) ListJobs(_ context.Context, ownerID uuid.UUID, limit, offset int, search string) ([]model.JobListItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []model.JobListItem
	for _, j := range f.jobs {
		if j.OwnerID == ownerID && strings.Contains(strings.ToLower(j.Title), strings.ToLower(search)) {
			all = append(all, model.JobListItem{JobID: j.JobID, Title: j.Title, Slug: j.Slug})
		}
	}
	return window(all, limit, offset), len(all), nil
}

func (f *fakeRepo) GetJob(_ context.Context, ownerID, jobID uuid.UUID) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.JobID == jobID && j.OwnerID == ownerID {
			cp := j
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) ListRounds(_ context.Context, _, jobID uuid.UUID) ([]model.Round, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Round{}
	for _, r := range f.rounds {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateInterview(_ context.Context, d *model.InterviewDraft) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	if d.NewJob != nil {
		d.NewJob.JobID = uuid.New()
		f.jobs = append(f.jobs, *d.NewJob)
		d.NewRound.JobID, d.NewRound.RoundID = d.NewJob.JobID, uuid.New()
		f.rounds = append(f.rounds, *d.NewRound)
	}
	id := uuid.New()
	f.drafts[id] = d
	f.interviews[id] = &model.Interview{InterviewID: id, OwnerID: d.OwnerID, ProcessStatus: model.ProcessStatusQueued}
	for i, q := range d.CustomQuestions {
		f.questions[id] = append(f.questions[id], model.Question{InterviewID: id, Question: q, Type: model.QuestionTypeCustom, Position: i})
	}
	return id, nil
}

func (f *fakeRepo) GetInterview(_ context.Context, ownerID, id uuid.UUID) (*model.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, ok := f.interviews[id]; ok && i.OwnerID == ownerID {
		cp := *i
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) ListInterviews(_ context.Context, ownerID uuid.UUID, limit, offset int, _ string) ([]model.InterviewListItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []model.InterviewListItem
	for _, i := range f.interviews {
		if i.OwnerID == ownerID {
			all = append(all, model.InterviewListItem{InterviewID: i.InterviewID, ProcessStatus: i.ProcessStatus})
		}
	}
	return window(all, limit, offset), len(all), nil
}

func (f *fakeRepo) UpdateInterviewStatus(_ context.Context, id uuid.UUID, status model.ProcessStatus, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.interviews[id]
	if !ok {
		return repository.ErrNotFound
	}
	i.ProcessStatus = status
	f.statuses[id] = append(f.statuses[id], status)
	return nil
}

func (f *fakeRepo) ListQuestions(_ context.Context, id uuid.UUID) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Question{}, f.questions[id]...), nil
}

func (f *fakeRepo) CreateQuestions(_ context.Context, id uuid.UUID, texts []string, qType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := len(f.questions[id])
	for i, t := range texts {
		f.questions[id] = append(f.questions[id], model.Question{InterviewID: id, Question: t, Type: qType, Position: next + i})
	}
	return nil
}

func (f *fakeRepo) ListApplicants(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _, _ int, _ string) ([]model.Applicant, int, error) {
	return []model.Applicant{}, 0, nil
}

func window[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

type fakeGenerator struct {
	mu   sync.Mutex
	reqs []groq.GenerateRequest
	err  error
}

func (g *fakeGenerator) GenerateQuestions(_ context.Context, req groq.GenerateRequest) ([]groq.GeneratedQuestion, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	if g.err != nil {
		return nil, g.err
	}
	out := make([]groq.GeneratedQuestion, req.Count)
	for i := range out {
		out[i] = groq.GeneratedQuestion{Question: "generated " + req.JobTitle}
	}
	return out, nil
}

type fakeFetcher struct {
	posting *model.JobPosting
	err     error
}

func (f *fakeFetcher) FetchJobPosting(_ context.Context, rawURL, _ string) (*model.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := *f.posting
	p.URL = rawURL
	return &p, nil
}

var errBoom = errors.New("boom")
