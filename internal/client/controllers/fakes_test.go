package controllers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/client/repositories/fundingcache"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewDefault(slog.LevelError)
}

type fakeFundingAPI struct {
	mu sync.Mutex

	Items   []models.FundingOpportunity
	Options *models.FilterOptions
	Err     error

	ListCalls   int
	LastFilters map[string]string
}

func (f *fakeFundingAPI) List(_ context.Context, filters map[string]string) ([]models.FundingOpportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	f.LastFilters = filters
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Items, nil
}

func (f *fakeFundingAPI) GetByID(_ context.Context, fundingID string) (*models.FundingOpportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Items {
		if f.Items[i].FundingID == fundingID {
			item := f.Items[i]
			return &item, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeFundingAPI) FilterOptions(context.Context) (*models.FilterOptions, error) {
	return f.Options, f.Err
}

type fakeApplicationsAPI struct {
	mu sync.Mutex

	Items []models.Application
	Err   error

	DeleteCalls   int
	LastDeletedID string
}

func (f *fakeApplicationsAPI) List(context.Context) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Items, nil
}

func (f *fakeApplicationsAPI) GetByID(_ context.Context, applicationID string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Items {
		if f.Items[i].ApplicationID == applicationID {
			app := f.Items[i]
			return &app, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeApplicationsAPI) Create(_ context.Context, req api.CreateApplicationRequest) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app := models.Application{
		ApplicationID: "app-new",
		FundingID:     req.FundingID,
		Title:         req.Title,
		Status:        models.StatusEntwurf,
	}
	f.Items = append(f.Items, app)
	return &app, nil
}

func (f *fakeApplicationsAPI) Update(_ context.Context, applicationID string, _ api.UpdateApplicationRequest) (*models.Application, error) {
	return f.GetByID(context.Background(), applicationID)
}

func (f *fakeApplicationsAPI) Delete(_ context.Context, applicationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.LastDeletedID = applicationID
	return f.Err
}

type fakeDraftsAPI struct {
	mu sync.Mutex

	Drafts      []models.ApplicationDraft
	Generated   *models.ApplicationDraft
	GenerateErr error
	ListErr     error

	GenerateCalls int
	LastGenerate  api.GenerateDraftRequest
	LastFeedback  string

	// GenerateHook, when set, runs inside Generate before it returns.
	GenerateHook func()
}

func (f *fakeDraftsAPI) Generate(_ context.Context, req api.GenerateDraftRequest) (*models.ApplicationDraft, error) {
	f.mu.Lock()
	f.GenerateCalls++
	f.LastGenerate = req
	hook := f.GenerateHook
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GenerateErr != nil {
		return nil, f.GenerateErr
	}
	if f.Generated != nil {
		f.Drafts = append([]models.ApplicationDraft{*f.Generated}, f.Drafts...)
	}
	return f.Generated, nil
}

func (f *fakeDraftsAPI) GetForApplication(_ context.Context, applicationID string) ([]models.ApplicationDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []models.ApplicationDraft
	for _, d := range f.Drafts {
		if d.ApplicationID == applicationID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDraftsAPI) SubmitFeedback(_ context.Context, draftID, feedback string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastFeedback = draftID + ":" + feedback
	return nil
}

type fakeSearchAPI struct {
	mu sync.Mutex

	Err error

	SearchCalls []api.SearchRequest
	QuickCalls  []string

	// Respond maps a query to its response; unmapped queries get an
	// empty envelope echoing the query.
	Respond map[string]*models.SearchResponse

	// Hook, when set, runs per call after the request is recorded and
	// before the response is returned.
	Hook func(query string)
}

func (f *fakeSearchAPI) respond(query string) (*models.SearchResponse, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if resp, ok := f.Respond[query]; ok {
		return resp, nil
	}
	return &models.SearchResponse{Query: query}, nil
}

func (f *fakeSearchAPI) Search(_ context.Context, req api.SearchRequest) (*models.SearchResponse, error) {
	f.mu.Lock()
	f.SearchCalls = append(f.SearchCalls, req)
	hook := f.Hook
	f.mu.Unlock()

	if hook != nil {
		hook(req.Query)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.respond(req.Query)
}

func (f *fakeSearchAPI) QuickSearch(_ context.Context, query string, _ int) (*models.SearchResponse, error) {
	f.mu.Lock()
	f.QuickCalls = append(f.QuickCalls, query)
	hook := f.Hook
	f.mu.Unlock()

	if hook != nil {
		hook(query)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.respond(query)
}

func (f *fakeSearchAPI) searchCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SearchCalls) + len(f.QuickCalls)
}

type fakeCache struct {
	mu sync.Mutex

	Items   []models.FundingOpportunity
	ListErr error

	ReplaceCalls int
}

func (f *fakeCache) ReplaceAll(_ context.Context, items []models.FundingOpportunity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ReplaceCalls++
	f.Items = append([]models.FundingOpportunity(nil), items...)
	return nil
}

func (f *fakeCache) List(context.Context) ([]models.FundingOpportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Items, nil
}

func (f *fakeCache) Get(_ context.Context, fundingID string) (*models.FundingOpportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Items {
		if f.Items[i].FundingID == fundingID {
			item := f.Items[i]
			return &item, nil
		}
	}
	return nil, fundingcache.ErrNotCached
}
