package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/filex"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

var (
	// ErrGenerateInFlight rejects a second generate call while one is
	// still running for this view.
	ErrGenerateInFlight = errors.New("draft generation already in progress")

	// ErrNotDeletable blocks deletion of anything past the entwurf
	// status before a request is even built.
	ErrNotDeletable = errors.New("only draft applications can be deleted")

	ErrEmptyQuery      = errors.New("project description must not be empty")
	ErrNoDraftSelected = errors.New("no draft selected")
	ErrNotLoaded       = errors.New("application not loaded")
)

// ApplicationController drives the application detail view: the
// application itself, its funding opportunity, its draft history, and the
// generate/select/export/feedback lifecycle.
type ApplicationController struct {
	apps    ApplicationsAPI
	funding FundingAPI
	drafts  DraftsAPI
	log     logging.Logger

	mu            sync.Mutex
	application   *models.Application
	opportunity   *models.FundingOpportunity
	draftList     []models.ApplicationDraft
	selected      *models.ApplicationDraft
	showGenerator bool
	generating    bool
}

func NewApplication(apps ApplicationsAPI, funding FundingAPI, drafts DraftsAPI, log logging.Logger) *ApplicationController {
	return &ApplicationController{
		apps:          apps,
		funding:       funding,
		drafts:        drafts,
		log:           log.With("component", "application"),
		showGenerator: true,
	}
}

// Load fetches the application, its funding opportunity, and its drafts.
// The most recent draft is pre-selected; the generator view is shown only
// when no draft exists yet.
func (c *ApplicationController) Load(ctx context.Context, applicationID string) error {
	app, err := c.apps.GetByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("load application %s: %w", applicationID, err)
	}

	var opportunity *models.FundingOpportunity
	if app.FundingID != "" {
		opportunity, err = c.funding.GetByID(ctx, app.FundingID)
		if err != nil {
			return fmt.Errorf("load funding %s: %w", app.FundingID, err)
		}
	}

	draftList, err := c.drafts.GetForApplication(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("load drafts: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.application = app
	c.opportunity = opportunity
	c.draftList = draftList
	if len(draftList) > 0 {
		c.selected = &draftList[0]
		c.showGenerator = false
	} else {
		c.selected = nil
		c.showGenerator = true
	}
	return nil
}

// GenerateDraft requests a new AI draft. Single-flight: while one call is
// running, further calls fail fast with ErrGenerateInFlight. On success
// the draft list is refetched and the new draft becomes selected.
func (c *ApplicationController) GenerateDraft(ctx context.Context, userQuery string) (*models.ApplicationDraft, error) {
	if strings.TrimSpace(userQuery) == "" {
		return nil, ErrEmptyQuery
	}

	c.mu.Lock()
	if c.application == nil {
		c.mu.Unlock()
		return nil, ErrNotLoaded
	}
	if c.generating {
		c.mu.Unlock()
		return nil, ErrGenerateInFlight
	}
	c.generating = true
	applicationID := c.application.ApplicationID
	fundingID := c.application.FundingID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.generating = false
		c.mu.Unlock()
	}()

	draft, err := c.drafts.Generate(ctx, api.GenerateDraftRequest{
		ApplicationID: applicationID,
		FundingID:     fundingID,
		UserQuery:     userQuery,
	})
	if err != nil {
		return nil, fmt.Errorf("generate draft: %w", err)
	}

	draftList, err := c.drafts.GetForApplication(ctx, applicationID)
	if err != nil {
		// The draft exists server-side; keep it selected locally.
		c.log.Warn(ctx, "draft list refetch failed", "error", err)
		draftList = []models.ApplicationDraft{*draft}
	}

	c.mu.Lock()
	c.draftList = draftList
	c.selected = draft
	c.showGenerator = false
	c.mu.Unlock()

	return draft, nil
}

// SelectDraft switches the detail pane to another draft from the history.
func (c *ApplicationController) SelectDraft(draftID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.draftList {
		if c.draftList[i].DraftID == draftID {
			c.selected = &c.draftList[i]
			c.showGenerator = false
			return nil
		}
	}
	return fmt.Errorf("draft %s not in list", draftID)
}

// ShowGenerator flips the view back to the generator form.
func (c *ApplicationController) ShowGenerator() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showGenerator = true
}

// Delete removes the application, but only while it is still in the
// entwurf status. Anything else is rejected here, before any request is
// sent; the backend enforces the same rule.
func (c *ApplicationController) Delete(ctx context.Context) error {
	c.mu.Lock()
	app := c.application
	c.mu.Unlock()

	if app == nil {
		return ErrNotLoaded
	}
	if !app.Status.Deletable() {
		return ErrNotDeletable
	}
	if err := c.apps.Delete(ctx, app.ApplicationID); err != nil {
		return fmt.Errorf("delete application %s: %w", app.ApplicationID, err)
	}
	return nil
}

// SubmitFeedback reports on the currently selected draft.
func (c *ApplicationController) SubmitFeedback(ctx context.Context, feedback string) error {
	c.mu.Lock()
	selected := c.selected
	c.mu.Unlock()

	if selected == nil {
		return ErrNoDraftSelected
	}
	return c.drafts.SubmitFeedback(ctx, selected.DraftID, feedback)
}

// ExportDraft writes the selected draft's content to a Markdown file in
// dir and returns the path.
func (c *ApplicationController) ExportDraft(dir string) (string, error) {
	c.mu.Lock()
	selected := c.selected
	app := c.application
	c.mu.Unlock()

	if selected == nil {
		return "", ErrNoDraftSelected
	}

	title := "antrag"
	if app != nil && app.Title != "" {
		title = app.Title
	}
	path := filepath.Join(dir, "foerderantrag-"+slugify(title, 30)+".md")
	if err := filex.WriteText(path, selected.GeneratedContent); err != nil {
		return "", err
	}
	return path, nil
}

// Accessors used by the view layer.

func (c *ApplicationController) Application() *models.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.application == nil {
		return nil
	}
	app := *c.application
	return &app
}

func (c *ApplicationController) Funding() *models.FundingOpportunity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opportunity == nil {
		return nil
	}
	f := *c.opportunity
	return &f
}

func (c *ApplicationController) Drafts() []models.ApplicationDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ApplicationDraft(nil), c.draftList...)
}

func (c *ApplicationController) Selected() *models.ApplicationDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	d := *c.selected
	return &d
}

func (c *ApplicationController) GeneratorVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showGenerator
}

func (c *ApplicationController) Generating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generating
}

// slugify reduces a title to a filesystem-safe slug of at most maxLen runes.
func slugify(s string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'ä':
			b.WriteString("ae")
		case r == 'ö':
			b.WriteString("oe")
		case r == 'ü':
			b.WriteString("ue")
		case r == 'ß':
			b.WriteString("ss")
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(strings.Join(strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' }), "-"), "-")
	runes := []rune(slug)
	if len(runes) > maxLen {
		slug = strings.Trim(string(runes[:maxLen]), "-")
	}
	if slug == "" {
		slug = "antrag"
	}
	return slug
}
