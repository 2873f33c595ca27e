package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/controllers"
)

// listApplications prints the user's applications.
func (a *App) listApplications(ctx context.Context) {
	apps, err := a.api.Applications.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return
	}
	for _, app := range apps {
		fmt.Fprintf(a.out, "%-14s %-16s %s\n", app.ApplicationID, app.Status, app.Title)
	}
}

// createApplication prompts for the fields of a new application.
func (a *App) createApplication(ctx context.Context) error {
	fundingID, err := getSimpleText(a.reader, "Funding opportunity id", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Application title", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Project description", a.out)
	if err != nil {
		return err
	}

	app, err := a.api.Applications.Create(ctx, api.CreateApplicationRequest{
		FundingID:           fundingID,
		Title:               title,
		Projektbeschreibung: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created application %s (%s)\n", app.ApplicationID, app.Status)
	return nil
}

// openApplication loads one application into the detail controller. All
// draft commands operate on the opened application.
func (a *App) openApplication(ctx context.Context, applicationID string) {
	ctl := controllers.NewApplication(a.api.Applications, a.api.Funding, a.api.Drafts, a.log)
	if err := ctl.Load(ctx, applicationID); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	a.application = ctl

	app := ctl.Application()
	fmt.Fprintf(a.out, "%s (%s)\n", app.Title, app.Status)
	if funding := ctl.Funding(); funding != nil {
		fmt.Fprintln(a.out, "Funding:", funding.Title)
	}
	drafts := ctl.Drafts()
	fmt.Fprintf(a.out, "%d draft(s)\n", len(drafts))
	for _, d := range drafts {
		fmt.Fprintf(a.out, "  %s  %s  %s\n", d.DraftID, d.CreatedAt.Format("2006-01-02 15:04"), d.ModelUsed)
	}
	if selected := ctl.Selected(); selected != nil {
		fmt.Fprintln(a.out, "Selected draft:", selected.DraftID)
	}
}

// generateDraft prompts for a project description and requests an AI
// draft for the opened application. This blocks for up to the configured
// generate timeout.
func (a *App) generateDraft(ctx context.Context) error {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return nil
	}

	userQuery, err := GetMultiline(a.reader, "Describe your project", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Generating draft, this can take a few minutes...")
	draft, err := a.application.GenerateDraft(ctx, userQuery)
	if err != nil {
		if errors.Is(err, controllers.ErrGenerateInFlight) {
			fmt.Fprintln(a.out, "A draft is already being generated.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Draft %s generated.\n\n", draft.DraftID)
	fmt.Fprintln(a.out, draft.GeneratedContent)
	return nil
}

// showDraft prints the selected draft of the opened application.
func (a *App) showDraft() {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return
	}
	selected := a.application.Selected()
	if selected == nil {
		fmt.Fprintln(a.out, "No draft yet, use 'generate'.")
		return
	}
	fmt.Fprintln(a.out, selected.GeneratedContent)
}

// selectDraft switches to another draft from the history.
func (a *App) selectDraft(draftID string) {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return
	}
	if err := a.application.SelectDraft(draftID); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Selected draft", draftID)
}

// exportDraft writes the selected draft to a Markdown file in the
// working directory.
func (a *App) exportDraft() {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return
	}
	path, err := a.application.ExportDraft(".")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Exported to", path)
}

// submitFeedback reports on the selected draft.
func (a *App) submitFeedback(ctx context.Context) error {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return nil
	}
	feedback, err := getSimpleText(a.reader, "Your feedback", a.out)
	if err != nil {
		return err
	}
	if err := a.application.SubmitFeedback(ctx, feedback); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thanks, feedback submitted.")
	return nil
}

// deleteApplication removes the opened application if it is still a
// draft.
func (a *App) deleteApplication(ctx context.Context) {
	if a.application == nil {
		fmt.Fprintln(a.out, "Open an application first: app <id>")
		return
	}
	if err := a.application.Delete(ctx); err != nil {
		if errors.Is(err, controllers.ErrNotDeletable) {
			fmt.Fprintln(a.out, "Only applications in the entwurf status can be deleted.")
			return
		}
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	a.application = nil
	fmt.Fprintln(a.out, "Application deleted.")
}
