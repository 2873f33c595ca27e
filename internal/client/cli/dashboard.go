package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// showDashboard fetches and prints the start page aggregates.
func (a *App) showDashboard(ctx context.Context) {
	if err := a.dashboard.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	counts := a.dashboard.StatusCounts()
	fmt.Fprintf(a.out, "Applications: %d total", len(a.dashboard.Applications()))
	for _, status := range []models.ApplicationStatus{
		models.StatusEntwurf,
		models.StatusInBearbeitung,
		models.StatusEingereicht,
		models.StatusGenehmigt,
		models.StatusAbgelehnt,
	} {
		if counts[status] > 0 {
			fmt.Fprintf(a.out, ", %d %s", counts[status], status)
		}
	}
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "Funding: up to %.0f EUR available, %d deadlines within %d days\n",
		a.dashboard.TotalMaxFunding(), a.dashboard.DeadlinesSoonCount(), models.DeadlineSoonDays)

	now := time.Now()
	for _, item := range a.dashboard.Opportunities() {
		fmt.Fprintln(a.out, " ", formatFundingLine(item, now))
	}
}
