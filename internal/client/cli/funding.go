package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Annomy111/foerder-finder/internal/client/controllers"
	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// listFunding fetches and prints the funding list for the current
// filters.
func (a *App) listFunding(ctx context.Context) {
	if err := a.fundingList.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	items := a.fundingList.Items()
	if a.fundingList.Offline() {
		fmt.Fprintln(a.out, "(backend unreachable, showing cached list)")
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No funding opportunities found.")
		return
	}

	for _, item := range items {
		fmt.Fprintln(a.out, formatFundingLine(item, time.Now()))
	}
	fmt.Fprintf(a.out, "%d opportunities, total up to %.0f EUR, %d deadlines within %d days\n",
		len(items), a.fundingList.TotalMaxFunding(), a.fundingList.DeadlinesSoonCount(), models.DeadlineSoonDays)
}

// setFilter handles "filter <key> <value>"; an empty value clears the key.
func (a *App) setFilter(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: filter <%s> [value]\n", strings.Join(controllers.FilterKeys, "|"))
		return
	}
	value := ""
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	}
	if err := a.fundingList.SetFilter(ctx, args[0], value); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	a.printItems()
}

func (a *App) clearFilters(ctx context.Context) {
	if err := a.fundingList.ClearFilters(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Filters cleared.")
	a.printItems()
}

func (a *App) printItems() {
	now := time.Now()
	for _, item := range a.fundingList.Items() {
		fmt.Fprintln(a.out, formatFundingLine(item, now))
	}
}

// showFunding prints the detail view for one opportunity.
func (a *App) showFunding(ctx context.Context, fundingID string) {
	item, err := a.api.Funding.GetByID(ctx, fundingID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintln(a.out, item.Title)
	if item.Provider != "" {
		fmt.Fprintln(a.out, "Provider:", item.Provider)
	}
	if item.Region != "" {
		fmt.Fprintln(a.out, "Region:", item.Region)
	}
	if item.FundingArea != "" {
		fmt.Fprintln(a.out, "Area:", item.FundingArea)
	}
	fmt.Fprintln(a.out, "Amount:", formatAmountRange(item.MinAmount, item.MaxAmount))
	fmt.Fprintln(a.out, "Deadline:", formatDeadline(item.Deadline, time.Now()))
	if item.Description != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, item.Description)
	}
	if len(item.Requirements) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Requirements:")
		for _, r := range item.Requirements {
			fmt.Fprintln(a.out, " -", r)
		}
	}
	if item.SourceURL != "" {
		fmt.Fprintln(a.out, "Source:", item.SourceURL)
	}
}

// filterOptions prints the values the backend can filter by.
func (a *App) filterOptions(ctx context.Context) {
	options, err := a.fundingList.FilterOptions(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Regions:", strings.Join(options.Regions, ", "))
	fmt.Fprintln(a.out, "Funding areas:", strings.Join(options.FundingAreas, ", "))
	fmt.Fprintln(a.out, "Providers:", strings.Join(options.Providers, ", "))
}

// formatFundingLine renders one list row, flagging urgent deadlines.
func formatFundingLine(item models.FundingOpportunity, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %s", item.FundingID, item.Title)
	if item.MaxAmount != nil {
		fmt.Fprintf(&b, " (up to %.0f EUR)", *item.MaxAmount)
	}
	b.WriteString(" | " + formatDeadline(item.Deadline, now))
	return b.String()
}

// formatDeadline renders a deadline with the remaining days, marking
// deadlines inside the urgent window.
func formatDeadline(d *models.Date, now time.Time) string {
	days, ok := models.DaysUntil(d, now)
	switch {
	case !ok:
		return "no deadline"
	case days <= 0:
		return fmt.Sprintf("expired (%s)", d.Format("2006-01-02"))
	case days < models.UrgentDeadlineDays:
		return fmt.Sprintf("URGENT: %d days left (%s)", days, d.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%d days left (%s)", days, d.Format("2006-01-02"))
	}
}

func formatAmountRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%.0f - %.0f EUR", *min, *max)
	case max != nil:
		return fmt.Sprintf("up to %.0f EUR", *max)
	case min != nil:
		return fmt.Sprintf("from %.0f EUR", *min)
	default:
		return "not specified"
	}
}
