package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Annomy111/foerder-finder/internal/client/controllers"
)

func (a *App) getStatus() string {
	snapshot := a.session.Snapshot()
	if snapshot.IsAuthenticated && snapshot.User != nil {
		return fmt.Sprintf("(%s)", snapshot.User.Email)
	}
	return "(anonymous)"
}

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to EduFunds CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		a.whoami()
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "edufunds %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			if err := a.Register(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		case "login":
			_ = a.Login(ctx)
		case "logout":
			if err := a.Logout(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		case "whoami":
			a.whoami()

		case "dashboard":
			a.showDashboard(ctx)

		case "funding", "f":
			a.listFunding(ctx)
		case "filter":
			a.setFilter(ctx, args)
		case "clearfilters":
			a.clearFilters(ctx)
		case "options":
			a.filterOptions(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <funding id>")
				continue
			}
			a.showFunding(ctx, args[0])

		case "search", "s":
			a.runSearch(ctx, controllers.ModeAdvanced, args)
		case "quick":
			a.runSearch(ctx, controllers.ModeQuick, args)
		case "raghealth":
			a.searchHealth(ctx)

		case "apps":
			a.listApplications(ctx)
		case "newapp":
			if err := a.createApplication(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		case "app":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: app <application id>")
				continue
			}
			a.openApplication(ctx, args[0])
		case "generate":
			if err := a.generateDraft(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		case "draft":
			a.showDraft()
		case "selectdraft":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: selectdraft <draft id>")
				continue
			}
			a.selectDraft(args[0])
		case "export":
			a.exportDraft()
		case "feedback":
			if err := a.submitFeedback(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		case "delete":
			a.deleteApplication(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands:")
		fmt.Fprintln(a.out, "  dashboard                 overview of applications and funding")
		fmt.Fprintln(a.out, "  (f)unding                 list funding opportunities")
		fmt.Fprintln(a.out, "  filter <key> [value]      set or clear one list filter")
		fmt.Fprintln(a.out, "  clearfilters              reset all filters")
		fmt.Fprintln(a.out, "  options                   available filter values")
		fmt.Fprintln(a.out, "  show <id>                 funding opportunity details")
		fmt.Fprintln(a.out, "  (s)earch <query>          semantic search")
		fmt.Fprintln(a.out, "  quick <query>             fast keyword search")
		fmt.Fprintln(a.out, "  apps | newapp | app <id>  manage applications")
		fmt.Fprintln(a.out, "  generate | draft | selectdraft | export | feedback | delete")
		fmt.Fprintln(a.out, "  whoami | logout | exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, funding, search, exit")
	}
}
