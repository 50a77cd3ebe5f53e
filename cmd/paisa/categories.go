package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/cli"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage budget categories",
		Long:  `List, set up, add to, and update the budget categories tracked by the service.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(initCategoriesCmd())
	cmd.AddCommand(addCategoriesCmd())
	cmd.AddCommand(updateCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var recurring bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories and balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			scope := ""
			if recurring {
				scope = api.ScopeRecurring
			}

			categories, err := client.GetCategories(cmd.Context(), scope)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'paisa categories init' to set up."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 12))

			top, rest := model.SplitDashboard(categories)
			for _, cat := range append(top, rest...) {
				fmt.Fprintf(w, "%s\t%s\n", cat.Name, cat.Amount.String())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&recurring, "recurring", false, "Only show recurring categories")

	return cmd
}

func initCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <name>=<amount> ...",
		Short: "Perform first-time category setup",
		Long: `Set up the initial categories. The reserved savings and loan categories
are always created; pass name=amount pairs to set their amounts and add
further categories, e.g.:

  paisa categories init savings=1000 loan=500 groceries=3000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			ed := editor.New(model.ModeInit, "")
			if err := applyPairs(ed, args); err != nil {
				return err
			}

			return sendSubmission(cmd, client, ed)
		},
	}
}

func addCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>=<amount> ...",
		Short: "Add new categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			ed := editor.New(model.ModeAdd, "")
			ed.SetFetched(nil)
			if err := applyPairs(ed, args); err != nil {
				return err
			}

			return sendSubmission(cmd, client, ed)
		},
	}
}

func updateCategoriesCmd() *cobra.Command {
	var temporary bool

	cmd := &cobra.Command{
		Use:   "update <name>=<amount> ...",
		Short: "Update category amounts",
		Long: `Update the amounts of existing categories. Permanent updates change the
recurring monthly budget; pass --temporary to adjust only the current
month's balances.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			scope := model.ScopePermanent
			if temporary {
				scope = model.ScopeTemporary
			}
			ed := editor.New(model.ModeUpdate, scope)

			fetchScope := ""
			if ed.RecurringOnly() {
				fetchScope = api.ScopeRecurring
			}
			categories, err := client.GetCategories(cmd.Context(), fetchScope)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			ed.SetFetched(categories)

			if err := applyPairs(ed, args); err != nil {
				return err
			}

			return sendSubmission(cmd, client, ed)
		},
	}

	cmd.Flags().BoolVar(&temporary, "temporary", false, "Adjust this month's balances instead of the recurring budget")

	return cmd
}

// applyPairs parses name=amount arguments and writes them into the
// editor, appending rows for names it does not already hold.
func applyPairs(ed *editor.Editor, args []string) error {
	for _, arg := range args {
		name, amount, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid argument %q: expected name=amount", arg)
		}

		idx := -1
		for i, row := range ed.Rows() {
			if model.SameName(row.Name, name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			if !ed.CanAddRows() {
				return fmt.Errorf("unknown category %q", name)
			}
			if err := ed.AddRow(); err != nil {
				return err
			}
			idx = len(ed.Rows()) - 1
			ed.SetName(idx, name)
		}
		ed.SetAmount(idx, strings.TrimSpace(amount))

		if got := ed.Rows()[idx].Amount; got != strings.TrimSpace(amount) {
			return fmt.Errorf("amount of %q cannot be changed here", name)
		}
	}
	return nil
}

// sendSubmission builds and dispatches the editor's payload and prints
// the outcome.
func sendSubmission(cmd *cobra.Command, client *api.Client, ed *editor.Editor) error {
	sub, err := ed.Build()
	if err != nil {
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Invalid categories"))
	}

	msg, err := sub.Send(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Request failed"))
	}
	if msg == "" {
		msg = "Categories saved"
	}
	fmt.Println(cli.SuccessStyle.Render("✓ " + msg))
	return nil
}
