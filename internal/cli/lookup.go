package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/raysh454/fhscan/internal/app"
)

func newProtectionsCommand(e *env) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "protections [CODE]",
		Short: "Show the protected classes for a jurisdiction",
		Long: `Show the protected classes for a two-letter state code. Unknown or
missing codes show the federal baseline. --list shows every jurisdiction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(a *app.Application) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				if list {
					fmt.Fprintln(tw, "CODE\tNAME\tEXTRA CLASSES")
					for _, p := range a.Orch.Jurisdictions() {
						fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Code, p.Name, len(p.Additional))
					}
					return tw.Flush()
				}

				code := ""
				if len(args) == 1 {
					code = args[0]
				}
				fmt.Fprintln(tw, "ID\tNAME")
				for _, c := range a.Orch.Protections(code) {
					fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List every known jurisdiction")
	return cmd
}

func newAlternativesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "alternatives PHRASE...",
		Short: "Suggest compliant replacements for a phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			return e.withApp(cmd, func(a *app.Application) error {
				alts := a.Orch.Alternatives(phrase)
				if alts == nil {
					return fmt.Errorf("no alternatives known for %q", phrase)
				}
				for _, alt := range alts {
					fmt.Fprintln(cmd.OutOrStdout(), alt)
				}
				return nil
			})
		},
	}
}

func newHistoryCommand(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(a *app.Application) error {
				recs, err := a.Orch.History(cmd.Context(), limit)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tWHEN\tSCORE\tRISK\tJURISDICTION\tSOURCE")
				for _, r := range recs {
					j := r.Jurisdiction
					if j == "" {
						j = "-"
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
						r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Score, r.Risk, j, r.Source)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scans to list")
	return cmd
}
