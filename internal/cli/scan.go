package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raysh454/fhscan/internal/app"
	"github.com/raysh454/fhscan/internal/batch"
	"github.com/raysh454/fhscan/internal/report"
)

func newScanCommand(e *env) *cobra.Command {
	var (
		jurisdiction string
		url          string
		format       string
		out          string
		fail         bool
	)

	cmd := &cobra.Command{
		Use:   "scan [TEXT...]",
		Short: "Scan listing text or a listing URL",
		Long: `Scan listing text for fair housing problems and print a report.

Text comes from the arguments, or from stdin when there are none.
With --url the page is fetched and its description is scanned instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url != "" && len(args) > 0 {
				return fmt.Errorf("give either --url or text, not both")
			}
			if _, err := report.ParseFormat(format); err != nil {
				return err
			}

			return e.withApp(cmd, func(a *app.Application) error {
				var (
					text string
					res  app.ScanResult
				)
				if url != "" {
					ur, err := a.Orch.ScanURL(cmd.Context(), url, jurisdiction)
					if err != nil {
						return err
					}
					text, res = ur.Listing.Text(), ur.ScanResult
				} else {
					t, err := inputText(cmd, args)
					if err != nil {
						return err
					}
					if res, err = a.Orch.Scan(cmd.Context(), t, jurisdiction, "cli"); err != nil {
						return err
					}
					text = t
				}

				rendered, err := a.Orch.Export(text, jurisdiction, format)
				if err != nil {
					return err
				}
				if err := writeOutput(cmd, out, rendered.Body); err != nil {
					return err
				}
				if fail && !res.IsCompliant {
					return ErrViolationsFound
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Two-letter state code (empty runs every rule)")
	cmd.Flags().StringVar(&url, "url", "", "Listing page to fetch and scan")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Report format (json, csv, text, html)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with status 2 when violations are found")
	return cmd
}

func newBatchCommand(e *env) *cobra.Command {
	var jurisdiction string

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Quick-scan a JSON array of listings",
		Long: `Quick-scan many listings at once. FILE holds a JSON array whose
elements are strings or {"id": ..., "text": ...} objects, or an object
with an "items" array. Use - to read stdin. Results print as JSON in
input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			items, err := batch.ReadItems(in)
			if err != nil {
				return err
			}

			return e.withApp(cmd, func(a *app.Application) error {
				results, err := a.Orch.Batch(cmd.Context(), items, jurisdiction)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			})
		},
	}

	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Two-letter state code applied to every item")
	return cmd
}

func newFixCommand(e *env) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "fix [TEXT...]",
		Short: "Rewrite known problem phrases with compliant alternatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(a *app.Application) error {
				res := a.Orch.AutoFix(text)
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, strings.TrimRight(res.Text, "\n"))

				for _, c := range res.Changes {
					fmt.Fprintf(cmd.ErrOrStderr(), "replaced %q with %q (%dx)\n", c.Original, c.Replacement, c.Count)
				}
				if showDiff && res.Patch != "" {
					fmt.Fprintln(w)
					fmt.Fprint(w, res.Patch)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Also print a patch of the rewrite")
	return cmd
}

// writeOutput prints body, or writes it to path when one is given.
func writeOutput(cmd *cobra.Command, path, body string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), body)
		return err
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "report written to %s\n", path)
	return nil
}
