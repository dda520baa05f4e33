package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/shiori/internal/app"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/engine/decision"
	"go.trai.ch/shiori/internal/ui/style"
)

const shortSession = 8

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which cached tests would be skipped on the next run",
		Long: "Show the cached test units of the current package and whether their dependencies still match.\n" +
			"Library and Go version changes are only detected by the test binary itself.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			verbose, _ := cmd.Flags().GetBool("verbose")

			reports, err := c.app.Status(cmd.Context(), app.StatusOptions{All: all})
			for _, report := range reports {
				renderPackage(cmd.OutOrStdout(), report, verbose)
			}
			return err
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Show every package with cached fingerprints")
	cmd.Flags().BoolP("verbose", "v", false, "List the changed dependencies of every unit")

	return cmd
}

func renderPackage(w io.Writer, report app.PackageReport, verbose bool) {
	details := []string{fmt.Sprintf("%d files", report.Files)}
	if report.Session != "" {
		details = append(details, "session "+truncate(report.Session, shortSession))
	}
	if !report.UpdatedAt.IsZero() {
		details = append(details, "updated "+report.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", style.Header.Render(report.Namespace), style.Dim.Render(strings.Join(details, " · ")))

	if len(report.Units) == 0 {
		_, _ = fmt.Fprintln(w, style.Dim.Render("  no cached tests"))
		return
	}

	for _, unit := range report.Units {
		renderUnit(w, unit, verbose)
	}
}

func renderUnit(w io.Writer, unit app.UnitReport, verbose bool) {
	name := fmt.Sprintf("%s:%d", filepath.Base(unit.Key.File), unit.Key.Line)
	if unit.Key.Name != "" {
		name += " " + unit.Key.Name
	}

	summary := string(unit.Verdict.Reason)
	if unit.Verdict.Detail != "" && unit.Verdict.Reason == decision.ReasonDependencyChanged {
		summary += " " + filepath.Base(unit.Verdict.Detail)
	}

	_, _ = fmt.Fprintf(w, "  %s %s  %s\n",
		style.RenderStatus(unitStatus(unit.Verdict)),
		name,
		style.Dim.Render(fmt.Sprintf("%s (%d files)", summary, len(unit.Entry.Files))),
	)

	if verbose {
		for _, file := range unit.Changed {
			_, _ = fmt.Fprintf(w, "      %s\n", style.Dim.Render(file))
		}
	}
}

// unitStatus maps a verdict to the status the unit will end in on the next run.
func unitStatus(v decision.Verdict) domain.UnitStatus {
	switch {
	case v.Skip:
		return domain.UnitStatusCached
	case v.Reason == decision.ReasonPriorFailure:
		return domain.UnitStatusFailed
	default:
		return domain.UnitStatusPending
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
