package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fwojciec/seogap"
)

// printReport renders a report as aligned text tables.
func printReport(w io.Writer, report *seogap.Report) {
	fmt.Fprintf(w, "\nPage summaries\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tWORDS\tH1/H2/H3\tLINKS\tFAQS\tSCHEMA")
	printSummaryRow(tw, "you", report.Target)
	for i, c := range report.Competitors {
		printSummaryRow(tw, fmt.Sprintf("comp %d", i+1), c)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nIdentified gaps\n")
	if len(report.Gaps) == 0 {
		fmt.Fprintln(w, "  No major structural/technical gaps detected by baseline rules.")
	}
	for _, gap := range report.Gaps {
		fmt.Fprintf(w, "  [%s/%s] %s (competitors: %.2f, you: %.0f)\n",
			gap.Type, gap.Confidence, gap.Detail, gap.CompetitorAvg, gap.Yours)
		fmt.Fprintf(w, "      %s\n", gap.Action)
	}

	if len(report.Keywords) > 0 {
		fmt.Fprintf(w, "\nKeyword density (yours vs competitor average)\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEYWORD\tCOUNT\tDENSITY%\tAVG COUNT\tAVG DENSITY%\tHINT")
		for _, kw := range report.Keywords {
			fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.2f\t%.4f\t%s\n",
				kw.Keyword, kw.Count, kw.Density, kw.CompetitorAvgCount, kw.CompetitorAvgDens, kw.Hint)
		}
		tw.Flush()
	}

	fmt.Fprintf(w, "\nCompetitor semantic terms (top %d)\n", len(report.Terms))
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, term := range report.Terms {
		fmt.Fprintf(tw, "%s\t%d\n", term.Term, term.Count)
	}
	tw.Flush()

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  %s: %s\n", warning.URL, warning.Message)
		}
	}
}

func printSummaryRow(w io.Writer, label string, s seogap.PageSummary) {
	fmt.Fprintf(w, "%s\t%d\t%d/%d/%d\t%d\t%d\t%s\n",
		label, s.WordCount, s.H1Count, s.H2Count, s.H3Count,
		s.InternalLinkCount, s.FAQCount, schemaFlags(s))
}

// schemaFlags renders the schema signals compactly: F=FAQPage,
// O=Organization, L=LocalBusiness family. "-" means none.
func schemaFlags(s seogap.PageSummary) string {
	flags := ""
	if s.HasFAQSchema {
		flags += "F"
	}
	if s.HasOrgSchema {
		flags += "O"
	}
	if s.HasLocalBusinessSchema {
		flags += "L"
	}
	if flags == "" {
		return "-"
	}
	return flags
}
