package cli

import (
	"fmt"
	"io"

	"github.com/example/wordplan/internal/statistics"
)

// RenderStatsReport writes a monthly study statistics table.
func RenderStatsReport(out io.Writer, result statistics.Result) {
	if len(result.Periods) == 0 {
		fmt.Fprintln(out, "No test results found for the specified period.")
		return
	}

	fmt.Fprintln(out, "Study Statistics Report")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-10s  %-8s  %-8s  %-9s  %-5s\n", "Period", "Attempts", "Passed", "Pass Rate", "Items")
	fmt.Fprintf(out, "%-10s  %-8s  %-8s  %-9s  %-5s\n", "------", "--------", "------", "---------", "-----")

	for _, s := range result.Periods {
		fmt.Fprintf(out, "%-10s  %-8d  %-8d  %-9s  %-5d\n",
			s.Period, s.Attempts, s.Passed,
			fmt.Sprintf("%.0f%%", s.PassRate()*100), s.ItemsUnique,
		)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-10s  %-8d  %-8d  %-9s  %-5d\n",
		"Totals:", result.Aggregate.Attempts, result.Aggregate.Passed,
		fmt.Sprintf("%.0f%%", result.Aggregate.PassRate()*100), result.Aggregate.ItemsUnique,
	)
}
