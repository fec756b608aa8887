package formatter

import (
	"fmt"
	"strings"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
)

// FormatActiveJobs renders the active-jobs view grouped by company and area.
func FormatActiveJobs(resp *contract.ActiveJobsResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Active jobs — %s", resp.CurrentDate.Format("Jan 2, 2006 15:04"))))
	b.WriteString("\n")

	if len(resp.ActiveJobs) == 0 {
		b.WriteString(Dim("Nothing due right now."))
		b.WriteString("\n")
		return b.String()
	}

	for _, comp := range resp.ActiveJobs {
		b.WriteString("\n")
		b.WriteString(Bold(comp.CompanyName))
		b.WriteString("  ")
		b.WriteString(ContractPill(comp.ContractStatus))
		if comp.DaysUntilExpiry != nil {
			b.WriteString(Dim(fmt.Sprintf("  expires in %s", DaysLabel(*comp.DaysUntilExpiry))))
		}
		b.WriteString("\n")
		if comp.Address != "" {
			b.WriteString(Dim("  " + comp.Address))
			b.WriteString("\n")
		}

		for _, area := range comp.Areas {
			areaLabel := area.AreaName
			if area.AllCompleted {
				areaLabel += "  " + StyleGreen.Render("(all completed)")
			}
			b.WriteString(fmt.Sprintf("  %s\n", StyleBlue.Render(areaLabel)))

			for _, obj := range area.Objects {
				b.WriteString(fmt.Sprintf("    %s  %s", StatusPill(obj.JobStatus), obj.ObjectName))
				if obj.ShiftLabel != "" {
					b.WriteString(Dim("  [" + obj.ShiftLabel + "]"))
				}
				b.WriteString("\n")
				if obj.DueReason != "" {
					b.WriteString(Dim("        " + obj.DueReason))
					b.WriteString("\n")
				}
				b.WriteString(Dim(fmt.Sprintf("        cycle %d, last completed cycle %d, %s",
					obj.FrequencyInfo.CurrentCycle,
					obj.FrequencyInfo.LastCompletedCycle,
					obj.FrequencyInfo.FrequencyType)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Bold(fmt.Sprintf("Total: %d", resp.TotalActiveJobs)))
	b.WriteString("\n")
	return b.String()
}

// FormatOpenLogs renders an employee's running job logs.
func FormatOpenLogs(logs []*domain.JobLog) string {
	if len(logs) == 0 {
		return Dim("No running jobs.") + "\n"
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			TruncID(l.ObjectID),
			l.StartTime.Format("2006-01-02 15:04"),
			StyleBlue.Render("● running"),
		})
	}
	return RenderTable([]string{"Object", "Started", "Status"}, rows)
}
