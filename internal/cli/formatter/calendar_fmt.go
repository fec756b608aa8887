package formatter

import (
	"fmt"
	"strings"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
)

// FormatCalendar renders a month view: company summary, per-day job
// listing, and the color legend.
func FormatCalendar(resp *contract.CalendarResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %d — %s", resp.MonthName, resp.Year, resp.Company.CompanyName)))
	b.WriteString("\n")
	b.WriteString(formatCompanyLine(resp.Company))
	b.WriteString("\n\n")

	if len(resp.Days) == 0 {
		b.WriteString(Dim("No jobs scheduled this month."))
		b.WriteString("\n")
		return b.String()
	}

	for _, day := range resp.Days {
		marker := " "
		if day.IsToday {
			marker = StyleOrange.Render("▶")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", marker, Bold(day.Date)))
		for _, job := range day.Jobs {
			line := fmt.Sprintf("    %s  %s %s %s",
				StatusPill(job.Status),
				job.ObjectName,
				Dim(fmt.Sprintf("(%s)", job.Frequency)),
				Dim(job.AreaName))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatLegend(resp.ColorLegend))
	return b.String()
}

func formatCompanyLine(info contract.CompanyInfo) string {
	parts := []string{
		fmt.Sprintf("Contract: %s", ContractPill(info.ContractStatus)),
		fmt.Sprintf("%s to %s", DateOrDash(info.ContractStart), DateOrDash(info.ContractEnd)),
		fmt.Sprintf("Jobs this month: %d", info.TotalJobsThisMonth),
	}
	if info.ContractDaysRemaining != nil {
		parts = append(parts, fmt.Sprintf("%s remaining", DaysLabel(*info.ContractDaysRemaining)))
	}
	return Dim(strings.Join(parts, "  ·  "))
}

func formatLegend(legend map[domain.CalendarColor]string) string {
	order := []domain.CalendarColor{
		domain.ColorGreen, domain.ColorBlue, domain.ColorRed,
		domain.ColorOrange, domain.ColorYellow, domain.ColorGray,
	}
	var parts []string
	for _, c := range order {
		label, ok := legend[c]
		if !ok {
			continue
		}
		parts = append(parts, StatusStyle(c).Render("■")+" "+Dim(label))
	}
	return strings.Join(parts, "  ")
}
