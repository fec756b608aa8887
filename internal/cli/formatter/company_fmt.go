package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// FormatCompanyList renders companies as a table.
func FormatCompanyList(companies []*domain.Company, now time.Time) string {
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		objects := 0
		for _, a := range c.Areas {
			objects += len(a.Objects)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			c.Name,
			c.PropertyTypeName,
			ContractPill(c.ContractStatusAt(now)),
			DateOrDash(c.ContractEndDate),
			fmt.Sprintf("%d/%d", len(c.Areas), objects),
		})
	}
	return RenderTable([]string{"ID", "Name", "Property", "Contract", "Ends", "Areas/Objects"}, rows)
}

// FormatCompanyDetail renders one company with its full area hierarchy.
func FormatCompanyDetail(c *domain.Company, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(c.Name))
	b.WriteString("\n")

	fields := [][2]string{
		{"ID", c.ID},
		{"Property", c.PropertyTypeName},
		{"Address", c.Address},
		{"Contact", strings.TrimSpace(c.MobileNumber + " " + c.Email)},
		{"Contract", fmt.Sprintf("%s to %s  %s",
			DateOrDash(c.ContractStartDate), DateOrDash(c.ContractEndDate),
			ContractPill(c.ContractStatusAt(now)))},
		{"Shift", c.ShiftStart + " - " + c.ShiftEnd},
	}
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" || strings.TrimSpace(f[1]) == "-" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", f[0])), f[1]))
	}

	for _, area := range c.Areas {
		b.WriteString("\n")
		b.WriteString(StyleBlue.Render("▸ " + area.Name))
		b.WriteString("\n")
		for _, obj := range area.Objects {
			b.WriteString(fmt.Sprintf("    %s %s", Bold(obj.Name), Dim("("+obj.FrequencyLabel+")")))
			if obj.EmployeeID != "" {
				b.WriteString(Dim("  assigned: ") + TruncID(obj.EmployeeID))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatEmployeeList renders employees as a table.
func FormatEmployeeList(employees []*domain.Employee) string {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Name,
			e.Role,
			strings.Join(e.Talents, ", "),
			e.MobileNumber,
		})
	}
	return RenderTable([]string{"ID", "Name", "Role", "Talents", "Mobile"}, rows)
}
