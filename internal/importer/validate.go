package importer

import (
	"fmt"
	"strings"
	"time"
)

// ValidateCompanyDef checks a company definition for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateCompanyDef(def *CompanyDef) []error {
	var errs []error

	if def.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	errs = append(errs, validateOptionalDate("contract_start", def.ContractStart)...)
	errs = append(errs, validateOptionalDate("contract_end", def.ContractEnd)...)

	if def.ContractStart != "" && def.ContractEnd != "" {
		start, startErr := time.Parse("2006-01-02", def.ContractStart)
		end, endErr := time.Parse("2006-01-02", def.ContractEnd)
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("contract_end %q must not be before contract_start %q", def.ContractEnd, def.ContractStart))
		}
	}

	areaNames := make(map[string]bool)
	for i, area := range def.Areas {
		prefix := fmt.Sprintf("areas[%d]", i)

		if area.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if areaNames[area.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate area %q", prefix, area.Name))
		} else {
			areaNames[area.Name] = true
		}

		for j, obj := range area.Objects {
			objPrefix := fmt.Sprintf("%s.objects[%d]", prefix, j)

			if obj.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", objPrefix))
			}
			if obj.Frequency == "" && obj.FrequencyID == "" {
				errs = append(errs, fmt.Errorf("%s: frequency or frequency_id is required", objPrefix))
			}
			if obj.Frequency != "" && strings.TrimSpace(obj.Frequency) == "" {
				errs = append(errs, fmt.Errorf("%s.frequency must not be blank", objPrefix))
			}
			errs = append(errs, validateOptionalDate(objPrefix+".service_start", obj.ServiceStart)...)
		}
	}

	return errs
}

func validateOptionalDate(field, dateStr string) []error {
	if dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, dateStr)}
	}
	return nil
}
