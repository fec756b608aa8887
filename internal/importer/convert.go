package importer

import (
	"fmt"
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// ConvertCompanyDef turns a validated definition into a domain company.
// IDs are left blank; the company service assigns them on create.
func ConvertCompanyDef(def *CompanyDef) (*domain.Company, error) {
	c := &domain.Company{
		Name:           def.Name,
		MobileNumber:   def.MobileNumber,
		Email:          def.Email,
		Address:        def.Address,
		PropertyTypeID: def.PropertyType,
		Latitude:       def.Latitude,
		Longitude:      def.Longitude,
		ShiftStart:     def.ShiftStart,
		ShiftEnd:       def.ShiftEnd,
	}

	var err error
	if c.ContractStartDate, err = datePtr(def.ContractStart, "contract_start"); err != nil {
		return nil, err
	}
	if c.ContractEndDate, err = datePtr(def.ContractEnd, "contract_end"); err != nil {
		return nil, err
	}

	for _, areaDef := range def.Areas {
		area := domain.Area{Name: areaDef.Name}
		for _, objDef := range areaDef.Objects {
			obj := domain.ServiceObject{
				Name:           objDef.Name,
				FrequencyLabel: objDef.Frequency,
				FrequencyID:    objDef.FrequencyID,
				EmployeeID:     objDef.EmployeeID,
				ServiceTypeID:  objDef.ServiceType,
				ShiftID:        objDef.ShiftID,
				TalentID:       objDef.TalentID,
			}
			if obj.ServiceStartDate, err = datePtr(objDef.ServiceStart, "service_start"); err != nil {
				return nil, err
			}
			area.Objects = append(area.Objects, obj)
		}
		c.Areas = append(c.Areas, area)
	}
	return c, nil
}

func datePtr(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return &t, nil
}
