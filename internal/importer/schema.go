package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CompanyDef is the top-level YAML structure for company import.
type CompanyDef struct {
	Name          string    `yaml:"name"`
	MobileNumber  string    `yaml:"mobile_number"`
	Email         string    `yaml:"email"`
	Address       string    `yaml:"address"`
	ContractStart string    `yaml:"contract_start"`
	ContractEnd   string    `yaml:"contract_end"`
	PropertyType  string    `yaml:"property_type_id"`
	Latitude      float64   `yaml:"latitude"`
	Longitude     float64   `yaml:"longitude"`
	ShiftStart    string    `yaml:"shift_start"`
	ShiftEnd      string    `yaml:"shift_end"`
	Areas         []AreaDef `yaml:"areas"`
}

// AreaDef defines one area and its service objects.
type AreaDef struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef defines one service object. Frequency may be given as free
// text or as a catalog reference; free text wins when both are set.
type ObjectDef struct {
	Name         string `yaml:"name"`
	Frequency    string `yaml:"frequency"`
	FrequencyID  string `yaml:"frequency_id"`
	EmployeeID   string `yaml:"employee_id"`
	ServiceType  string `yaml:"service_type_id"`
	ShiftID      string `yaml:"shift_id"`
	TalentID     string `yaml:"talent_id"`
	ServiceStart string `yaml:"service_start"`
}

// LoadCompanyDef reads and parses a company definition YAML file.
func LoadCompanyDef(path string) (*CompanyDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def CompanyDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing company definition: %w", err)
	}
	return &def, nil
}
