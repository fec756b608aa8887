package domain

import "time"

// Employee is a field worker who gets assigned to service objects.
type Employee struct {
	ID           string
	Name         string
	MobileNumber string
	Email        string
	Address      string
	Role         string
	Gender       string
	JoiningDate  string
	Talents      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
