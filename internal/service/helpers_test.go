package service

import (
	"database/sql"

	"github.com/andrisyafri/facilops/internal/repository"
)

// testFixture bundles a test database with the repositories the service
// tests drive directly.
type testFixture struct {
	db        *sql.DB
	companies repository.CompanyRepo
	jobLogs   repository.JobLogRepo
	completed repository.CompletedJobRepo
}
