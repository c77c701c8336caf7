package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/models"
)

// DatabaseProbe is the minimum a database handle must offer to be reported
// on. Extra capabilities are discovered with type assertions.
type DatabaseProbe interface {
	Health(ctx context.Context) error
}

// TableLister is implemented by probes that can enumerate their tables.
type TableLister interface {
	ListTables(ctx context.Context) ([]string, error)
}

// Namer is implemented by probes that know their database name.
type Namer interface {
	Name() string
}

const (
	statusRunning        = "✅ Running"
	statusNotAvailable   = "❌ Not Available"
	statusUninitialized  = "⚠️  Available but not initialized"
	statusAvailable      = "✅ Available"
	statusWorking        = "✅ Connected & Working"
	statusConfigured     = "✅ Configured"
	statusConnectedName  = "✅ Connected"
	statusSet            = "✅ Set"
	statusNotSet         = "❌ Not Set"
	connectionConnected  = "Connected"
	connectionNotConnect = "Not Connected"

	maxCollections  = 10
	maxErrorRunes   = 50
	diagnosticLimit = 5 * time.Second
)

type DiagnosticService struct {
	db        DatabaseProbe
	lookupEnv func(string) (string, bool)
}

// NewDiagnosticService accepts a nil db, which is the case when DATABASE_URL
// is unset or the connection failed at startup. The report then says the
// database is not initialized.
func NewDiagnosticService(db DatabaseProbe) *DiagnosticService {
	return &DiagnosticService{db: db, lookupEnv: os.LookupEnv}
}

// WithEnvLookup replaces the environment reader, mainly for tests.
func (s *DiagnosticService) WithEnvLookup(lookup func(string) (string, bool)) *DiagnosticService {
	s.lookupEnv = lookup
	return s
}

// Report never fails: probe errors and panics become status strings.
func (s *DiagnosticService) Report(ctx context.Context) models.DiagnosticReport {
	report := models.DiagnosticReport{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		ConnectionStatus: connectionNotConnect,
		Collections:      []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, diagnosticLimit)
	defer cancel()

	s.probe(ctx, &report)

	report.DatabaseURL = s.envStatus("DATABASE_URL")
	report.DatabaseName = s.envStatus("DATABASE_NAME")
	return report
}

func (s *DiagnosticService) probe(ctx context.Context, report *models.DiagnosticReport) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error("Database probe panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxErrorRunes)
		}
	}()

	if s.db == nil {
		report.Database = statusUninitialized
		return
	}

	if err := s.db.Health(ctx); err != nil {
		logging.FromContext(ctx).Warn("Database probe failed", map[string]interface{}{
			"error": err.Error(),
		})
		report.Database = "❌ Error: " + truncate(err.Error(), maxErrorRunes)
		return
	}

	report.Database = statusAvailable
	report.DatabaseURL = strPtr(statusConfigured)
	report.DatabaseName = strPtr(statusConnectedName)
	if n, ok := s.db.(Namer); ok && n.Name() != "" {
		report.DatabaseName = strPtr(n.Name())
	}
	report.ConnectionStatus = connectionConnected

	lister, ok := s.db.(TableLister)
	if !ok {
		return
	}
	tables, err := lister.ListTables(ctx)
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorRunes)
		return
	}
	if len(tables) > maxCollections {
		tables = tables[:maxCollections]
	}
	report.Collections = append([]string{}, tables...)
	report.Database = statusWorking
}

func (s *DiagnosticService) envStatus(key string) *string {
	if v, ok := s.lookupEnv(key); ok && v != "" {
		return strPtr(statusSet)
	}
	return strPtr(statusNotSet)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func strPtr(s string) *string {
	return &s
}
