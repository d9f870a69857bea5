package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/repository"
	"github.com/alexanderramin/cutsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importYAML = `
ticket:
  customer: Acme Builders
  job_site: Dock 4
dispatch:
  - type: SLAB_SAWING
    fields:
      cuts:
        - mode: linear
          linear_feet: 80
          thickness: '6"'
      cut_type: Wet
work_performed:
  - type: SLAB_SAWING
    batch:
      kind: multicut
      blades: ['24"']
      entries:
        - {cuts: 4, length: 20, depth: 6}
`

func writeTicketFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newImportService(t *testing.T, observers ...UseCaseObserver) (ImportService, repository.TicketRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTicketRepo(database)
	tickets := NewTicketService(repo, testutil.NewTestUoW(database), sequenceNumbers("T-IMP222"), observers...)
	return NewImportService(tickets, observers...), repo
}

func TestImportService_ImportTicket(t *testing.T) {
	svc, repo := newImportService(t)
	ctx := context.Background()

	tk, err := svc.ImportTicket(ctx, writeTicketFile(t, "job.yaml", importYAML))
	require.NoError(t, err)
	assert.Equal(t, "T-IMP222", tk.Number)

	stored, err := repo.GetByNumber(ctx, "T-IMP222")
	require.NoError(t, err)
	assert.Equal(t, "Acme Builders", stored.Customer)
	assert.Equal(t, []domain.WorkTypeID{domain.SlabSawing}, stored.WorkTypes)
	assert.Contains(t, stored.Description, "SLAB SAWING")
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 80.0, stored.Items[0].Quantity)
	assert.Equal(t, domain.UnitLinearFeet, stored.Items[0].Unit)
}

func TestImportService_ValidationErrorsAreListed(t *testing.T) {
	svc, repo := newImportService(t)
	ctx := context.Background()

	_, err := svc.ImportTicket(ctx, writeTicketFile(t, "bad.yaml", `
ticket: {}
work_performed:
  - type: CORE_DRILLING
    holes:
      - {bit_size: "", quantity: 0}
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "ticket file validation failed (3 errors):")
	assert.Contains(t, msg, "  - ticket.customer is required")
	assert.Contains(t, msg, "  - work_performed[0].holes[0].bit_size is required")
	assert.Contains(t, msg, "  - work_performed[0].holes[0].quantity must be >= 1")

	list, err := repo.List(ctx, repository.TicketFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportService_LoadDraft_MissingFile(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.LoadDraft(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "loading ticket file")
}

func TestImportService_ObservesUseCases(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := newImportService(t, NewLogUseCaseObserver(&buf))

	_, err := svc.ImportTicket(context.Background(), writeTicketFile(t, "job.yaml", importYAML))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=save-ticket")
	assert.Contains(t, out, "use_case=import-ticket")
	assert.Contains(t, out, "number=T-IMP222")
	assert.Contains(t, out, "success=true")
}
