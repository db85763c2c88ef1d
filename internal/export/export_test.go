package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBatchWorkbook(t *testing.T) {
	batch := domain.PaymentBatch{
		BatchNumber:      "PAY-20250315-100000",
		Status:           domain.BatchGenerated,
		ApplicationCount: 2,
		TotalAmount:      decimal.RequireFromString("3500"),
		FileName:         "payment_batch_PAY_20250315_100000.1gx",
		CreatedAt:        time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	items := []domain.PaymentItem{
		{ReferenceNumber: "AES-2025-AAAAAA", PayeeName: "Jane Doe", ScholarshipName: "Rutherford", InstitutionNumber: "001",
			TransitNumber: "12345", AccountNumber: "1234567", Amount: decimal.RequireFromString("2500"), Status: domain.ItemPending},
		{ReferenceNumber: "AES-2025-BBBBBB", PayeeName: "John Roe", ScholarshipName: "Jason Lang", InstitutionNumber: "003",
			TransitNumber: "54321", AccountNumber: "9876", Amount: decimal.RequireFromString("1000"), Status: domain.ItemPending},
	}

	data, err := BatchWorkbook(batch, items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(itemsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, itemsHeader, rows[0])
	assert.Equal(t, "AES-2025-AAAAAA", rows[1][0])
	assert.Equal(t, "****4567", rows[1][5])
	assert.Equal(t, "****9876", rows[2][5])

	total, err := f.GetCellValue(summarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "3500.00", total)
}

func TestBatchWorkbook_Empty(t *testing.T) {
	data, err := BatchWorkbook(domain.PaymentBatch{BatchNumber: "PAY-1", TotalAmount: decimal.Zero}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAuditCSV(t *testing.T) {
	entries := []domain.AuditEntry{
		{
			CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
			UserName:  `Jane "JD" Doe`,
			UserEmail: "jane@example.com",
			UserRole:  "admin",
			Action:    domain.AuditUserRoleChanged,
			Details:   map[string]any{"target_name": "Bob"},
			OldValues: map[string]any{"role": "applicant"},
			NewValues: map[string]any{"role": "finance"},
		},
		{
			CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
			Action:    domain.AuditSFSSync,
		},
	}

	got := AuditCSV(entries)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Timestamp","User","Email","Role","Action","Details","Old Values","New Values"`, lines[0])
	assert.Equal(t, `"2025-03-15T10:00:00Z","Jane ""JD"" Doe","jane@example.com","admin","USER_ROLE_CHANGED",`+
		`"{""target_name"":""Bob""}","{""role"":""applicant""}","{""role"":""finance""}"`, lines[1])
	assert.Equal(t, `"2025-03-14T09:00:00Z","","","","SFS_SYNC","","",""`, lines[2])
}

func TestAuditCSV_HeaderOnly(t *testing.T) {
	assert.Equal(t, `"Timestamp","User","Email","Role","Action","Details","Old Values","New Values"`, AuditCSV(nil))
}

func TestAuditFileName(t *testing.T) {
	assert.Equal(t, "audit_log_2025-03-15.csv", AuditFileName(time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)))
}
