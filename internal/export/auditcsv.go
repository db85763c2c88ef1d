package export

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
)

var auditHeader = []string{"Timestamp", "User", "Email", "Role", "Action", "Details", "Old Values", "New Values"}

// AuditCSV renders audit entries with every field quoted and embedded
// quotes doubled. Rows are separated by "\n".
func AuditCSV(entries []domain.AuditEntry) string {
	var sb strings.Builder
	writeCSVRow(&sb, auditHeader)
	for _, e := range entries {
		sb.WriteByte('\n')
		writeCSVRow(&sb, []string{
			e.CreatedAt.UTC().Format(time.RFC3339Nano),
			e.UserName,
			e.UserEmail,
			e.UserRole,
			e.Action,
			jsonField(e.Details),
			jsonField(e.OldValues),
			jsonField(e.NewValues),
		})
	}
	return sb.String()
}

func writeCSVRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
}

func jsonField(m map[string]any) string {
	if m == nil {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// AuditFileName names the export after the day it was taken.
func AuditFileName(now time.Time) string {
	return "audit_log_" + now.UTC().Format(time.DateOnly) + ".csv"
}
