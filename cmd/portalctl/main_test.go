package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestReadSubmissions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name:     "Array",
			input:    `[{"email":"a@b.ca","scholarship_code":"MERIT-01"},{"email":"c@d.ca"}]`,
			expected: []string{"a@b.ca", "c@d.ca"},
		},
		{
			name:     "Wrapped",
			input:    ` {"file_name":"x.json","submissions":[{"email":"a@b.ca"}]}`,
			expected: []string{"a@b.ca"},
		},
		{
			name:    "Garbage",
			input:   `not json`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs, err := readSubmissions(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var emails []string
			for _, s := range subs {
				emails = append(emails, s.Email)
			}
			assert.Equal(t, tt.expected, emails)
		})
	}
}

func TestPrintImportResult(t *testing.T) {
	var buf bytes.Buffer
	printImportResult(&buf, &domain.ImportResult{Imported: 1, Failed: 1, Total: 2,
		Errors: []domain.ImportRowError{{Email: "x@y.ca", Error: "Scholarship not found"}}})

	assert.Equal(t, "imported 1 of 2 (1 failed)\n  x@y.ca: Scholarship not found\n", buf.String())
}

func TestHashPasswordCmd(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"hash-password", "s3cret"})

	require.NoError(t, root.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestImportLegacyCmd_RequiresAdminEmail(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"import-legacy", "paper.json"})

	err := root.Execute()

	assert.ErrorContains(t, err, "admin-email")
}
