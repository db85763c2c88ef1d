package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		build     func(f *Filter) string
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "Empty",
			build:     func(f *Filter) string { return f.Where() },
			wantWhere: "",
		},
		{
			name: "Numbers placeholders in order",
			build: func(f *Filter) string {
				f.Add("a.status = ?", "Submitted")
				f.Add("(a.reference_number ILIKE ? OR u.email ILIKE ?)", "%x%", "%x%")
				return f.Where() + " LIMIT " + f.Arg(25)
			},
			wantWhere: "WHERE a.status = $1 AND (a.reference_number ILIKE $2 OR u.email ILIKE $3) LIMIT $4",
			wantArgs:  []any{"Submitted", "%x%", "%x%", 25},
		},
		{
			name: "Condition without arguments",
			build: func(f *Filter) string {
				f.Add("a.status <> 'Draft'")
				return f.Where()
			},
			wantWhere: "WHERE a.status <> 'Draft'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter
			assert.Equal(t, tt.wantWhere, tt.build(&f))
			assert.Equal(t, tt.wantArgs, f.Args())
		})
	}
}
