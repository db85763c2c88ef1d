package pg

import (
	"strconv"
	"strings"
)

// Filter collects AND-ed WHERE conditions and their positional arguments.
// Conditions use ? for each argument; Where rewrites them to $1, $2, ...
type Filter struct {
	conds []string
	args  []any
}

func (f *Filter) Add(cond string, args ...any) {
	var sb strings.Builder
	i := 0
	for _, r := range cond {
		if r == '?' && i < len(args) {
			f.args = append(f.args, args[i])
			sb.WriteString("$" + strconv.Itoa(len(f.args)))
			i++
			continue
		}
		sb.WriteRune(r)
	}
	f.conds = append(f.conds, sb.String())
}

// Arg appends a bare argument, e.g. for LIMIT, and returns its placeholder.
func (f *Filter) Arg(v any) string {
	f.args = append(f.args, v)
	return "$" + strconv.Itoa(len(f.args))
}

func (f *Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

func (f *Filter) Args() []any {
	return f.args
}
