package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// query is a parsed "key=value ... sort=[-]key" argument list.
type query struct {
	match   map[string]string
	sortBy  string
	reverse bool
}

func knownField(collection, name string) bool {
	if models.IsSystemField(name) {
		return true
	}
	for _, f := range forms[collection] {
		if f.Name == name {
			return true
		}
	}
	return collection == models.CollectionTasks && (name == "completed" || name == "completed_at")
}

func parseQuery(collection string, args []string) (query, error) {
	q := query{match: map[string]string{}}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return query{}, fmt.Errorf("%w: expected key=value, got %q", common.ErrWrite, arg)
		}
		if key == "sort" {
			q.sortBy, q.reverse = strings.TrimPrefix(value, "-"), strings.HasPrefix(value, "-")
			key = q.sortBy
		} else {
			q.match[key] = value
		}
		if !knownField(collection, key) {
			return query{}, fmt.Errorf("%w: %s", common.ErrUnknownColumn, key)
		}
	}
	return q, nil
}

// apply filters rows by case-insensitive equality and sorts them. Without a
// sort key the natural order of the rows is kept.
func (q query) apply(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		if q.matches(r) {
			out = append(out, r)
		}
	}
	if q.sortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i][q.sortBy], out[j][q.sortBy]
			if q.reverse && a != nil && b != nil {
				a, b = b, a
			}
			return lessValue(a, b)
		})
	}
	return out
}

func (q query) matches(r map[string]any) bool {
	for k, want := range q.match {
		if !strings.EqualFold(text(r[k]), want) {
			return false
		}
	}
	return true
}

// lessValue orders numbers numerically and everything else as text; empty
// values go last.
func lessValue(a, b any) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	fa, aok := a.(float64)
	fb, bok := b.(float64)
	if aok && bok {
		return fa < fb
	}
	return strings.ToLower(text(a)) < strings.ToLower(text(b))
}

// text renders a wire value for display and matching. Dates at midnight UTC
// lose their clock part.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			if ts.Equal(models.Day(ts.UTC())) {
				return ts.UTC().Format(dateLayout)
			}
			return ts.Local().Format(dateLayout + " " + clockLayout)
		}
		return t
	case bool:
		if t {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
