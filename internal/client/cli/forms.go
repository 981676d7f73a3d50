package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindLongText
	kindDate
	kindClock
	kindInt
	kindEnum
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	// clearValue typed at an edit prompt empties an optional field.
	clearValue = "-"
)

// field is one editable column of a collection form.
type field struct {
	Name     string
	Label    string
	Kind     fieldKind
	Required bool
	Options  []string
}

func strs[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

var priorities = []string{string(models.PriorityLow), string(models.PriorityMedium), string(models.PriorityHigh)}

var forms = map[string][]field{
	models.CollectionApplications: {
		{Name: "company", Label: "Company", Required: true},
		{Name: "position", Label: "Position", Required: true},
		{Name: "location", Label: "Location"},
		{Name: "status", Label: "Status", Kind: kindEnum, Options: strs(models.ApplicationStatuses)},
		{Name: "applied_date", Label: "Applied (YYYY-MM-DD)", Kind: kindDate},
		{Name: "salary_min", Label: "Salary min", Kind: kindInt},
		{Name: "salary_max", Label: "Salary max", Kind: kindInt},
		{Name: "priority", Label: "Priority", Kind: kindEnum, Options: priorities},
		{Name: "contact_person", Label: "Contact person"},
		{Name: "contact_email", Label: "Contact email"},
		{Name: "job_url", Label: "Job URL"},
		{Name: "notes", Label: "Notes", Kind: kindLongText},
	},
	models.CollectionInterviews: {
		{Name: "application_id", Label: "Application id"},
		{Name: "company", Label: "Company", Required: true},
		{Name: "position", Label: "Position", Required: true},
		{Name: "date", Label: "Date (YYYY-MM-DD)", Kind: kindDate, Required: true},
		{Name: "time", Label: "Time (HH:MM)", Kind: kindClock, Required: true},
		{Name: "type", Label: "Type", Kind: kindEnum, Required: true, Options: []string{
			string(models.InterviewPhone), string(models.InterviewVideo), string(models.InterviewOnsite),
			string(models.InterviewTechnical), string(models.InterviewHR),
		}},
		{Name: "location", Label: "Location"},
		{Name: "interviewer", Label: "Interviewer"},
		{Name: "duration", Label: "Duration (minutes)", Kind: kindInt},
		{Name: "status", Label: "Status", Kind: kindEnum, Options: strs(models.InterviewStatuses)},
		{Name: "meeting_link", Label: "Meeting link"},
		{Name: "notes", Label: "Notes", Kind: kindLongText},
	},
	models.CollectionTasks: {
		{Name: "title", Label: "Title", Required: true},
		{Name: "description", Label: "Description", Kind: kindLongText},
		{Name: "application_id", Label: "Application id"},
		{Name: "due_date", Label: "Due (YYYY-MM-DD)", Kind: kindDate},
		{Name: "priority", Label: "Priority", Kind: kindEnum, Options: priorities},
		{Name: "status", Label: "Status", Kind: kindEnum, Options: []string{
			string(models.TaskTodo), string(models.TaskInProgress), string(models.TaskDone),
		}},
		{Name: "category", Label: "Category"},
	},
	models.CollectionContacts: {
		{Name: "name", Label: "Name", Required: true},
		{Name: "email", Label: "Email"},
		{Name: "phone", Label: "Phone"},
		{Name: "company", Label: "Company"},
		{Name: "position", Label: "Position"},
		{Name: "linkedin_url", Label: "LinkedIn URL"},
		{Name: "last_contact_date", Label: "Last contact (YYYY-MM-DD)", Kind: kindDate},
		{Name: "notes", Label: "Notes", Kind: kindLongText},
	},
}

var collectionAliases = map[string]string{
	"a": models.CollectionApplications, "app": models.CollectionApplications, "apps": models.CollectionApplications,
	"application": models.CollectionApplications, models.CollectionApplications: models.CollectionApplications,
	"i": models.CollectionInterviews, "interview": models.CollectionInterviews, models.CollectionInterviews: models.CollectionInterviews,
	"t": models.CollectionTasks, "task": models.CollectionTasks, models.CollectionTasks: models.CollectionTasks,
	"c": models.CollectionContacts, "contact": models.CollectionContacts, models.CollectionContacts: models.CollectionContacts,
}

func resolveCollection(name string) (string, error) {
	if c, ok := collectionAliases[strings.ToLower(name)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown collection %q (applications, interviews, tasks, contacts)", name)
}

// parseValue converts raw input for f into the value sent to the server.
func parseValue(f field, raw string) (any, error) {
	switch f.Kind {
	case kindDate:
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: expected YYYY-MM-DD", common.ErrWrite, f.Name)
		}
		return t, nil
	case kindClock:
		if _, err := time.Parse(clockLayout, raw); err != nil {
			return nil, fmt.Errorf("%w: %s: expected HH:MM", common.ErrWrite, f.Name)
		}
		return raw, nil
	case kindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: not a number", common.ErrWrite, f.Name)
		}
		return n, nil
	case kindEnum:
		for _, o := range f.Options {
			if strings.EqualFold(o, raw) {
				return o, nil
			}
		}
		return nil, fmt.Errorf("%w: %s: one of %s", common.ErrWrite, f.Name, strings.Join(f.Options, ", "))
	default:
		return raw, nil
	}
}

// prompt returns the label shown for f, with the current value when editing.
func (f field) prompt(current any) string {
	p := f.Label
	if f.Kind == kindEnum {
		p += " [" + strings.Join(f.Options, "|") + "]"
	}
	if f.Required {
		p += " *"
	}
	if current != nil {
		p += " (" + text(current) + ")"
	}
	return p
}

// decodePatch fills dst from patch the same way the server would echo it.
func decodePatch(patch models.Patch, dst any) error {
	b, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}
	return nil
}

// rowMap flattens a record into its wire fields.
func rowMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	m := map[string]any{}
	_ = json.Unmarshal(b, &m)
	return m
}

func rowMaps[T any](rows []T) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = rowMap(r)
	}
	return out
}

// fillNew asks for every field of a new record. Optional fields may be left
// empty; required ones are asked again.
func fillNew(reader *bufio.Reader, w io.Writer, fields []field) (models.Patch, error) {
	patch := models.Patch{}
	for _, f := range fields {
		for {
			raw, err := readField(reader, w, f, nil)
			if err != nil {
				return nil, err
			}
			if raw == "" {
				if f.Required {
					fmt.Fprintf(w, "%s is required\n", f.Label)
					continue
				}
				break
			}
			v, err := parseValue(f, raw)
			if err != nil {
				fmt.Fprintln(w, describe(err))
				continue
			}
			patch[f.Name] = v
			break
		}
	}
	return patch, nil
}

// fillEdit asks for every field showing its current value. Empty input keeps
// the value, clearValue empties it. Only changed fields end up in the patch.
func fillEdit(reader *bufio.Reader, w io.Writer, fields []field, current map[string]any) (models.Patch, error) {
	patch := models.Patch{}
	for _, f := range fields {
		for {
			raw, err := readField(reader, w, f, current[f.Name])
			if err != nil {
				return nil, err
			}
			if raw == "" {
				break
			}
			if raw == clearValue {
				if f.Required {
					fmt.Fprintf(w, "%s is required\n", f.Label)
					continue
				}
				if current[f.Name] != nil {
					patch[f.Name] = nil
				}
				break
			}
			v, err := parseValue(f, raw)
			if err != nil {
				fmt.Fprintln(w, describe(err))
				continue
			}
			if text(rowMap(map[string]any{"v": v})["v"]) != text(current[f.Name]) {
				patch[f.Name] = v
			}
			break
		}
	}
	return patch, nil
}

func readField(reader *bufio.Reader, w io.Writer, f field, current any) (string, error) {
	if f.Kind == kindLongText {
		return getMultiline(reader, f.prompt(current), w)
	}
	return getSimpleText(reader, f.prompt(current), w)
}
