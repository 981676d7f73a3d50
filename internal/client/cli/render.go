package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/jobkeeper/internal/client/stats"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxCellWidth = 32
	maxBarWidth  = 30
)

type column struct {
	Header string
	Field  string
}

var columns = map[string][]column{
	models.CollectionApplications: {
		{"ID", "id"}, {"COMPANY", "company"}, {"POSITION", "position"}, {"STATUS", "status"},
		{"APPLIED", "applied_date"}, {"PRIORITY", "priority"}, {"LOCATION", "location"},
	},
	models.CollectionInterviews: {
		{"ID", "id"}, {"DATE", "date"}, {"TIME", "time"}, {"COMPANY", "company"},
		{"POSITION", "position"}, {"TYPE", "type"}, {"STATUS", "status"},
	},
	models.CollectionTasks: {
		{"ID", "id"}, {"TITLE", "title"}, {"DUE", "due_date"}, {"PRIORITY", "priority"},
		{"STATUS", "status"}, {"DONE", "completed"},
	},
	models.CollectionContacts: {
		{"ID", "id"}, {"NAME", "name"}, {"COMPANY", "company"}, {"POSITION", "position"},
		{"EMAIL", "email"}, {"PHONE", "phone"},
	},
}

func cell(v any) string {
	s := strings.ReplaceAll(text(v), "\n", " ")
	if s == "" {
		return "-"
	}
	if utf8.RuneCountInString(s) > maxCellWidth {
		r := []rune(s)
		s = string(r[:maxCellWidth-1]) + "…"
	}
	return s
}

func renderTable(w io.Writer, collection string, rows []map[string]any) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No %s.\n", collection)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cols := columns[collection]
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = cell(r[c.Field])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d %s\n", len(rows), collection)
}

// renderCard prints every field of a single record.
func renderCard(w io.Writer, collection string, row map[string]any) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", text(row["id"]))
	for _, f := range forms[collection] {
		fmt.Fprintf(tw, "%s\t%s\n", f.Label, strings.ReplaceAll(text(row[f.Name]), "\n", "\n\t"))
	}
	if collection == models.CollectionTasks {
		fmt.Fprintf(tw, "Completed\t%s\n", text(row["completed"]))
		fmt.Fprintf(tw, "Completed at\t%s\n", text(row["completed_at"]))
	}
	fmt.Fprintf(tw, "Created\t%s\n", text(row["created_at"]))
	fmt.Fprintf(tw, "Updated\t%s\n", text(row["updated_at"]))
	_ = tw.Flush()
}

func percent(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}

func renderDashboard(w io.Writer, s stats.Summary, now time.Time) {
	title := cases.Title(language.English)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	parts := make([]string, 0, len(models.ApplicationStatuses))
	for _, st := range models.ApplicationStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", title.String(string(st)), s.Applications.ByStatus[st]))
	}
	fmt.Fprintf(tw, "Applications\t%d\t%s\n", s.Applications.Total, strings.Join(parts, ", "))
	fmt.Fprintf(tw, "Response rate\t%s\t\n", percent(s.Applications.ResponseRate))
	fmt.Fprintf(tw, "Interviews\t%d\tupcoming %d, this week %d\n", s.Interviews.Total, s.Interviews.Upcoming, s.Interviews.ThisWeek)
	fmt.Fprintf(tw, "Tasks\t%d\tpending %d, overdue %d, done %s\n", s.Tasks.Total, s.Tasks.Pending, s.Tasks.Overdue, percent(s.Tasks.CompletionRate))
	fmt.Fprintf(tw, "Contacts\t%d\t\n", s.Contacts)
	_ = tw.Flush()

	if len(s.Interviews.Next) > 0 {
		fmt.Fprintln(w, "\nUpcoming interviews")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, iv := range s.Interviews.Next {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
				iv.Start(now.Location()).Format(dateLayout+" "+clockLayout), iv.Company, iv.Position,
				iv.Type, title.String(string(iv.Status)))
		}
		_ = tw.Flush()
	}

	if len(s.Tasks.OverdueTasks) > 0 {
		fmt.Fprintln(w, "\nOverdue tasks")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, t := range s.Tasks.OverdueTasks {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", t.DueDate.UTC().Format(dateLayout), t.Title, t.ID)
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w, "\nApplications per month")
	renderChart(w, s.Monthly)
}

// renderChart draws one horizontal bar per month, scaled to the busiest one.
func renderChart(w io.Writer, months []stats.MonthCount) {
	peak := 0
	for _, m := range months {
		peak = max(peak, m.Count)
	}
	for _, m := range months {
		n := 0
		if peak > 0 {
			n = m.Count * maxBarWidth / peak
		}
		if m.Count > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(w, "  %s  %s %d\n", m.Month.Format("Jan 2006"), strings.Repeat("█", n), m.Count)
	}
}

func renderProfile(w io.Writer, p *models.Profile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", p.FullName)
	fmt.Fprintf(tw, "Headline\t%s\n", p.Headline)
	fmt.Fprintf(tw, "Location\t%s\n", p.Location)
	fmt.Fprintf(tw, "Bio\t%s\n", strings.ReplaceAll(p.Bio, "\n", "\n\t"))
	fmt.Fprintf(tw, "Skills\t%s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(tw, "Avatar\t%s\n", text(deref(p.AvatarURL)))
	fmt.Fprintf(tw, "CV\t%s\n", text(deref(p.CVURL)))
	fmt.Fprintf(tw, "Portfolio\t%s\n", text(deref(p.PortfolioURL)))
	_ = tw.Flush()

	if len(p.Experience) == 0 {
		return
	}
	fmt.Fprintln(w, "\nExperience")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range p.Experience {
		end := "now"
		if e.EndDate != nil {
			end = e.EndDate.Format("Jan 2006")
		}
		fmt.Fprintf(tw, "  %s - %s\t%s\t%s\n", e.StartDate.Format("Jan 2006"), end, e.Title, e.Company)
	}
	_ = tw.Flush()
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
