// Package stats derives dashboard figures from collection snapshots. Every
// function is pure and recomputes from its input; nothing is cached.
package stats

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

const week = 7 * 24 * time.Hour

// CountBy counts rows per key.
func CountBy[T any, K comparable](rows []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, r := range rows {
		out[key(r)]++
	}
	return out
}

// Rate is part/total, or 0 when total is 0.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// dayKey compares calendar dates without converting between zones: a date
// column arrives as midnight UTC and must stay on its own day.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

type ApplicationStats struct {
	Total    int
	ByStatus map[models.ApplicationStatus]int

	// Active counts applications still in play (active or interviewing).
	Active   int
	Offers   int
	Rejected int

	// ResponseRate is the share of applications that got any answer:
	// interview, offer or rejected.
	ResponseRate float64
}

func Applications(apps []models.Application) ApplicationStats {
	by := CountBy(apps, func(a models.Application) models.ApplicationStatus { return a.Status })
	responded := by[models.StatusInterview] + by[models.StatusOffer] + by[models.StatusRejected]

	return ApplicationStats{
		Total:        len(apps),
		ByStatus:     by,
		Active:       by[models.StatusActive] + by[models.StatusInterview],
		Offers:       by[models.StatusOffer],
		Rejected:     by[models.StatusRejected],
		ResponseRate: Rate(responded, len(apps)),
	}
}

type InterviewStats struct {
	Total    int
	ByStatus map[models.InterviewStatus]int

	// Upcoming are scheduled today or later and neither cancelled nor done.
	Upcoming int

	// ThisWeek counts interviews starting in [now, now+7d).
	ThisWeek int
	Next     []models.Interview
}

func open(iv models.Interview) bool {
	return iv.Status != models.InterviewCancelled && iv.Status != models.InterviewDone
}

// Interviews computes interview figures. Next lists upcoming interviews by
// start time.
func Interviews(ivs []models.Interview, now time.Time) InterviewStats {
	st := InterviewStats{
		Total:    len(ivs),
		ByStatus: CountBy(ivs, func(iv models.Interview) models.InterviewStatus { return iv.Status }),
		Next:     []models.Interview{},
	}

	today := dayKey(now)
	for _, iv := range ivs {
		if !open(iv) {
			continue
		}
		if dayKey(iv.Date) >= today {
			st.Upcoming++
			st.Next = append(st.Next, iv)
		}
		start := iv.Start(now.Location())
		if !start.Before(now) && start.Before(now.Add(week)) {
			st.ThisWeek++
		}
	}

	sort.SliceStable(st.Next, func(i, j int) bool {
		return st.Next[i].Start(now.Location()).Before(st.Next[j].Start(now.Location()))
	})
	return st
}

type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate float64
	OverdueTasks   []models.Task
}

// Tasks computes task figures. A task is overdue when its due date is before
// today and it is not completed.
func Tasks(tasks []models.Task, now time.Time) TaskStats {
	st := TaskStats{Total: len(tasks), OverdueTasks: []models.Task{}}

	today := dayKey(now)
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
			continue
		}
		st.Pending++
		if t.DueDate != nil && dayKey(*t.DueDate) < today {
			st.Overdue++
			st.OverdueTasks = append(st.OverdueTasks, t)
		}
	}
	st.CompletionRate = Rate(st.Completed, st.Total)
	return st
}

type MonthCount struct {
	Month time.Time
	Count int
}

// MonthlyApplications counts applications per calendar month for the last
// months months, oldest first, ending with the month of now. An application
// counts in the month it was applied, or created when no date was given.
func MonthlyApplications(apps []models.Application, months int, now time.Time) []MonthCount {
	if months <= 0 {
		return []MonthCount{}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	out := make([]MonthCount, months)
	index := make(map[int]int, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i].Month = m
		index[m.Year()*100+int(m.Month())] = i
	}

	for _, a := range apps {
		when := a.CreatedAt.In(now.Location())
		if a.AppliedDate != nil {
			when = *a.AppliedDate
		}
		if i, ok := index[when.Year()*100+int(when.Month())]; ok {
			out[i].Count++
		}
	}
	return out
}

// Snapshot is a consistent copy of the four collections.
type Snapshot struct {
	Applications []models.Application
	Interviews   []models.Interview
	Tasks        []models.Task
	Contacts     []models.Contact
}

type Summary struct {
	Applications ApplicationStats
	Interviews   InterviewStats
	Tasks        TaskStats
	Contacts     int
	Monthly      []MonthCount
}

// DashboardMonths is the width of the monthly chart.
const DashboardMonths = 6

func Dashboard(s Snapshot, now time.Time) Summary {
	return Summary{
		Applications: Applications(s.Applications),
		Interviews:   Interviews(s.Interviews, now),
		Tasks:        Tasks(s.Tasks, now),
		Contacts:     len(s.Contacts),
		Monthly:      MonthlyApplications(s.Applications, DashboardMonths, now),
	}
}
