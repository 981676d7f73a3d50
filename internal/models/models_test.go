package models

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsSystemField(t *testing.T) {
	for _, f := range []string{"id", "user_id", "created_at", "updated_at"} {
		assert.True(t, IsSystemField(f), f)
	}
	assert.False(t, IsSystemField("company"))
}

func TestTask_TogglePatch(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	open := Task{ID: "t1", Status: TaskTodo}
	assert.Equal(t, Patch{"completed": true, "status": "done", "completed_at": now}, open.TogglePatch(now, ""))

	done := Task{ID: "t1", Completed: true, Status: TaskDone, CompletedAt: &now}
	assert.Equal(t, Patch{"completed": false, "status": "todo", "completed_at": nil}, done.TogglePatch(now, ""))
	assert.Equal(t, Patch{"completed": false, "status": "todo", "completed_at": nil}, done.TogglePatch(now, TaskDone))
	assert.Equal(t, Patch{"completed": false, "status": "in-progress", "completed_at": nil}, done.TogglePatch(now, TaskInProgress))
}

func TestClone_SharesNoOptionalField(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	a := Application{ID: "a1", Location: Ptr("Paris"), AppliedDate: &day, SalaryMin: Ptr(int64(1))}
	ac := a.Clone()
	*ac.Location = "Lyon"
	*ac.AppliedDate = day.AddDate(0, 0, 1)
	*ac.SalaryMin = 2
	assert.Equal(t, "Paris", *a.Location)
	assert.Equal(t, day, *a.AppliedDate)
	assert.Equal(t, int64(1), *a.SalaryMin)
	assert.Nil(t, ac.Notes)

	task := Task{ID: "t1", Priority: Ptr(PriorityHigh), CompletedAt: &day}
	tc := task.Clone()
	*tc.Priority = PriorityLow
	*tc.CompletedAt = day.Add(time.Hour)
	assert.Equal(t, PriorityHigh, *task.Priority)
	assert.Equal(t, day, *task.CompletedAt)

	iv := Interview{ID: "i1", MeetingLink: Ptr("https://meet")}
	ic := iv.Clone()
	*ic.MeetingLink = "x"
	assert.Equal(t, "https://meet", *iv.MeetingLink)

	c := Contact{ID: "c1", Email: Ptr("a@b.c")}
	cc := c.Clone()
	*cc.Email = "x"
	assert.Equal(t, "a@b.c", *c.Email)
}

func TestInterview_Start(t *testing.T) {
	iv := Interview{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Time: "14:30"}
	assert.Equal(t, time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC), iv.Start(time.UTC))

	iv.Time = "soon"
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), iv.Start(time.UTC))
}

func TestNaturalOrders(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	apps := []Application{{ID: "old", CreatedAt: t0}, {ID: "new", CreatedAt: t0.Add(time.Hour)}}
	sort.SliceStable(apps, func(i, j int) bool { return ApplicationLess(apps[i], apps[j]) })
	assert.Equal(t, "new", apps[0].ID)

	ivs := []Interview{
		{ID: "b", Date: t0.AddDate(0, 0, 1), Time: "09:00"},
		{ID: "a2", Date: t0, Time: "15:00"},
		{ID: "a1", Date: t0, Time: "09:00"},
	}
	sort.SliceStable(ivs, func(i, j int) bool { return InterviewLess(ivs[i], ivs[j]) })
	assert.Equal(t, []string{"a1", "a2", "b"}, []string{ivs[0].ID, ivs[1].ID, ivs[2].ID})

	cs := []Contact{{Name: "bob"}, {Name: "Alice"}, {Name: "carol"}}
	sort.SliceStable(cs, func(i, j int) bool { return ContactLess(cs[i], cs[j]) })
	assert.Equal(t, "Alice", cs[0].Name)
	assert.Equal(t, "carol", cs[2].Name)
}

func TestDay(t *testing.T) {
	in := time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Day(in))
}
