package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// StandardWorkHours is the length of a regular workday; anything above
// counts as extra hours.
const StandardWorkHours = 9.0

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	WorkHours  float64
	ExtraHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
}

// ComputeHours returns the worked and extra hours between check-in and
// check-out, both rounded to two decimals.
func ComputeHours(checkIn, checkOut time.Time) (workHours, extraHours float64) {
	elapsed := checkOut.Sub(checkIn).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	workHours = round2(elapsed)
	if workHours > StandardWorkHours {
		extraHours = round2(workHours - StandardWorkHours)
	}
	return workHours, extraHours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateOf truncates t to its calendar day in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
