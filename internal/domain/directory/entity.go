package directory

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// ResolveStatus classifies an employee for a day. An approved leave
// covering the day wins over any attendance record, which in turn wins
// over the Absent default.
func ResolveStatus(record *attendance.Attendance, onLeave bool) attendance.Status {
	if onLeave {
		return attendance.StatusLeave
	}
	if record != nil && record.Status != "" {
		return record.Status
	}
	return attendance.StatusAbsent
}
