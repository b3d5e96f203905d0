package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) CreateIfAbsent(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.attendances {
		if existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date) {
			return attendance.Attendance{}, false, nil
		}
	}

	record.ID = newID()
	stamp(&record.CreatedAt, &record.UpdatedAt)
	r.store.attendances[record.ID] = record
	return record, true, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, existing := range r.store.attendances {
		if existing.EmployeeID == employeeID && existing.Date.Equal(date) {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

// LockByEmployeeAndDate relies on the transactor lock held by the caller.
func (r *attendanceRepository) LockByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.attendances[record.ID]
	if !ok {
		return attendance.ErrNotCheckedIn
	}
	record.CreatedAt = current.CreatedAt
	stamp(&record.CreatedAt, &record.UpdatedAt)
	r.store.attendances[record.ID] = record
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendances {
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.From != nil && record.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && record.Date.After(*filter.To) {
			continue
		}
		if emp, ok := r.store.employees[record.EmployeeID]; ok {
			name, code := emp.Name, emp.EmployeeCode
			record.EmployeeName = &name
			record.EmployeeCode = &code
			record.EmployeeDepartment = emp.Department
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})
	return records, nil
}
