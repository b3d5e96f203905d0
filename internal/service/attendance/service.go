package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/directory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("attendance-backend/attendance")

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	directory directory.Invalidator
	loc       *time.Location
	now       func() time.Time
}

// today returns the current instant and its calendar day in the service timezone.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().UTC().Truncate(time.Second)
	return now, attendance.DateOf(now, s.loc)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, principal user.Principal) (attendance.AttendanceResponse, error) {
	ctx, span := tracer.Start(ctx, "attendance.CheckIn", trace.WithAttributes(attribute.String("employee.id", principal.ID)))
	defer span.End()

	if !user.HasPermission(principal.Role, user.PermissionAttendanceCreate) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	now, date := s.today()
	record := attendance.Attendance{
		EmployeeID: principal.ID,
		Date:       date,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	}

	created, inserted, err := s.AttendanceRepository.CreateIfAbsent(ctx, record)
	if err != nil {
		span.RecordError(err)
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	if !inserted {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	s.directory.Invalidate(ctx)
	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, principal user.Principal) (attendance.AttendanceResponse, error) {
	ctx, span := tracer.Start(ctx, "attendance.CheckOut", trace.WithAttributes(attribute.String("employee.id", principal.ID)))
	defer span.End()

	if !user.HasPermission(principal.Role, user.PermissionAttendanceCreate) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	now, date := s.today()
	var updated attendance.Attendance

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.AttendanceRepository.LockByEmployeeAndDate(ctx, principal.ID, date)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		if record == nil || record.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if record.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		record.CheckOut = &now
		record.WorkHours, record.ExtraHours = attendance.ComputeHours(*record.CheckIn, now)

		if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		updated = *record
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.directory.Invalidate(ctx)
	return updated.ToResponse(), nil
}

// GetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStatus(ctx context.Context, principal user.Principal) (attendance.AttendanceResponse, error) {
	_, date := s.today()

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, principal.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AbsentStatus(principal.ID, date), nil
	}
	return record.ToResponse(), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, principal user.Principal, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := req.Filter()
	if !user.HasPermission(principal.Role, user.PermissionAttendanceViewAll) {
		// Employees only ever see their own rows, whatever employeeId says.
		ownID := principal.ID
		filter.EmployeeID = &ownID
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses, nil
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	invalidator directory.Invalidator,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		directory:            invalidator,
		loc:                  loc,
		now:                  time.Now,
	}
}
