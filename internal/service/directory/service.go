package directory

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/directory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cache"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("attendance-backend/directory")

type DirectoryServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	cache          cache.Cache
	ttl            time.Duration
	loc            *time.Location
	now            func() time.Time

	// generation is bumped by every Invalidate
	generation atomic.Uint64
}

func NewDirectoryService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	store cache.Cache,
	ttl time.Duration,
	loc *time.Location,
) directory.DirectoryService {
	return &DirectoryServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		cache:          store,
		ttl:            ttl,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *DirectoryServiceImpl) today() time.Time {
	return attendance.DateOf(s.now(), s.loc)
}

func cacheKey(date time.Time) string {
	return "directory:" + date.Format("2006-01-02")
}

// List implements directory.DirectoryService.
func (s *DirectoryServiceImpl) List(ctx context.Context, principal user.Principal) ([]directory.EntryResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionEmployeeViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	ctx, span := tracer.Start(ctx, "directory.List")
	defer span.End()

	date := s.today()
	key := cacheKey(date)

	var cached []directory.EntryResponse
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Directory cache read failed", "key", key, "error", err)
	} else if found {
		return cached, nil
	}

	generation := s.generation.Load()

	var (
		employees []employee.Employee
		records   []attendance.Attendance
		leaves    []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{From: &date, To: &date})
		if err != nil {
			return fmt.Errorf("failed to list today's attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedCovering(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := buildEntries(employees, records, leaves)

	// Not cached when an Invalidate ran during the build.
	if s.generation.Load() != generation {
		return entries, nil
	}
	if err := s.cache.Set(ctx, key, entries, s.ttl); err != nil {
		slog.Warn("Directory cache write failed", "key", key, "error", err)
	}
	return entries, nil
}

// Invalidate implements directory.Invalidator.
func (s *DirectoryServiceImpl) Invalidate(ctx context.Context) {
	s.generation.Add(1)
	key := cacheKey(s.today())
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Directory cache invalidation failed", "key", key, "error", err)
	}
}

func buildEntries(employees []employee.Employee, records []attendance.Attendance, leaves []leave.LeaveRequest) []directory.EntryResponse {
	recordByEmployee := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		recordByEmployee[records[i].EmployeeID] = &records[i]
	}
	onLeave := make(map[string]bool, len(leaves))
	for _, request := range leaves {
		onLeave[request.EmployeeID] = true
	}

	entries := make([]directory.EntryResponse, 0, len(employees))
	for _, emp := range employees {
		entries = append(entries, directory.EntryResponse{
			ID:          emp.ID,
			EmployeeID:  emp.EmployeeCode,
			Name:        emp.Name,
			Email:       emp.Email,
			Phone:       emp.Phone,
			JobPosition: emp.JobPosition,
			Department:  emp.Department,
			Location:    emp.Location,
			Status:      directory.ResolveStatus(recordByEmployee[emp.ID], onLeave[emp.ID]),
		})
	}
	return entries
}
