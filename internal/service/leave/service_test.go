package leave

import (
	"context"
	"sync"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(ctx context.Context) {}

var hrPrincipal = user.Principal{ID: "hr-account", Role: user.RoleHR}

func setup(t *testing.T) (leave.LeaveService, employee.EmployeeRepository, user.Principal) {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)

	emp, err := employees.Create(context.Background(), employee.Employee{
		CompanyName:      "Acme",
		Name:             "Jane Doe",
		Email:            "jane@acme.test",
		Phone:            "0800",
		EmployeeCode:     "JADO20240001",
		JoiningYear:      2024,
		SerialNumber:     1,
		PaidLeaveBalance: employee.DefaultPaidLeaveBalance,
		SickLeaveBalance: employee.DefaultSickLeaveBalance,
	})
	require.NoError(t, err)

	svc := NewLeaveService(memory.NewTransactor(store), memory.NewLeaveRequestRepository(store), employees, noopInvalidator{})
	return svc, employees, user.Principal{ID: emp.ID, Role: user.RoleEmployee}
}

func apply(t *testing.T, svc leave.LeaveService, p user.Principal, leaveType leave.LeaveType, start, end string) leave.LeaveResponse {
	t.Helper()
	resp, err := svc.Apply(context.Background(), p, leave.CreateLeaveRequest{
		LeaveType: string(leaveType),
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	return resp
}

func TestLeaveService_Apply_Pending(t *testing.T) {
	svc, _, emp := setup(t)

	resp := apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-10")

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 5, resp.DaysCount)
	assert.Equal(t, emp.ID, resp.EmployeeID)
}

func TestLeaveService_Apply_SameDay(t *testing.T) {
	svc, _, emp := setup(t)

	resp := apply(t, svc, emp, leave.TypeSickLeave, "2024-05-06", "2024-05-06")
	assert.Equal(t, 1, resp.DaysCount)
}

func TestLeaveService_Apply_InvalidRange(t *testing.T) {
	svc, _, emp := setup(t)

	_, err := svc.Apply(context.Background(), emp, leave.CreateLeaveRequest{
		LeaveType: string(leave.TypePaidTimeOff),
		StartDate: "2024-05-10",
		EndDate:   "2024-05-06",
	})
	assert.Error(t, err)
}

func TestLeaveService_Apply_HRForbidden(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Apply(context.Background(), hrPrincipal, leave.CreateLeaveRequest{
		LeaveType: string(leave.TypePaidTimeOff),
		StartDate: "2024-05-06",
		EndDate:   "2024-05-06",
	})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestLeaveService_SetStatus_ApproveDebitsOnce(t *testing.T) {
	svc, employees, emp := setup(t)
	req := apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-08")

	approve := leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)}
	resp, err := svc.SetStatus(context.Background(), hrPrincipal, req.ID, approve)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)

	// Repeating the approval is a no-op.
	_, err = svc.SetStatus(context.Background(), hrPrincipal, req.ID, approve)
	require.NoError(t, err)

	got, err := employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance-3, got.PaidLeaveBalance)
	assert.Equal(t, employee.DefaultSickLeaveBalance, got.SickLeaveBalance)
}

func TestLeaveService_SetStatus_ConcurrentApprovals(t *testing.T) {
	svc, employees, emp := setup(t)
	req := apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-08")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SetStatus(context.Background(), hrPrincipal, req.ID, leave.UpdateLeaveStatusRequest{
				Status: string(leave.StatusApproved),
			})
		}()
	}
	wg.Wait()

	got, err := employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance-3, got.PaidLeaveBalance)
}

func TestLeaveService_SetStatus_SickDebitsSickBalance(t *testing.T) {
	svc, employees, emp := setup(t)
	req := apply(t, svc, emp, leave.TypeSickLeave, "2024-05-06", "2024-05-07")

	_, err := svc.SetStatus(context.Background(), hrPrincipal, req.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	got, err := employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultSickLeaveBalance-2, got.SickLeaveBalance)
	assert.Equal(t, employee.DefaultPaidLeaveBalance, got.PaidLeaveBalance)
}

func TestLeaveService_SetStatus_UnpaidLeavesBalancesAlone(t *testing.T) {
	svc, employees, emp := setup(t)
	req := apply(t, svc, emp, leave.TypeUnpaidLeave, "2024-05-06", "2024-05-10")

	_, err := svc.SetStatus(context.Background(), hrPrincipal, req.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	got, err := employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance, got.PaidLeaveBalance)
	assert.Equal(t, employee.DefaultSickLeaveBalance, got.SickLeaveBalance)
}

func TestLeaveService_SetStatus_RejectRecordsComment(t *testing.T) {
	svc, employees, emp := setup(t)
	req := apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-08")
	comment := "Busy week"

	resp, err := svc.SetStatus(context.Background(), hrPrincipal, req.ID, leave.UpdateLeaveStatusRequest{
		Status:       string(leave.StatusRejected),
		AdminComment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	require.NotNil(t, resp.AdminComment)
	assert.Equal(t, comment, *resp.AdminComment)

	_, err = svc.SetStatus(context.Background(), hrPrincipal, req.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	got, err := employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance, got.PaidLeaveBalance)
}

func TestLeaveService_SetStatus_NotFound(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.SetStatus(context.Background(), hrPrincipal, "0190f3a6-8a40-7c1e-9b2a-000000000000", leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_SetStatus_EmployeeForbidden(t *testing.T) {
	svc, _, emp := setup(t)
	req := apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-08")

	_, err := svc.SetStatus(context.Background(), emp, req.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestLeaveService_Lists(t *testing.T) {
	svc, _, emp := setup(t)
	apply(t, svc, emp, leave.TypePaidTimeOff, "2024-05-06", "2024-05-08")
	apply(t, svc, emp, leave.TypeSickLeave, "2024-06-06", "2024-06-06")

	mine, err := svc.ListMine(context.Background(), emp)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.ListAll(context.Background(), hrPrincipal)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Employee)
	assert.Equal(t, "Jane Doe", all[0].Employee.Name)

	_, err = svc.ListAll(context.Background(), emp)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}
