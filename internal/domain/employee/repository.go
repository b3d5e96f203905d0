package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByEmailOrCode resolves an employee login identifier.
	GetByEmailOrCode(ctx context.Context, identifier string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// NextSerialNumber returns the next serial for the company and joining
	// year. Inside a transaction it serializes concurrent signups for the
	// same pair until commit.
	NextSerialNumber(ctx context.Context, companyName string, joiningYear int) (int, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// DebitLeaveBalance subtracts days from the counter in a single
	// statement. Balances may go negative.
	DebitLeaveBalance(ctx context.Context, id string, kind BalanceKind, days int) error
	// ResetLeaveBalances sets every employee's counters and returns the
	// number of rows touched.
	ResetLeaveBalances(ctx context.Context, paid, sick int) (int64, error)
}
