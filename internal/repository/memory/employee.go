package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) GetByEmailOrCode(ctx context.Context, identifier string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, emp := range r.store.employees {
		if emp.Email == identifier || emp.EmployeeCode == identifier {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, emp := range r.store.employees {
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepository) NextSerialNumber(ctx context.Context, companyName string, joiningYear int) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	highest := 0
	for _, emp := range r.store.employees {
		if emp.CompanyName == companyName && emp.JoiningYear == joiningYear && emp.SerialNumber > highest {
			highest = emp.SerialNumber
		}
	}
	return highest + 1, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if emp.EmployeeCode == newEmployee.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	stamp(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	r.store.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.employees[updated.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	for id, emp := range r.store.employees {
		if id != updated.ID && emp.EmployeeCode == updated.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	// Balances and credentials are owned by other operations.
	updated.Email = current.Email
	updated.PasswordHash = current.PasswordHash
	updated.PaidLeaveBalance = current.PaidLeaveBalance
	updated.SickLeaveBalance = current.SickLeaveBalance
	updated.CreatedAt = current.CreatedAt
	stamp(&updated.CreatedAt, &updated.UpdatedAt)

	r.store.employees[updated.ID] = updated
	return updated, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		employees = append(employees, emp)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})
	return employees, nil
}

func (r *employeeRepository) DebitLeaveBalance(ctx context.Context, id string, kind employee.BalanceKind, days int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	switch kind {
	case employee.BalancePaid:
		emp.PaidLeaveBalance -= days
	case employee.BalanceSick:
		emp.SickLeaveBalance -= days
	default:
		return employee.ErrInvalidBalanceKind
	}
	r.store.employees[id] = emp
	return nil
}

func (r *employeeRepository) ResetLeaveBalances(ctx context.Context, paid, sick int) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, emp := range r.store.employees {
		emp.PaidLeaveBalance = paid
		emp.SickLeaveBalance = sick
		r.store.employees[id] = emp
	}
	return int64(len(r.store.employees)), nil
}
