package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
	id, company_name, name, email, phone, password_hash, employee_code,
	job_position, department, manager, location, about, love_job, interests,
	skills, certifications, salary_details, joining_year, serial_number,
	paid_leave_balance, sick_leave_balance, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyName, &emp.Name, &emp.Email, &emp.Phone, &emp.PasswordHash, &emp.EmployeeCode,
		&emp.JobPosition, &emp.Department, &emp.Manager, &emp.Location, &emp.About, &emp.LoveJob, &emp.Interests,
		&emp.Skills, &emp.Certifications, &emp.SalaryDetails, &emp.JoiningYear, &emp.SerialNumber,
		&emp.PaidLeaveBalance, &emp.SickLeaveBalance, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmailOrCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmailOrCode(ctx context.Context, identifier string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 OR employee_code = $1 LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by identifier: %w", err)
	}
	return emp, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

// NextSerialNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) NextSerialNumber(ctx context.Context, companyName string, joiningYear int) (int, error) {
	q := GetQuerier(ctx, e.db)

	// Held until commit, so two signups for the same company and year
	// cannot read the same maximum.
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`, companyName, joiningYear); err != nil {
		return 0, fmt.Errorf("failed to lock employee serial: %w", err)
	}

	var next int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(MAX(serial_number), 0) + 1
		FROM employees
		WHERE company_name = $1 AND joining_year = $2
	`, companyName, joiningYear).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute employee serial: %w", err)
	}
	return next, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}
	newEmployee.ID = id.String()
	if newEmployee.Skills == nil {
		newEmployee.Skills = []string{}
	}
	if newEmployee.Certifications == nil {
		newEmployee.Certifications = []string{}
	}

	query := `
		INSERT INTO employees (
			id, company_name, name, email, phone, password_hash, employee_code,
			job_position, department, manager, location, about, love_job, interests,
			skills, certifications, salary_details, joining_year, serial_number,
			paid_leave_balance, sick_leave_balance
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.CompanyName,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.PasswordHash,
		newEmployee.EmployeeCode,
		newEmployee.JobPosition,
		newEmployee.Department,
		newEmployee.Manager,
		newEmployee.Location,
		newEmployee.About,
		newEmployee.LoveJob,
		newEmployee.Interests,
		newEmployee.Skills,
		newEmployee.Certifications,
		newEmployee.SalaryDetails,
		newEmployee.JoiningYear,
		newEmployee.SerialNumber,
		newEmployee.PaidLeaveBalance,
		newEmployee.SickLeaveBalance,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, uniqueEmployeeError(err)
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository. Leave balances are not
// written here; they only move through DebitLeaveBalance and
// ResetLeaveBalances.
func (e *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			company_name = $2, name = $3, phone = $4, employee_code = $5,
			job_position = $6, department = $7, manager = $8, location = $9,
			about = $10, love_job = $11, interests = $12, skills = $13,
			certifications = $14, salary_details = $15, joining_year = $16,
			serial_number = $17, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	skills := updated.Skills
	if skills == nil {
		skills = []string{}
	}
	certifications := updated.Certifications
	if certifications == nil {
		certifications = []string{}
	}

	emp, err := scanEmployee(q.QueryRow(ctx, query,
		updated.ID,
		updated.CompanyName,
		updated.Name,
		updated.Phone,
		updated.EmployeeCode,
		updated.JobPosition,
		updated.Department,
		updated.Manager,
		updated.Location,
		updated.About,
		updated.LoveJob,
		updated.Interests,
		skills,
		certifications,
		updated.SalaryDetails,
		updated.JoiningYear,
		updated.SerialNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, uniqueEmployeeError(err)
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// DebitLeaveBalance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DebitLeaveBalance(ctx context.Context, id string, kind employee.BalanceKind, days int) error {
	q := GetQuerier(ctx, e.db)

	var query string
	switch kind {
	case employee.BalancePaid:
		query = `UPDATE employees SET paid_leave_balance = paid_leave_balance - $2, updated_at = NOW() WHERE id = $1`
	case employee.BalanceSick:
		query = `UPDATE employees SET sick_leave_balance = sick_leave_balance - $2, updated_at = NOW() WHERE id = $1`
	default:
		return employee.ErrInvalidBalanceKind
	}

	tag, err := q.Exec(ctx, query, id, days)
	if err != nil {
		return fmt.Errorf("failed to debit %s leave balance: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ResetLeaveBalances implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ResetLeaveBalances(ctx context.Context, paid, sick int) (int64, error) {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET paid_leave_balance = $1, sick_leave_balance = $2, updated_at = NOW()
	`, paid, sick)
	if err != nil {
		return 0, fmt.Errorf("failed to reset leave balances: %w", err)
	}
	return tag.RowsAffected(), nil
}

func uniqueEmployeeError(err error) error {
	if constraintName(err) == "employees_employee_code_key" {
		return employee.ErrEmployeeCodeExists
	}
	return employee.ErrEmailExists
}
