package directory

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type EntryResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employeeId"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	JobPosition *string           `json:"jobPosition"`
	Department  *string           `json:"department"`
	Location    *string           `json:"location"`
	Status      attendance.Status `json:"status"`
}
