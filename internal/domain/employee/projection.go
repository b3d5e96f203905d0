package employee

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// CanViewSalary reports whether a viewer may see salary details: Admin
// and HR always, anyone else only on their own profile.
func CanViewSalary(viewerRole user.Role, isOwner bool) bool {
	if isOwner {
		return true
	}
	return user.HasPermission(viewerRole, user.PermissionEmployeeViewSalary)
}

// CanEdit reports whether a viewer may apply an edit to a profile.
func CanEdit(viewerRole user.Role, isOwner bool, touchesAdminFields bool) bool {
	if user.HasPermission(viewerRole, user.PermissionEmployeeManage) {
		return true
	}
	if !isOwner || touchesAdminFields {
		return false
	}
	return user.HasPermission(viewerRole, user.PermissionEditOwnProfile)
}

// ProjectForViewer renders emp for the given viewer. Credentials are never
// included and salary is dropped unless CanViewSalary allows it.
func ProjectForViewer(emp Employee, viewerRole user.Role, isOwner bool, salary *payroll.SalaryView) ProfileResponse {
	skills := emp.Skills
	if skills == nil {
		skills = []string{}
	}
	certifications := emp.Certifications
	if certifications == nil {
		certifications = []string{}
	}

	resp := ProfileResponse{
		ID:               emp.ID,
		EmployeeID:       emp.EmployeeCode,
		Role:             user.RoleEmployee,
		CompanyName:      emp.CompanyName,
		Name:             emp.Name,
		Email:            emp.Email,
		Phone:            emp.Phone,
		JobPosition:      emp.JobPosition,
		Department:       emp.Department,
		Manager:          emp.Manager,
		Location:         emp.Location,
		About:            emp.About,
		LoveJob:          emp.LoveJob,
		Interests:        emp.Interests,
		Skills:           skills,
		Certifications:   certifications,
		JoiningYear:      emp.JoiningYear,
		PaidLeaveBalance: emp.PaidLeaveBalance,
		SickLeaveBalance: emp.SickLeaveBalance,
	}
	if salary != nil && CanViewSalary(viewerRole, isOwner) {
		resp.SalaryDetails = salary
	}
	return resp
}
