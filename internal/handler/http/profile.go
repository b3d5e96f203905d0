package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/directory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const selfProfileID = "me"

type ProfileHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	employeeService  employee.EmployeeService
	directoryService directory.DirectoryService
}

func NewProfileHandler(employeeService employee.EmployeeService, directoryService directory.DirectoryService) ProfileHandler {
	return &ProfileHandlerImpl{
		employeeService:  employeeService,
		directoryService: directoryService,
	}
}

// List implements ProfileHandler.
func (h *ProfileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	entries, err := h.directoryService.List(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Get implements ProfileHandler.
func (h *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == selfProfileID {
		// Admin and HR have an account, not an employee record.
		if p.IsPrivileged() {
			account, err := h.employeeService.GetAccount(r.Context(), p)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			response.Success(w, account)
			return
		}
		id = p.ID
	}
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Employee not found")
		return
	}

	profile, err := h.employeeService.GetProfile(r.Context(), p, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update implements ProfileHandler.
func (h *ProfileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == selfProfileID {
		id = p.ID
	}
	if !validator.IsValidUUID(id) {
		response.NotFound(w, "Employee not found")
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.employeeService.UpdateProfile(r.Context(), p, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", profile)
}
