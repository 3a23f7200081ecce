package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler admin專用操作, 路由層已掛RequireRole(admin)
type AdminHandler struct {
	userService service.IUserService
}

func NewAdminHandler(userService service.IUserService) *AdminHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AdminHandler{
		userService: userService,
	}
}

// @Summary list users
// @list all registered users, admin only
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /admin/users [get]
func (a *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.userService.ListUsers(r.Context())
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	userDTOs := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTOs = append(userDTOs, convertUserModelToDTO(user))
	}

	api.SuccessJSON(w, userDTOs, nil)
}

// @Summary set user role
// @promote or demote a user, demoting the last administrator is rejected
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param roleInfo body dto.SetUserRoleDTO true "new role"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /admin/users/{id}/role [patch]
func (a *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "user id is invalid"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	var roleDTO dto.SetUserRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&roleDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	updated, err := a.userService.SetUserRole(r.Context(), targetID, roleDTO.Role)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*updated), nil)
}
