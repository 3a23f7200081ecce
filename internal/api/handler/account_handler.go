package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

type AccountHandler struct {
	userService service.IUserService
}

func NewAccountHandler(userService service.IUserService) *AccountHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AccountHandler{
		userService: userService,
	}
}

// @Summary update account profile
// @update store name and store address of current user
// @Tags account
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileDTO true "profile fields"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /account [patch]
func (a *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	var profileDTO dto.UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&profileDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	updated, err := a.userService.UpdateProfile(r.Context(), user.ID, &model.UpdateUserProfileModel{
		StoreName:    profileDTO.StoreName,
		StoreAddress: profileDTO.StoreAddress,
	})
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

// @Summary change password
// @verify current password then set a new one
// @Tags account
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordDTO true "current and new password"
// @Success 200 {object} api.Response{data=dto.MessageResponse} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /account/password [patch]
func (a *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	var passwordDTO dto.ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&passwordDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	err := a.userService.ChangePassword(r.Context(), user.ID, passwordDTO.CurrentPassword, passwordDTO.NewPassword)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, dto.MessageResponse{Message: "password updated"}, nil)
}
