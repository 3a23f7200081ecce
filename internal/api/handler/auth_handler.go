package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary create account
// @register a new account with email, username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param accountInfo body dto.CreateAccountDTO true "account info"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /create-account [post]
func (a *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	user, err := a.authService.Register(ctx, &model.CreateUserModel{
		Email:        createDTO.Email,
		Username:     createDTO.Username,
		Password:     createDTO.Password,
		BirthYear:    createDTO.BirthYear,
		BirthMonth:   createDTO.BirthMonth,
		BirthDay:     createDTO.BirthDay,
		StoreName:    createDTO.StoreName,
		StoreAddress: createDTO.StoreAddress,
	})
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*user), nil)
}

// @Summary login
// @use email or username with password to login, sets auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginInfo body dto.LoginDTO true "login info"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	//email優先, 沒填才用username
	identifier := loginDTO.Email
	if identifier == "" {
		identifier = loginDTO.Username
	}

	loginRes, err := a.authService.Login(ctx, identifier, loginDTO.Password)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	setAuthCookie(w, loginRes.AccessToken)

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: convertUserModelToDTO(loginRes.User),
	}, nil)
}

// @Summary logout
// @clears the auth cookie, token is stateless so nothing else to revoke
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=dto.MessageResponse} "success"
// @Router /logout [post]
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	api.SuccessJSON(w, dto.MessageResponse{Message: "logged out"}, nil)
}

// @Summary get current login user info
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*user), nil)
}

func cookieSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func setAuthCookie(w http.ResponseWriter, accessToken string) {
	cf := config.GetConfig()
	http.SetCookie(w, &http.Cookie{
		Name:     cf.AuthCookieName,
		Value:    accessToken,
		Path:     "/",
		Domain:   cf.CookieDomain,
		MaxAge:   cf.CookieMaxAgeSec,
		HttpOnly: true,
		Secure:   cf.CookieSecure,
		SameSite: cookieSameSite(cf.CookieSameSite),
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	cf := config.GetConfig()
	http.SetCookie(w, &http.Cookie{
		Name:     cf.AuthCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cf.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cf.CookieSecure,
		SameSite: cookieSameSite(cf.CookieSameSite),
	})
}
