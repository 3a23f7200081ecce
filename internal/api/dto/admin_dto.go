package dto

type SetUserRoleDTO struct {
	Role string `json:"role"` //user或admin
}
