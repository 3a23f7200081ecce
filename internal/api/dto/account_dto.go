package dto

type UpdateProfileDTO struct {
	StoreName    *string `json:"storeName"`
	StoreAddress *string `json:"storeAddress"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
