package dto

// UserDTO 表示用戶資訊
type UserDTO struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Role         string  `json:"role"`
	BirthDate    string  `json:"birth_date"`
	StoreName    *string `json:"store_name"`
	StoreAddress *string `json:"store_address"`
}

// TokenInfo 表示令牌資訊
type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

// LoginResponse 表示登入響應的完整結構
type LoginResponse struct {
	AccessToken TokenInfo `json:"access_token"`
	User        UserDTO   `json:"user"`
}

type CreateAccountDTO struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Password     string  `json:"password"` //密碼明文
	BirthYear    int     `json:"birthYear"`
	BirthMonth   int     `json:"birthMonth"`
	BirthDay     int     `json:"birthDay"`
	StoreName    *string `json:"storeName"`
	StoreAddress *string `json:"storeAddress"`
}

type LoginDTO struct {
	Email    string `json:"email"`    //email或username擇一
	Username string `json:"username"` //email或username擇一
	Password string `json:"password"` //密碼明文
}

type MessageResponse struct {
	Message string `json:"message"`
}
