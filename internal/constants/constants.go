package constants

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
	AuthorizationUserKey    ContextKey = "authorization_user"
)

type TokenDurationHour int

const (
	AccessTokenDuration TokenDurationHour = 1
)

// 使用者角色 role欄位僅允許這兩種值
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// 訂單狀態 pending -> paid 單向轉移
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

const (
	//username 長度限制
	UsernameMinLen int = 3
	UsernameMaxLen int = 20
	//密碼最小長度
	PasswordMinLen int = 8
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
