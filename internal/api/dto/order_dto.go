package dto

type CartItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

type CheckoutDTO struct {
	Items       []CartItemDTO `json:"items"`
	Phone       string        `json:"phone"`
	Province    string        `json:"province"`
	District    string        `json:"district"`
	SubDistrict string        `json:"subDistrict"`
	Address     string        `json:"address"`
}

type CheckoutResponse struct {
	OrderID    int64  `json:"orderId"`
	TotalPrice string `json:"totalPrice"`
}

type ConfirmPaymentDTO struct {
	OrderID int64  `json:"orderId"`
	Method  string `json:"method"`
}

type OrderDTO struct {
	ID            int64           `json:"id"`
	UserID        string          `json:"user_id"`
	Phone         string          `json:"phone"`
	Province      string          `json:"province"`
	District      string          `json:"district"`
	SubDistrict   string          `json:"sub_district"`
	Address       string          `json:"address"`
	TotalPrice    string          `json:"total_price"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method"`
	CreatedAt     string          `json:"created_at"`
	Details       []OrderLineDTO  `json:"details,omitempty"`
}

type OrderLineDTO struct {
	ProductID int64  `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}
