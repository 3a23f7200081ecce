package dto

type CreateProductDTO struct {
	ProductName string  `json:"productName"`
	Price       string  `json:"price"` //十進位字串, 避免浮點誤差
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	UserID      string  `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
}
