package handler

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// convertUserModelToDTO 將 UserModel 轉換為 UserDTO
// 密碼雜湊不進DTO
func convertUserModelToDTO(m model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:           m.ID.String(),
		Email:        m.Email,
		Username:     m.Username,
		Role:         string(m.Role),
		BirthDate:    m.BirthDate.Format(time.DateOnly),
		StoreName:    m.StoreName,
		StoreAddress: m.StoreAddress,
	}
}

func convertProductModelToDTO(m model.ProductModel) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price.String(),
		Description: m.Description,
		ImageURL:    m.ImageURL,
		UserID:      m.UserID.String(),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func convertOrderModelToDTO(m model.OrderModel, details []model.OrderDetailModel) dto.OrderDTO {
	lines := make([]dto.OrderLineDTO, 0, len(details))
	for _, d := range details {
		lines = append(lines, dto.OrderLineDTO{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice.String(),
		})
	}

	return dto.OrderDTO{
		ID:            m.ID,
		UserID:        m.UserID.String(),
		Phone:         m.Phone,
		Province:      m.Province,
		District:      m.District,
		SubDistrict:   m.SubDistrict,
		Address:       m.Address,
		TotalPrice:    m.TotalPrice.String(),
		Status:        string(m.Status),
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		Details:       lines,
	}
}
