package api

import "github.com/RoyceAzure/lab/storefront/internal/api/handler"

type Server struct {
	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	return &Server{
		AuthHandler:    authHandler,
		AccountHandler: accountHandler,
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
		AdminHandler:   adminHandler,
	}
}
