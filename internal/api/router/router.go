package router

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/RoyceAzure/lab/storefront/docs"
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker[uuid.UUID], userService service.IUserService, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.GetConfig().AllowedOrigins(),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	}))
	r.Use(m.OriginCheckMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	//登入與註冊限流, 其餘路由不限
	loginLimiter := m.NewRateLimitMiddleware(&ratelimit.LimiterConfig{
		Capacity:   20,
		Rate:       1,
		RefillRate: time.Second,
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	requireAuth := m.AuthMiddleware(userService)
	requireAdmin := m.RequireRole(constants.RoleAdmin)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		//Auth相關路由
		r.Group(func(r chi.Router) {
			r.With(loginLimiter).Post("/create-account", server.AuthHandler.CreateAccount)
			r.With(loginLimiter).Post("/login", server.AuthHandler.Login)
			r.Post("/logout", server.AuthHandler.Logout)
			r.With(requireAuth).Get("/me", server.AuthHandler.Me)
		})

		//帳號相關路由
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Patch("/account", server.AccountHandler.UpdateProfile)
			r.Patch("/account/password", server.AccountHandler.ChangePassword)
		})

		//商品相關路由
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.With(requireAuth).Post("/", server.ProductHandler.CreateProduct)
			r.With(requireAuth).Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		//訂單相關路由
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/payment", server.OrderHandler.Checkout)
			r.Post("/payment-pending", server.OrderHandler.ConfirmPayment)
			r.Get("/orders/{id}", server.OrderHandler.GetOrder)
		})

		//admin相關路由
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(requireAdmin)
			r.Get("/users", server.AdminHandler.ListUsers)
			r.Patch("/users/{id}/role", server.AdminHandler.SetUserRole)
			r.Get("/products", server.ProductHandler.ListProducts)
			r.Delete("/products/{id}", server.ProductHandler.DeleteProduct)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
