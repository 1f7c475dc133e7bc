package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"yuancity-finance-portal/internal/handler"
	"yuancity-finance-portal/internal/middleware"
	"yuancity-finance-portal/internal/repository"
	"yuancity-finance-portal/internal/service"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	financeHandler *handler.FinanceHandler
	adminHandler   *handler.AdminHandler
	authMiddleware echo.MiddlewareFunc
}

func NewServer(
	authService service.AuthService,
	financeService service.FinanceService,
	adminService service.AdminService,
	userRepo repository.UserRepository,
) *Server {
	e := echo.New()

	e.Use(echomw.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		authHandler:    handler.NewAuthHandler(authService),
		financeHandler: handler.NewFinanceHandler(financeService),
		adminHandler:   handler.NewAdminHandler(adminService),
		authMiddleware: middleware.JWTAuth(authService, userRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/login/otp/request/", s.authHandler.RequestOTP)
	auth.POST("/login/otp/verify/", s.authHandler.VerifyOTP)
	auth.POST("/token/refresh/", s.authHandler.Refresh)

	// -------- finance portal --------
	finance := api.Group("/payment/finance")
	finance.POST("/login/", s.authHandler.FinanceLogin)

	protected := finance.Group("", s.authMiddleware, middleware.AdminOnly())
	protected.GET("/dashboard/", s.financeHandler.Dashboard)
	protected.GET("/orders/", s.financeHandler.ListOrders)
	protected.GET("/orders/:id/", s.financeHandler.GetOrder)
	protected.GET("/payouts/", s.financeHandler.ListPayouts)
	protected.PATCH("/payouts/:id/status/", s.financeHandler.UpdatePayoutStatus)

	// -------- admin dashboard --------
	admin := api.Group("/payment/admin", s.authMiddleware, middleware.AdminOnly())
	admin.GET("/dashboard/", s.financeHandler.Dashboard)
	admin.GET("/orders/", s.adminHandler.ListOrders)
	admin.GET("/orders/:id/", s.adminHandler.GetOrder)
	admin.PATCH("/orders/:id/status/", s.adminHandler.UpdateOrderStatus)
	admin.GET("/products/", s.adminHandler.ListProducts)
	admin.GET("/reviews/", s.adminHandler.ListReviews)
	admin.GET("/vendors/", s.adminHandler.ListVendors)
	admin.GET("/support/", s.adminHandler.ListSupportThreads)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
