// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"afyalink/internal/delivery/http/middleware"
	"afyalink/internal/delivery/http/router/handler"
	"afyalink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	PaymentHandler      *handler.PaymentHandler
	PrescriptionHandler *handler.PrescriptionHandler
	MedicineHandler     *handler.MedicineHandler
	FollowUpHandler     *handler.FollowUpHandler
	AdviceHandler       *handler.AdviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	paymentHandler      *handler.PaymentHandler
	prescriptionHandler *handler.PrescriptionHandler
	medicineHandler     *handler.MedicineHandler
	followUpHandler     *handler.FollowUpHandler
	adviceHandler       *handler.AdviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		cartHandler:         params.CartHandler,
		orderHandler:        params.OrderHandler,
		paymentHandler:      params.PaymentHandler,
		prescriptionHandler: params.PrescriptionHandler,
		medicineHandler:     params.MedicineHandler,
		followUpHandler:     params.FollowUpHandler,
		adviceHandler:       params.AdviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Public catalog routes
	e.GET("/medicines", r.medicineHandler.List)
	e.GET("/medicines/:id", r.medicineHandler.Get)

	// Storefront routes that require authentication
	storeGroup := e.Group("")
	storeGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		storeGroup.GET("/user/profile", r.userHandler.GetProfile)

		storeGroup.GET("/cart", r.cartHandler.GetCart)
		storeGroup.POST("/cart", r.cartHandler.AddItem)
		storeGroup.PUT("/cart/:itemId", r.cartHandler.UpdateQuantity)
		storeGroup.DELETE("/cart/:itemId", r.cartHandler.RemoveItem)

		storeGroup.POST("/orders", r.orderHandler.Checkout)
		storeGroup.GET("/orders", r.orderHandler.ListMyOrders)
		storeGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		storeGroup.GET("/orders/:id/receipt", r.orderHandler.GetReceipt)

		storeGroup.POST("/payments/mpesa", r.paymentHandler.InitiatePush)
		storeGroup.GET("/payments/mpesa/:id", r.paymentHandler.GetStatus)
		storeGroup.POST("/payments/mpesa/:id/cancel", r.paymentHandler.Cancel)

		storeGroup.POST("/prescriptions", r.prescriptionHandler.Upload)
		storeGroup.GET("/prescriptions", r.prescriptionHandler.ListMine)
		storeGroup.GET("/prescriptions/:id", r.prescriptionHandler.Get)

		storeGroup.GET("/follow-ups", r.followUpHandler.ListMine)

		storeGroup.POST("/advice", r.adviceHandler.GetAdvice)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                           // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String())) // Then, check for the role
	{
		adminGroup.GET("/orders", r.orderHandler.ListRecentOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateStatus)

		adminGroup.GET("/prescriptions", r.prescriptionHandler.ListByStatus)
		adminGroup.PUT("/prescriptions/:id/review", r.prescriptionHandler.Review)

		adminGroup.POST("/medicines", r.medicineHandler.Create)
		adminGroup.PUT("/medicines/:id", r.medicineHandler.Update)
		adminGroup.DELETE("/medicines/:id", r.medicineHandler.Delete)

		adminGroup.GET("/follow-ups", r.followUpHandler.ListCandidates)
		adminGroup.POST("/follow-ups", r.followUpHandler.Send)
	}
}
