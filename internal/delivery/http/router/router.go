// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zara/internal/delivery/http/middleware"
	"zara/internal/delivery/http/router/handler"
	"zara/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	MachineHandler      *handler.MachineHandler
	OperationHandler    *handler.OperationHandler
	ShiftHandler        *handler.ShiftHandler
	PermissionHandler   *handler.PermissionHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	machineHandler      *handler.MachineHandler
	operationHandler    *handler.OperationHandler
	shiftHandler        *handler.ShiftHandler
	permissionHandler   *handler.PermissionHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		machineHandler:      params.MachineHandler,
		operationHandler:    params.OperationHandler,
		shiftHandler:        params.ShiftHandler,
		permissionHandler:   params.PermissionHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; account creation is an administrative operation.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)

		registerGroup := authGroup.Group("/register")
		registerGroup.Use(r.authMiddleware.Authenticate)
		registerGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		{
			registerGroup.POST("", r.userHandler.RegisterUser)
		}
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Machine registry routes
	machinesGroup := apiV1.Group("/machines")
	{
		machinesGroup.GET("", r.machineHandler.ListMachines)
		machinesGroup.GET("/:id", r.machineHandler.GetMachine)
		machinesGroup.GET("/:id/label", r.machineHandler.FloorLabel)
		machinesGroup.GET("/:id/shifts", r.shiftHandler.ListShiftData)

		// Status changes pass the per-machine maintain gate inside the
		// handler; the remaining writes are admin-only.
		machinesGroup.PATCH("/:id/status", r.machineHandler.UpdateStatus)

		adminMachines := machinesGroup.Group("")
		adminMachines.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		{
			adminMachines.POST("", r.machineHandler.RegisterMachine)
			adminMachines.PATCH("/:id/speed", r.machineHandler.UpdateSpeed)
			adminMachines.DELETE("/:id", r.machineHandler.DeactivateMachine)
		}
	}

	// Operation lifecycle routes
	operationsGroup := apiV1.Group("/operations")
	{
		operationsGroup.POST("", r.operationHandler.StartOperation)
		operationsGroup.GET("/active", r.operationHandler.ListActiveOperations)
		operationsGroup.GET("/:id", r.operationHandler.GetOperation)
		operationsGroup.POST("/:id/stop", r.operationHandler.StopOperation)
		operationsGroup.POST("/:id/cancel", r.operationHandler.CancelOperation)
	}

	// Notification routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
	}

	// Permission administration routes (managers and admins only)
	permissionsGroup := apiV1.Group("/permissions")
	permissionsGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleManager, entity.RoleAdmin))
	{
		permissionsGroup.PUT("", r.permissionHandler.Grant)
		permissionsGroup.DELETE("/:userId/:machineId", r.permissionHandler.Revoke)
		permissionsGroup.GET("/users/:userId", r.permissionHandler.ListForUser)
		permissionsGroup.GET("/machines/:machineId", r.permissionHandler.ListForMachine)
	}
}
