package v1

import (
	"time"

	"go_vms/api/v1/auth"
	"go_vms/api/v1/masterdata"
	"go_vms/api/v1/middleware"
	"go_vms/api/v1/reports"
	"go_vms/api/v1/users"
	"go_vms/api/v1/visitors"
	"go_vms/internal/config"
	"go_vms/internal/httpx"
	"go_vms/internal/rbac"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter sets up the API routes
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")
	{
		// Public routes (no authentication required)
		api.GET("/health", healthHandler)

		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", auth.LoginHandler(db, cfg))
		}

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(db))
		{
			// User management routes
			usersHandler := users.NewHandler(db, cfg)
			usersGroup := protected.Group("/users")
			{
				usersGroup.POST("", middleware.RequireCapability(rbac.CapCreateUser), usersHandler.Create)
				usersGroup.GET("", middleware.RequireCapability(rbac.CapViewUsers), usersHandler.List)
				usersGroup.POST("/lock", middleware.RequireCapability(rbac.CapLockUser), usersHandler.Lock)
				usersGroup.POST("/unlock", middleware.RequireCapability(rbac.CapUnlockUser), usersHandler.Unlock)
			}

			// Master data lookups
			protected.GET("/master-data/:table", masterdata.GetHandler(db))

			// Visitor entry routes
			visitorsHandler := visitors.NewHandler(db)
			visitorsGroup := protected.Group("/visitors")
			{
				visitorsGroup.POST("", middleware.RequireCapability(rbac.CapCreateVisitorEntry), visitorsHandler.Create)
				visitorsGroup.GET("", visitorsHandler.List)
				visitorsGroup.GET("/pending", visitorsHandler.Pending)
				visitorsGroup.POST("/approve", middleware.RequireCapability(rbac.CapApproveVisitor), visitorsHandler.Approve)
				visitorsGroup.POST("/:card_no/checkout", middleware.RequireCapability(rbac.CapCheckoutVisitor), visitorsHandler.Checkout)
				visitorsGroup.GET("/active", middleware.RequireCapability(rbac.CapCheckoutVisitor), visitorsHandler.Active)
			}

			// Reports
			protected.GET("/reports/:report_type", middleware.RequireCapability(rbac.CapViewReports), reports.GetHandler(db))
		}
	}
}

// healthHandler handles the health check request using unified response
func healthHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
