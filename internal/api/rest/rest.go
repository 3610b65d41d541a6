package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/pharmatrust/custody/internal/api/middleware"
	"github.com/pharmatrust/custody/internal/domain"
)

// SetupRoutes registers all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Self-registration is the only unauthenticated endpoint
	v1.POST("/registrations", handler.SubmitRegistration)

	authed := v1.Group("")
	authed.Use(middleware.Auth(authCfg))
	{
		tokens := authed.Group("/tokens")
		{
			tokens.GET("", handler.ListTokens)
			tokens.POST("/mint", middleware.RequireRole(domain.RolePharmaCompany), handler.MintBatch)
			tokens.POST("/:token_id/expire", middleware.RequireRole(domain.RoleAdmin), handler.ExpireToken)
			tokens.POST("/:token_id/recall", middleware.RequireRole(domain.RoleAdmin), handler.RecallToken)
		}

		intents := authed.Group("/intents")
		{
			intents.GET("", handler.ListIntents)
			intents.POST("", handler.CreateIntent)
			intents.GET("/:ref", handler.GetIntent)
			intents.POST("/:ref/submission", handler.RecordSubmission)
			intents.POST("/:ref/receipt", handler.ConfirmReceipt)
			intents.POST("/:ref/approval", handler.ApproveHandoff)
		}

		authed.GET("/proofs", handler.ListProofs)

		registrations := authed.Group("/registrations", middleware.RequireRole(domain.RoleAdmin))
		{
			registrations.GET("", handler.ListRegistrations)
			registrations.GET("/:ref", handler.GetRegistration)
			registrations.POST("/:ref/approve", handler.ApproveRegistration)
			registrations.POST("/:ref/retry", handler.RetryRegistration)
			registrations.POST("/:ref/reject", handler.RejectRegistration)
		}
	}
}
