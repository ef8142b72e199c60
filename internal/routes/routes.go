package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayursutra-server/internal/assessment"
	"ayursutra-server/internal/assistant"
	"ayursutra-server/internal/handlers"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/prescriptions"
	"ayursutra-server/internal/session"
	"ayursutra-server/internal/voice"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Log           *zap.Logger
	Sessions      *session.Store
	Questionnaire *assessment.Questionnaire
	Prescriptions *prescriptions.Service
	Assistant     *assistant.Service
	Voice         *voice.Gateway
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Sessions)
	bookingHandler := handlers.NewBookingHandler(deps.Log)
	quizHandler := handlers.NewQuizHandler(deps.Questionnaire)
	prescriptionHandler := handlers.NewPrescriptionHandler(deps.Prescriptions)
	assistantHandler := handlers.NewAssistantHandler(deps.Assistant, deps.Voice)
	dashboardHandler := handlers.NewDashboardHandler()

	// Public routes: the marketing site's booking wizard and prakriti
	// quiz work without an account.
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		catalogRoutes := public.Group("/catalog")
		{
			catalogRoutes.GET("/services", dashboardHandler.Services)
			catalogRoutes.GET("/time-slots", dashboardHandler.TimeSlots)
			catalogRoutes.GET("/practitioners", dashboardHandler.Practitioners)
		}

		bookingRoutes := public.Group("/bookings")
		{
			bookingRoutes.POST("", bookingHandler.Create)
			bookingRoutes.GET("/:id", bookingHandler.Get)
			bookingRoutes.POST("/:id/fields", bookingHandler.SetField)
			bookingRoutes.POST("/:id/advance", bookingHandler.Advance)
			bookingRoutes.POST("/:id/retreat", bookingHandler.Retreat)
			bookingRoutes.POST("/:id/practitioner", bookingHandler.SelectPractitioner)
			bookingRoutes.POST("/:id/confirm", bookingHandler.Confirm)
			bookingRoutes.POST("/:id/restart", bookingHandler.Restart)
		}

		quizRoutes := public.Group("/quiz")
		{
			quizRoutes.POST("", quizHandler.Create)
			quizRoutes.GET("/:id", quizHandler.Get)
			quizRoutes.GET("/:id/result", quizHandler.Result)
			quizRoutes.POST("/:id/answers", quizHandler.Answer)
			quizRoutes.POST("/:id/retreat", quizHandler.Retreat)
			quizRoutes.POST("/:id/restart", quizHandler.Restart)
		}
	}

	// Authenticated routes: every request re-resolves the session, so
	// a logout takes effect on the next navigation.
	private := router.Group("/api/v1")
	private.Use(middleware.Auth(deps.Sessions))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.Profile)
		}

		dashboardRoutes := private.Group("/dashboard")
		{
			dashboardRoutes.GET("/doctor", middleware.RequireRoles(session.RoleDoctor), dashboardHandler.Doctor)
			dashboardRoutes.GET("/patient", middleware.RequireRoles(session.RolePatient), dashboardHandler.Patient)
			dashboardRoutes.GET("/therapist", middleware.RequireRoles(session.RoleTherapist), dashboardHandler.Therapist)
		}

		prescriptionRoutes := private.Group("/prescriptions")
		prescriptionRoutes.Use(middleware.RequireRoles(session.RoleDoctor))
		{
			prescriptionRoutes.POST("/analyze", prescriptionHandler.Analyze)
			prescriptionRoutes.GET("/recent", prescriptionHandler.Recent)
		}

		assistantRoutes := private.Group("/assistant")
		assistantRoutes.Use(middleware.RequireRoles(session.RolePatient))
		{
			assistantRoutes.POST("/message", assistantHandler.Message)
			assistantRoutes.GET("/history", assistantHandler.History)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
