package Routes

import (
	"CDCPlatform/Controllers"
	"CDCPlatform/Middleware"
	"CDCPlatform/Models"
	"CDCPlatform/SSE"
	"CDCPlatform/Whatsapp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/register/admin", Controllers.RegisterAdmin)
		public.POST("/request-otp", Controllers.RequestOTP)
		public.POST("/login/otp", Controllers.LoginOTP)
		public.POST("/SaveFcmToken", Controllers.SaveFcmToken)
	}

	// Any signed-in user
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.RequireRoles())
	{
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/logout", Controllers.Logout)
		authorized.POST("/delete-account", Controllers.DeleteUser)
	}

	// Parent routes
	parent := router.Group("/api/parent")
	parent.Use(Middleware.JwtAuthMiddleware())
	parent.Use(Middleware.RequireRoles(Models.RoleParent))
	{
		parent.POST("/children", Controllers.CreateChild)
		parent.GET("/children", Controllers.FetchChildren)
		parent.POST("/children/update", Controllers.UpdateChild)
		parent.POST("/children/delete", Controllers.DeleteChild)

		parent.GET("/assessments", Controllers.FetchAssessmentsByAge)
		parent.POST("/assessments/submit", Controllers.SubmitAssessment)
		parent.GET("/results/child/:childId", Controllers.FetchChildResults)

		parent.POST("/booking/create-order", Controllers.CreateOrder)
		parent.POST("/booking/verify", Controllers.VerifyPayment)
		parent.POST("/bookings", Controllers.FetchChildBookings)
	}

	// User management: the Super Admin creates the tree, the Sub Admin can
	// only add CDC Admins under it.
	users := router.Group("/api/users")
	users.Use(Middleware.JwtAuthMiddleware())
	{
		superOnly := users.Group("")
		superOnly.Use(Middleware.RequireRoles(Models.RoleSuperAdmin))
		{
			superOnly.POST("/create/subadmin", Controllers.CreateSubAdmin)
			superOnly.POST("/create/doctor", Controllers.CreateDoctor)
			superOnly.POST("/create/psychiatrist", Controllers.CreatePsychiatrist)
			superOnly.POST("/create/helpdesk", Controllers.CreateHelpDesk)
			superOnly.POST("/create/marketing", Controllers.CreateMarketing)
			superOnly.POST("/freeze", Controllers.FreezeUser)
		}

		admins := users.Group("")
		admins.Use(Middleware.RequireRoles(Models.RoleSuperAdmin, Models.RoleSubAdmin))
		{
			admins.POST("/create/cdcadmin", Controllers.CreateCDCAdmin)
			admins.GET("/hierarchy", Controllers.Hierarchy)
		}
	}

	// CDC Admin onboarding wizard
	onboarding := router.Group("/api/onboarding")
	onboarding.Use(Middleware.JwtAuthMiddleware())
	onboarding.Use(Middleware.RequireRoles(Models.RoleCDCAdmin))
	{
		onboarding.GET("", Controllers.FetchOnboarding)
		onboarding.POST("/next", Controllers.NextOnboardingStep)
		onboarding.POST("/previous", Controllers.PreviousOnboardingStep)
		onboarding.POST("/submit", Controllers.SubmitOnboarding)
	}

	// Super Admin CDC review
	superadmin := router.Group("/api/superadmin")
	superadmin.Use(Middleware.JwtAuthMiddleware())
	superadmin.Use(Middleware.RequireRoles(Models.RoleSuperAdmin))
	{
		superadmin.GET("/cdcs", Controllers.FetchCDCs)
		superadmin.GET("/cdcs/:id", Controllers.FetchCDCDetail)
		superadmin.POST("/cdcs/review", Controllers.ReviewCDC)
	}

	// Staff routes
	staff := router.Group("/api/staff")
	staff.Use(Middleware.JwtAuthMiddleware())
	staff.Use(Middleware.RequireRoles(
		Models.RoleSuperAdmin, Models.RoleSubAdmin,
		Models.RoleDoctor, Models.RolePsychiatrist,
		Models.RoleHelpDesk, Models.RoleMarketing,
	))
	{
		staff.GET("/bookings", Controllers.FetchBookings)

		// WhatsApp-related routes
		staff.GET("/CheckWhatsAppLogin", Whatsapp.CheckLogin)
		staff.GET("/GetWhatsAppQRCode", Whatsapp.GetQRCode)

		// SSE (Server-Sent Events) route
		staff.GET("/RequestSSE", SSE.RequestSSE)
	}

	// Export-related routes
	marketing := router.Group("/api/marketing")
	marketing.Use(Middleware.JwtAuthMiddleware())
	marketing.Use(Middleware.RequireRoles(Models.RoleSuperAdmin, Models.RoleMarketing))
	{
		marketing.POST("/ExportBookingsTable", Controllers.ExportBookingsTable)
	}
}
