package handlers

import "github.com/gin-gonic/gin"

// Routes mounts the API under /api. auth guards /auth/me always and, when
// requireAuth is set, every route except health and the session endpoints.
func (h *Handler) Routes(r gin.IRouter, auth gin.HandlerFunc, requireAuth bool) {
	api := r.Group("/api")

	api.GET("/health", h.Health)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/me", auth, h.Me)
	}

	protected := api.Group("")
	if requireAuth {
		protected.Use(auth)
	}

	patients := protected.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/search", h.SearchPatients)
		patients.GET("/export", h.ExportPatients)
		patients.GET("/:id", h.GetPatient)
		patients.POST("", h.CreatePatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}

	doctors := protected.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/search", h.SearchDoctors)
		doctors.GET("/department/:id", h.DoctorsByDepartment)
		doctors.GET("/:id", h.GetDoctor)
		doctors.POST("", h.CreateDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	departments := protected.Group("/departments")
	{
		departments.GET("", h.ListDepartments)
		departments.GET("/:id", h.GetDepartment)
		departments.POST("", h.CreateDepartment)
		departments.PUT("/:id", h.UpdateDepartment)
		departments.DELETE("/:id", h.DeleteDepartment)
	}

	appointments := protected.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/export", h.ExportAppointments)
		appointments.GET("/stats/overview", h.AppointmentStats)
		appointments.GET("/patient/:id", h.PatientAppointments)
		appointments.GET("/doctor/:id", h.DoctorAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.BookAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.PATCH("/:id/cancel", h.CancelAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}

	protected.GET("/dashboard/stats", h.DashboardStats)
}
