package handlers

import (
	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/catalog"
	"ayursutra-server/internal/utils"
)

// DashboardHandler serves the role-specific dashboard payloads and the
// public catalog data.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Doctor returns the doctor dashboard.
func (h *DashboardHandler) Doctor(c *gin.Context) {
	utils.Success(c, "Doctor dashboard", catalog.DoctorView())
}

// Patient returns the patient dashboard.
func (h *DashboardHandler) Patient(c *gin.Context) {
	utils.Success(c, "Patient dashboard", catalog.PatientView())
}

// Therapist returns the therapist dashboard.
func (h *DashboardHandler) Therapist(c *gin.Context) {
	utils.Success(c, "Therapist dashboard", catalog.TherapistView())
}

// Services lists the bookable services.
func (h *DashboardHandler) Services(c *gin.Context) {
	utils.Success(c, "Services", catalog.Services)
}

// TimeSlots lists the bookable parts of the day.
func (h *DashboardHandler) TimeSlots(c *gin.Context) {
	utils.Success(c, "Time slots", catalog.TimeSlots)
}

// Practitioners lists the bookable clinicians.
func (h *DashboardHandler) Practitioners(c *gin.Context) {
	utils.Success(c, "Practitioners", catalog.Practitioners)
}
