package handlers

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/nlu"
	"ayursutra-server/internal/prescriptions"
	"ayursutra-server/internal/utils"
)

// PrescriptionHandler exposes the prescription analysis feature.
type PrescriptionHandler struct {
	Service *prescriptions.Service
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(svc *prescriptions.Service) *PrescriptionHandler {
	return &PrescriptionHandler{Service: svc}
}

// AnalyzeRequest carries the prescription photo as base64 plus its
// MIME type.
type AnalyzeRequest struct {
	Image    string `json:"image" binding:"required"`
	MIMEType string `json:"mimeType" binding:"required"`
}

// Analyze runs a prescription image through the NLU boundary and
// returns the structured treatment plan. A failed analysis leaves the
// recent-results list untouched and the client free to retry with the
// same image.
func (h *PrescriptionHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !strings.HasPrefix(req.MIMEType, "image/") {
		utils.BadRequest(c, "Please select a valid image file.")
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		utils.BadRequest(c, "Image is not valid base64: "+err.Error())
		return
	}

	analysis, err := h.Service.Analyze(c.Request.Context(), image, req.MIMEType)
	if err != nil {
		switch {
		case errors.Is(err, prescriptions.ErrSuperseded):
			utils.Conflict(c, err.Error())
		case nlu.KindOf(err) == nlu.KindParse:
			utils.UnprocessableEntity(c, "The AI returned data in an invalid format.")
		case nlu.KindOf(err) == nlu.KindEmpty:
			utils.BadGateway(c, "The AI model returned no text. The image may be too unclear.")
		case nlu.KindOf(err) != "":
			utils.BadGateway(c, err.Error())
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, "Prescription analyzed", analysis)
}

// Recent returns the recent analyses, newest first.
func (h *PrescriptionHandler) Recent(c *gin.Context) {
	utils.Success(c, "Recent analyses", h.Service.Recent())
}
