package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ayursutra-server/internal/catalog"
	"ayursutra-server/internal/utils"
	"ayursutra-server/internal/wizard"
)

// BookingHandler drives booking wizard instances. Each client gets its
// own flow, addressed by id; all flows are volatile and are never
// evicted, so a confirmed or abandoned flow lives until the process
// exits. The mutex serializes whole operations: it covers the id map
// and the wizard instances themselves, which carry no locking of their
// own.
type BookingHandler struct {
	log *zap.Logger

	mu      sync.Mutex
	wizards map[string]*wizard.Wizard
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		log:     log,
		wizards: make(map[string]*wizard.Wizard),
	}
}

// BookingState is the wire representation of a wizard instance.
type BookingState struct {
	ID          string          `json:"id"`
	CurrentStep int             `json:"currentStep"`
	IsComplete  bool            `json:"isComplete"`
	StepData    wizard.StepData `json:"stepData"`
}

func (h *BookingHandler) state(id string, w *wizard.Wizard) BookingState {
	return BookingState{
		ID:          id,
		CurrentStep: w.CurrentStep(),
		IsComplete:  w.IsComplete(),
		StepData:    w.Data(),
	}
}

// Create opens a fresh booking flow at step 1.
func (h *BookingHandler) Create(c *gin.Context) {
	id := uuid.New().String()
	w := wizard.NewBooking(func(data wizard.StepData) {
		h.log.Info("booking confirmed",
			zap.String("booking_id", id),
			zap.String("service", data.Get(wizard.StepSchedule, wizard.FieldService)),
			zap.String("date", data.Get(wizard.StepSchedule, wizard.FieldDate)),
			zap.String("practitioner", data.Get(wizard.StepPractitioner, wizard.FieldPractitioner)),
		)
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.wizards[id] = w
	utils.Created(c, "Booking started", h.state(id, w))
}

// find looks up the wizard addressed by the path id. The caller must
// hold h.mu for the duration of whatever it does with the result.
func (h *BookingHandler) find(c *gin.Context) (string, *wizard.Wizard, bool) {
	id := c.Param("id")
	w, ok := h.wizards[id]
	if !ok {
		utils.NotFound(c, "Booking not found")
		return "", nil, false
	}
	return id, w, true
}

// Get returns the current wizard state.
func (h *BookingHandler) Get(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}
	utils.Success(c, "Booking state", h.state(id, w))
}

// SetFieldRequest merges one field into a step's collected data.
type SetFieldRequest struct {
	Step  int    `json:"step" binding:"required,min=1"`
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SetField records a field value. No validation happens at write time.
func (h *BookingHandler) SetField(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}

	var req SetFieldRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := w.SetField(req.Step, req.Key, req.Value); err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, "Field recorded", h.state(id, w))
}

// Advance moves the wizard forward one step if the gate allows. At the
// terminal step the position is capped, so the response says so
// instead of pretending to have moved; Confirm is the only way out.
func (h *BookingHandler) Advance(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}
	before := w.CurrentStep()
	if err := w.Advance(); err != nil {
		h.transitionError(c, err)
		return
	}
	if w.CurrentStep() == before {
		utils.Success(c, "Already at the final step", h.state(id, w))
		return
	}
	utils.Success(c, "Advanced", h.state(id, w))
}

// Retreat moves the wizard back one step. Always allowed above step 1.
func (h *BookingHandler) Retreat(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}
	if err := w.Retreat(); err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, "Went back", h.state(id, w))
}

// SelectPractitionerRequest picks the clinician for the booking.
type SelectPractitionerRequest struct {
	PractitionerID string `json:"practitionerId" binding:"required"`
}

// SelectPractitioner records the choice and jumps straight to the
// details step. Only accepted while the wizard sits at the
// practitioner step.
func (h *BookingHandler) SelectPractitioner(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}

	var req SelectPractitionerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if catalog.FindPractitioner(req.PractitionerID) == nil {
		utils.NotFound(c, "Practitioner not found")
		return
	}

	if err := w.SelectProvider(req.PractitionerID); err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, "Practitioner selected", h.state(id, w))
}

// Confirm finishes the booking from the terminal step.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}
	if err := w.Confirm(); err != nil {
		h.transitionError(c, err)
		return
	}
	utils.Success(c, "Booking confirmed", h.state(id, w))
}

// Restart resets the flow to step 1 with empty data.
func (h *BookingHandler) Restart(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, w, ok := h.find(c)
	if !ok {
		return
	}
	w.Restart()
	utils.Success(c, "Booking restarted", h.state(id, w))
}

func (h *BookingHandler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrValidationBlocked), errors.Is(err, wizard.ErrNotTerminal):
		utils.UnprocessableEntity(c, err.Error())
	case errors.Is(err, wizard.ErrComplete):
		utils.Conflict(c, err.Error())
	default:
		utils.BadRequest(c, err.Error())
	}
}
