package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ayursutra-server/internal/assessment"
	"ayursutra-server/internal/utils"
)

// QuizHandler drives prakriti assessment instances. Instances are
// volatile and are never evicted; a finished quiz lives until the
// process exits. The mutex serializes whole operations: it covers the
// id map and the engines themselves, which carry no locking of their
// own.
type QuizHandler struct {
	questionnaire *assessment.Questionnaire

	mu      sync.Mutex
	engines map[string]*assessment.Engine
}

// NewQuizHandler creates a new QuizHandler over the loaded
// questionnaire.
func NewQuizHandler(q *assessment.Questionnaire) *QuizHandler {
	return &QuizHandler{
		questionnaire: q,
		engines:       make(map[string]*assessment.Engine),
	}
}

// QuizState is the wire representation of an assessment instance.
type QuizState struct {
	ID                   string               `json:"id"`
	CurrentQuestionIndex int                  `json:"currentQuestionIndex"`
	TotalQuestions       int                  `json:"totalQuestions"`
	Finished             bool                 `json:"finished"`
	Question             *assessment.Question `json:"question,omitempty"`
	Result               assessment.Dosha     `json:"result,omitempty"`
}

func (h *QuizHandler) state(id string, e *assessment.Engine) QuizState {
	st := QuizState{
		ID:                   id,
		CurrentQuestionIndex: e.CurrentQuestionIndex(),
		TotalQuestions:       e.TotalQuestions(),
		Finished:             e.Finished(),
		Question:             e.CurrentQuestion(),
	}
	if e.Finished() {
		// Finished implies at least one answer, so this cannot fail.
		if result, err := e.Classification(); err == nil {
			st.Result = result
		}
	}
	return st
}

// Create starts a fresh assessment at the first question.
func (h *QuizHandler) Create(c *gin.Context) {
	id := uuid.New().String()
	e := assessment.NewEngine(h.questionnaire)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.engines[id] = e
	utils.Created(c, "Assessment started", h.state(id, e))
}

// find looks up the engine addressed by the path id. The caller must
// hold h.mu for the duration of whatever it does with the result.
func (h *QuizHandler) find(c *gin.Context) (string, *assessment.Engine, bool) {
	id := c.Param("id")
	e, ok := h.engines[id]
	if !ok {
		utils.NotFound(c, "Assessment not found")
		return "", nil, false
	}
	return id, e, true
}

// Get returns the current assessment state.
func (h *QuizHandler) Get(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, e, ok := h.find(c)
	if !ok {
		return
	}
	utils.Success(c, "Assessment state", h.state(id, e))
}

// AnswerRequest records one selected option label.
type AnswerRequest struct {
	Label string `json:"label" binding:"required"`
}

// Answer appends the label for the current question. When the last
// question is answered, the returned state carries the classification.
func (h *QuizHandler) Answer(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, e, ok := h.find(c)
	if !ok {
		return
	}

	var req AnswerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := e.Answer(assessment.Dosha(req.Label)); err != nil {
		switch {
		case errors.Is(err, assessment.ErrFinished):
			utils.Conflict(c, err.Error())
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}
	utils.Success(c, "Answer recorded", h.state(id, e))
}

// Retreat removes the last answer and steps back one question.
func (h *QuizHandler) Retreat(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, e, ok := h.find(c)
	if !ok {
		return
	}
	e.Retreat()
	utils.Success(c, "Went back", h.state(id, e))
}

// Result returns the classification for the recorded answers.
func (h *QuizHandler) Result(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, e, ok := h.find(c)
	if !ok {
		return
	}

	result, err := e.Classification()
	if err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}
	st := h.state(id, e)
	st.Result = result
	utils.Success(c, "Classification", st)
}

// Restart clears the answers and returns to the first question.
func (h *QuizHandler) Restart(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, e, ok := h.find(c)
	if !ok {
		return
	}
	e.Restart()
	utils.Success(c, "Assessment restarted", h.state(id, e))
}
