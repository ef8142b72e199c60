package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/session"
	"ayursutra-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Store *session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{Store: store}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=doctor patient therapist"`
}

// SessionResponse represents the response body for a successful login
// or registration.
type SessionResponse struct {
	Token string            `json:"token"`
	User  *session.Identity `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, err := session.ParseRole(req.Role)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ident, token, err := h.Store.Login(req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, session.ErrAuthFailure) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Failed to open session: "+err.Error())
		}
		return
	}

	utils.Success(c, "Login successful", SessionResponse{Token: token, User: ident})
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=doctor patient therapist"`
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, err := session.ParseRole(req.Role)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ident, token, err := h.Store.Register(req.Email, req.Password, req.Name, role)
	if err != nil {
		if errors.Is(err, session.ErrAuthFailure) {
			utils.Conflict(c, "User with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to register: "+err.Error())
		}
		return
	}

	utils.Created(c, "Registration successful", SessionResponse{Token: token, User: ident})
}

// Logout clears the caller's session. Idempotent: logging out twice in
// a row ends in the same state, with no error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.TokenFromContext(c); ok {
		h.Store.Logout(token)
	}
	utils.Success(c, "Logout successful", nil)
}

// Profile returns the authenticated identity.
func (h *AuthHandler) Profile(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Profile fetched successfully", ident)
}
