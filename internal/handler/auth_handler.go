// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service      service.AuthServicer
	cookieMaxAge int // seconds
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{service: service, cookieMaxAge: cookieMaxAge}
}

// setTokenCookie mirrors the issued token into an httpOnly cookie for
// browser clients.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.JWTCookieName, token, h.cookieMaxAge, "/", "", false, true)
}

// Signup godoc
// @Summary      Register a new user
// @Description  Create a new account with name, email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.SignupRequest  true  "Signup details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.SuccessWithToken(c, http.StatusCreated, result.Token, gin.H{"user": result.User})
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.SuccessWithToken(c, http.StatusOK, result.Token, gin.H{"user": result.User})
}

// Logout godoc
// @Summary      User logout
// @Description  Clear the jwt cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.JWTCookieName, "", -1, "/", "", false, true)
	response.Message(c, "logged out")
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Email a single-use reset token to the account's address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/forgotPassword [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	resetURLBase := fmt.Sprintf("%s://%s/api/v1/users/resetPassword", scheme, c.Request.Host)

	err := h.service.ForgotPassword(c.Request.Context(), req.Email, resetURLBase)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrEmailNotSent) {
			response.InternalError(c)
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "token sent to email")
}

// ResetPassword godoc
// @Summary      Reset a forgotten password
// @Description  Set a new password using the emailed reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path      string                       true  "Raw reset token"
// @Param        request  body      models.ResetPasswordRequest  true  "New password"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/resetPassword/{token} [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrResetTokenInvalid) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.SuccessWithToken(c, http.StatusOK, result.Token, gin.H{"user": result.User})
}

// UpdatePassword godoc
// @Summary      Change the current user's password
// @Description  Verify the current password and set a new one
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdatePasswordRequest  true  "Password change"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/updateMyPassword [patch]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdatePassword(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWrongPassword) {
			response.Unauthorized(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.SuccessWithToken(c, http.StatusOK, result.Token, gin.H{"user": result.User})
}
