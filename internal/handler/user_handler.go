package handler

import (
	"errors"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, err := h.service.GetUsers(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(users), gin.H{"users": users})
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"user": user})
}

// UpdateUser godoc
// @Summary      Update a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrEmailTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"user": user})
}

// DeleteUser godoc
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// GetMe godoc
// @Summary      Get the current user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, apperrors.ErrNotLoggedIn.Error())
		return
	}

	response.Success(c, gin.H{"user": user})
}

// UpdateMe godoc
// @Summary      Update the current user's profile
// @Description  Name, email and photo only; password changes use their own route
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateMeRequest  true  "Profile fields"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/updateMe [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	// Reject password fields up front so callers learn about the dedicated
	// route instead of silently losing the field.
	var probe map[string]interface{}
	if err := c.ShouldBindBodyWithJSON(&probe); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, ok := probe["password"]; ok {
		response.BadRequest(c, apperrors.ErrPasswordRouteMisuse.Error())
		return
	}
	if _, ok := probe["passwordConfirm"]; ok {
		response.BadRequest(c, apperrors.ErrPasswordRouteMisuse.Error())
		return
	}

	var req models.UpdateMeRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateMe(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrEmailTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"user": user})
}

// DeleteMe godoc
// @Summary      Deactivate the current user's account
// @Description  Soft delete; the account disappears from all default reads
// @Tags         users
// @Produce      json
// @Success      204
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/deleteMe [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.service.DeactivateMe(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// GetPhotoUploadURL godoc
// @Summary      Get a pre-signed photo upload URL
// @Description  PUT the image to the returned URL, then save the key via updateMe
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/photo-upload-url [get]
func (h *UserHandler) GetPhotoUploadURL(c *gin.Context) {
	uploadURL, key, err := h.service.PhotoUploadURL(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"uploadUrl": uploadURL, "photo": key})
}
