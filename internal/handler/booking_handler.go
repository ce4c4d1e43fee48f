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

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service service.BookingServicer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service service.BookingServicer) *BookingHandler {
	return &BookingHandler{service: service}
}

// GetBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [get]
func (h *BookingHandler) GetBookings(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookings, err := h.service.GetBookings(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(bookings), gin.H{"bookings": bookings})
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"booking": booking})
}

// GetMyBookings godoc
// @Summary      List the current user's bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Booking}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/my-bookings [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	bookings, err := h.service.GetMyBookings(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(bookings), gin.H{"bookings": bookings})
}

// CreateBooking godoc
// @Summary      Book a tour
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBookingRequest  true  "Booking"
// @Success      201      {object}  response.Response{data=models.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), &req, middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTourNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"booking": booking})
}

// UpdateBooking godoc
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Booking ID"
// @Param        request  body      models.UpdateBookingRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.UpdateBookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"booking": booking})
}

// DeleteBooking godoc
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	err := h.service.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
