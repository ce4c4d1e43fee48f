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

// ReviewHandler handles HTTP requests for review operations. It serves both
// the flat /reviews routes and the nested /tours/:tourId/reviews routes.
type ReviewHandler struct {
	service service.ReviewServicer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service service.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReviews godoc
// @Summary      List reviews
// @Description  List reviews; on the nested route only the tour's reviews
// @Tags         reviews
// @Produce      json
// @Param        tourId  path      string  false  "Tour ID (nested route)"
// @Success      200     {object}  response.Response{data=[]models.Review}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews [get]
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reviews, err := h.service.GetReviews(c.Request.Context(), q, c.Param("tourId"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTourNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(reviews), gin.H{"reviews": reviews})
}

// GetReview godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  response.Response{data=models.Review}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.service.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"review": review})
}

// CreateReview godoc
// @Summary      Create a review
// @Description  Review a tour; on the nested route the tour comes from the URL
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateReviewRequest  true  "Review"
// @Success      201      {object}  response.Response{data=models.Review}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), &req, c.Param("tourId"), middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTourNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrDuplicateReview):
			response.Conflict(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"review": review})
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Review ID"
// @Param        request  body      models.UpdateReviewRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Review}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req models.UpdateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.UpdateReview(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"review": review})
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id  path  string  true  "Review ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	err := h.service.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrReviewNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
