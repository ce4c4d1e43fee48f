package handler

import (
	"errors"
	"net/url"
	"strconv"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// TourHandler handles HTTP requests for tour operations.
type TourHandler struct {
	service service.TourServicer
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(service service.TourServicer) *TourHandler {
	return &TourHandler{service: service}
}

// AliasTopTours presets the query string for the top-5-cheap listing before
// the regular GetTours handler runs.
func (h *TourHandler) AliasTopTours(c *gin.Context) {
	values := url.Values{}
	values.Set("limit", "5")
	values.Set("sort", "-ratingsAverage,price")
	values.Set("fields", "name,price,ratingsAverage,summary,difficulty")
	c.Request.URL.RawQuery = values.Encode()
	c.Next()
}

// GetTours godoc
// @Summary      List tours
// @Description  List tours with filtering, sorting, field limiting and pagination
// @Tags         tours
// @Produce      json
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 100, max: 500)"
// @Param        sort    query     string  false  "Comma-separated sort fields, - prefix for descending"
// @Param        fields  query     string  false  "Comma-separated projection fields"
// @Success      200     {object}  response.Response{data=[]models.Tour}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /tours [get]
func (h *TourHandler) GetTours(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tours, err := h.service.GetTours(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(tours), gin.H{"tours": tours})
}

// GetTour godoc
// @Summary      Get a tour
// @Description  Retrieve one tour with its reviews
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=models.TourWithReviews}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /tours/{id} [get]
func (h *TourHandler) GetTour(c *gin.Context) {
	tour, err := h.service.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTourNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"tour": tour})
}

// CreateTour godoc
// @Summary      Create a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTourRequest  true  "Tour details"
// @Success      201      {object}  response.Response{data=models.Tour}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /tours [post]
func (h *TourHandler) CreateTour(c *gin.Context) {
	var req models.CreateTourRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tour, err := h.service.CreateTour(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDiscount), errors.Is(err, apperrors.ErrUserNotFound):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrTourNameTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"tour": tour})
}

// UpdateTour godoc
// @Summary      Update a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Tour ID"
// @Param        request  body      models.UpdateTourRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Tour}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id} [patch]
func (h *TourHandler) UpdateTour(c *gin.Context) {
	var req models.UpdateTourRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tour, err := h.service.UpdateTour(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTourNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvalidDiscount), errors.Is(err, apperrors.ErrUserNotFound):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrTourNameTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"tour": tour})
}

// DeleteTour godoc
// @Summary      Delete a tour
// @Tags         tours
// @Produce      json
// @Param        id  path  string  true  "Tour ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id} [delete]
func (h *TourHandler) DeleteTour(c *gin.Context) {
	err := h.service.DeleteTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTourNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// GetTourStats godoc
// @Summary      Tour statistics
// @Description  Per-difficulty aggregates over well-rated tours
// @Tags         tours
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.TourStats}
// @Failure      500  {object}  response.Response
// @Router       /tours/tour-stats [get]
func (h *TourHandler) GetTourStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"stats": stats})
}

// GetMonthlyPlan godoc
// @Summary      Monthly plan
// @Description  Tour starts grouped per month for one year
// @Tags         tours
// @Produce      json
// @Param        year  path      int  true  "Year"
// @Success      200   {object}  response.Response{data=[]models.MonthlyPlanEntry}
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/monthly-plan/{year} [get]
func (h *TourHandler) GetMonthlyPlan(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.BadRequest(c, "year must be a number")
		return
	}

	plan, err := h.service.GetMonthlyPlan(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"plan": plan})
}

// GetToursWithin godoc
// @Summary      Tours within a radius
// @Description  Tours starting within the given distance of a center point
// @Tags         tours
// @Produce      json
// @Param        distance  path      number  true  "Radius"
// @Param        latlng    path      string  true  "Center as lat,lng"
// @Param        unit      path      string  true  "mi or km"
// @Success      200       {object}  response.Response{data=[]models.Tour}
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /tours/tours-within/{distance}/center/{latlng}/unit/{unit} [get]
func (h *TourHandler) GetToursWithin(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil {
		response.BadRequest(c, "distance must be a number")
		return
	}

	tours, err := h.service.GetToursWithin(c.Request.Context(), distance, c.Param("latlng"), c.Param("unit"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidLatLng) || errors.Is(err, apperrors.ErrInvalidUnit) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(tours), gin.H{"tours": tours})
}

// GetDistances godoc
// @Summary      Distances to all tours
// @Description  Distance from a point to every tour's start location
// @Tags         tours
// @Produce      json
// @Param        latlng  path      string  true  "Point as lat,lng"
// @Param        unit    path      string  true  "mi or km"
// @Success      200     {object}  response.Response{data=[]models.TourDistance}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /tours/distances/{latlng}/unit/{unit} [get]
func (h *TourHandler) GetDistances(c *gin.Context) {
	distances, err := h.service.GetDistances(c.Request.Context(), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidLatLng) || errors.Is(err, apperrors.ErrInvalidUnit) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.SuccessList(c, len(distances), gin.H{"distances": distances})
}
