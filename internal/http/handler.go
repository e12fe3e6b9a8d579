package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"waste-service/internal/http/middleware"
	"waste-service/internal/model"
	"waste-service/internal/service"
)

type Handler struct {
	vehicleService       *service.VehicleService
	wastePointService    *service.WastePointService
	startEndPointService *service.StartEndPointService
	countService         *service.CountService
	log                  zerolog.Logger
}

func NewHandler(
	vehicleService *service.VehicleService,
	wastePointService *service.WastePointService,
	startEndPointService *service.StartEndPointService,
	countService *service.CountService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		vehicleService:       vehicleService,
		wastePointService:    wastePointService,
		startEndPointService: startEndPointService,
		countService:         countService,
		log:                  log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/vehicles", h.listVehicles)
	r.POST("/vehicles", h.createVehicle)
	r.DELETE("/vehicles/:id", h.deleteVehicle)

	r.GET("/waste-points", h.listWastePoints)
	r.POST("/waste-points", h.createWastePoint)
	r.DELETE("/waste-points/:id", h.deleteWastePoint)

	// "dump" is the public name of the end anchor.
	anchors := r.Group("/start-end-points")
	{
		anchors.GET("/start", h.getStartEndPoint(model.PointTypeStart))
		anchors.POST("/start", h.upsertStartEndPoint(model.PointTypeStart))
		anchors.GET("/dump", h.getStartEndPoint(model.PointTypeEnd))
		anchors.POST("/dump", h.upsertStartEndPoint(model.PointTypeEnd))
	}

	r.GET("/counts", h.getCounts)
}

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req struct {
		Plate string  `json:"plate" binding:"required"`
		Brand *string `json:"brand"`
		Model *string `json:"model"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), service.CreateVehicleInput{
		Plate: req.Plate,
		Brand: req.Brand,
		Model: req.Model,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse("vehicle not found"))
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listWastePoints(c *gin.Context) {
	points, err := h.wastePointService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *Handler) createWastePoint(c *gin.Context) {
	var req struct {
		Name      string   `json:"name" binding:"required"`
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	point, err := h.wastePointService.Create(c.Request.Context(), service.CreateWastePointInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, point)
}

func (h *Handler) deleteWastePoint(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse("waste point not found"))
		return
	}

	if err := h.wastePointService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getStartEndPoint(pointType model.PointType) gin.HandlerFunc {
	return func(c *gin.Context) {
		point, err := h.startEndPointService.Get(c.Request.Context(), pointType)
		if err != nil {
			h.handleError(c, err)
			return
		}

		// an unconfigured anchor is rendered as null
		c.JSON(http.StatusOK, point)
	}
}

// upsertStartEndPoint answers 201 on both the insert and the update path.
func (h *Handler) upsertStartEndPoint(pointType model.PointType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Latitude  *float64 `json:"latitude" binding:"required"`
			Longitude *float64 `json:"longitude" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}

		result, err := h.startEndPointService.Upsert(c.Request.Context(), pointType, service.UpsertPointInput{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		if err != nil {
			h.handleError(c, err)
			return
		}

		h.log.Info().
			Str("point_type", string(pointType)).
			Uint("id", result.Point.ID).
			Bool("created", result.Created).
			Msg("anchor point saved")

		c.JSON(http.StatusCreated, result.Point)
	}
}

func (h *Handler) getCounts(c *gin.Context) {
	counts, err := h.countService.Counts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
