package handlers

import (
	"net/http"
	"strconv"

	dom "github.com/Dr-Min/Scheduler/internal/domain"
	"github.com/Dr-Min/Scheduler/internal/dto"
	"github.com/Dr-Min/Scheduler/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// List godoc
// @Summary      List all schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {array}   dto.ScheduleResponse
// @Failure      500  {object}  map[string]string
// @Router       /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedulesToResponses(list))
}

// Create godoc
// @Summary      Create a schedule entry
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateScheduleRequest  true  "Schedule body"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      500   {object}  map[string]string
// @Router       /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The original client expects 500 for every create failure,
		// including missing required fields. No 400 path here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	exercised := false
	if req.Exercised != nil {
		exercised = *req.Exercised
	}
	rec, err := h.svc.Create(c.Request.Context(), req.Date, req.User, req.CheckInTime, exercised, req.Reflection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, scheduleToResponse(rec))
}

// Update godoc
// @Summary      Update check-in fields of a schedule entry
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Schedule ID"
// @Param        body  body      dto.UpdateScheduleRequest  true  "Partial update"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      500   {object}  map[string]string
// @Router       /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	// An unknown id also answers 500, not 404: clients of the original
	// backend rely on that status.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// An absent key keeps the stored value; an explicit null clears it
	// (a null exercised falls back to the column default, false).
	upd := service.ScheduleUpdate{}
	if req.CheckInTime.Present() {
		upd.SetCheckInTime, upd.CheckInTime = true, req.CheckInTime.Ptr()
	}
	if req.Exercised.Present() {
		upd.SetExercised = true
		if v := req.Exercised.Ptr(); v != nil {
			upd.Exercised = *v
		}
	}
	if req.Reflection.Present() {
		upd.SetReflection, upd.Reflection = true, req.Reflection.Ptr()
	}
	rec, err := h.svc.Update(c.Request.Context(), id, upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, scheduleToResponse(rec))
}

// GetByUserDate godoc
// @Summary      Get one schedule entry by user and date
// @Tags         schedules
// @Produce      json
// @Param        user  path      string  true  "User name"
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /schedules/{user}/{date} [get]
func (h *ScheduleHandler) GetByUserDate(c *gin.Context) {
	rec, err := h.svc.FindOne(c.Request.Context(), c.Param("user"), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, scheduleToResponse(*rec))
}

// ListByUser godoc
// @Summary      List all schedule entries of one user
// @Tags         schedules
// @Produce      json
// @Param        user  path      string  true  "User name"
// @Success      200   {array}   dto.ScheduleResponse
// @Failure      500   {object}  map[string]string
// @Router       /schedules/{user} [get]
func (h *ScheduleHandler) ListByUser(c *gin.Context) {
	list, err := h.svc.ListByUser(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedulesToResponses(list))
}

func scheduleToResponse(s dom.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:          s.ID,
		Date:        s.Date,
		User:        s.User,
		CheckInTime: s.CheckInTime,
		Exercised:   s.Exercised,
		Reflection:  s.Reflection,
	}
}

func schedulesToResponses(list []dom.Schedule) []dto.ScheduleResponse {
	out := make([]dto.ScheduleResponse, len(list))
	for i := range list {
		out[i] = scheduleToResponse(list[i])
	}
	return out
}
