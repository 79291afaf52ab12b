package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"camera-control/dto"
	"camera-control/entities"
	"camera-control/repository"
	"camera-control/service"
)

// CameraHandler maps the /camera routes onto the camera service.
type CameraHandler struct {
	svc service.Service
}

func NewCameraHandler(svc service.Service) *CameraHandler {
	return &CameraHandler{svc: svc}
}

// Register mounts every camera route on the given group.
func (h *CameraHandler) Register(r *gin.RouterGroup) {
	r.POST("/settings", h.CreateSettings)
	r.GET("/settings", h.GetAllSettings)
	r.GET("/settings/:id", h.GetSettings)
	r.PUT("/settings/:id", h.UpdateSettings)
	r.DELETE("/settings/:id", h.DeleteSettings)

	r.POST("/recordings", h.StartRecording)
	r.GET("/recordings", h.GetAllRecordings)
	r.GET("/recordings/:id", h.GetRecording)
	r.PUT("/recordings/:id/stop", h.StopRecording)
	r.DELETE("/recordings/:id", h.DeleteRecording)

	r.GET("/status", h.GetStatus)
	r.PUT("/status", h.UpdateStatus)

	r.GET("/capabilities", h.GetCapabilities)
}

func (h *CameraHandler) CreateSettings(c *gin.Context) {
	var req dto.CreateCameraSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.svc.CreateSettings(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err, "Camera settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CameraHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Camera settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CameraHandler) GetAllSettings(c *gin.Context) {
	settings, err := h.svc.GetAllSettings(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "Camera settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CameraHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateCameraSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.svc.UpdateSettings(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, err, "Camera settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CameraHandler) DeleteSettings(c *gin.Context) {
	if err := h.svc.DeleteSettings(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, "Camera settings not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Camera settings deleted successfully"})
}

func (h *CameraHandler) StartRecording(c *gin.Context) {
	var req dto.StartRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	recording, err := h.svc.StartRecording(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err, "Recording not found")
		return
	}
	c.JSON(http.StatusOK, recording)
}

func (h *CameraHandler) StopRecording(c *gin.Context) {
	recording, err := h.svc.StopRecording(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Recording not found or already stopped")
		return
	}
	c.JSON(http.StatusOK, recording)
}

func (h *CameraHandler) GetRecording(c *gin.Context) {
	recording, err := h.svc.GetRecording(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "Recording not found")
		return
	}
	c.JSON(http.StatusOK, recording)
}

func (h *CameraHandler) GetAllRecordings(c *gin.Context) {
	recordings, err := h.svc.GetAllRecordings(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "Recording not found")
		return
	}
	c.JSON(http.StatusOK, recordings)
}

func (h *CameraHandler) DeleteRecording(c *gin.Context) {
	if err := h.svc.DeleteRecording(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, "Recording not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recording deleted successfully"})
}

func (h *CameraHandler) GetStatus(c *gin.Context) {
	status, err := h.svc.GetCameraStatus(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "Camera status not found")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *CameraHandler) UpdateStatus(c *gin.Context) {
	// The status payload is deliberately untyped: any shape is accepted
	// and replaces the stored singleton wholesale.
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	status, err := h.svc.UpdateCameraStatus(c.Request.Context(), doc)
	if err != nil {
		abortWithError(c, err, "Camera status not found")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *CameraHandler) GetCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetCameraCapabilities())
}

// abortWithError translates service errors into the response taxonomy:
// absent records become 404, bound violations 422, anything else a 500
// carrying the failure text.
func abortWithError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, entities.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
