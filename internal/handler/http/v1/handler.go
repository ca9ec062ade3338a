package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/config"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	incidentFailureMessage = "Failed to analyze media or find location. Please try again."
	spatialFailureMessage  = "Failed to perform spatial analysis."
	imageRequiredMessage   = "Please upload an image file (JPG/PNG) for spatial analysis."
)

// validationErrors - ошибки сервисов, которые означают некорректный ввод
var validationErrors = []error{
	service.ErrAddressRequired,
	service.ErrEmptyQuery,
	service.ErrInvalidTab,
	service.ErrInvalidStatus,
	media.ErrUnsupportedMedia,
	media.ErrUnseekableMedia,
}

type Handler struct {
	sessionService   service.SessionService
	incidentService  service.IncidentService
	spatialService   service.SpatialService
	assistantService service.AssistantService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	sessionService service.SessionService,
	incidentService service.IncidentService,
	spatialService service.SpatialService,
	assistantService service.AssistantService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		sessionService:   sessionService,
		incidentService:  incidentService,
		spatialService:   spatialService,
		assistantService: assistantService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Create a dashboard session
// @Description Create a new session seeded with the assistant welcome message. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	session, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to create session in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(session))
}

// @Summary Get session snapshot
// @Description Get active tab, budget filter, report count, transcript and spatial finding. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("session_id", id)

	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Set active tab
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param tab body SetTabRequest true "Tab"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/tab [put]
func (h *Handler) setTab(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setTab").WithField("session_id", id)

	var input SetTabRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.sessionService.SetTab(c.Request.Context(), id, models.Tab(input.Tab))
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Report an incident
// @Description Upload a photo or video with the incident address. Classification and geocoding run in parallel; both must succeed. Requires API key.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param address formData string true "Incident address"
// @Param media formData file true "Photo or video"
// @Success 201 {object} IncidentReportResponse
// @Failure 400 {object} map[string]string "Missing address or unsupported media"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 502 {object} map[string]string "Analysis failed"
// @Router /sessions/{id}/incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reportIncident").WithField("session_id", id)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())
	if _, err := c.MultipartForm(); err != nil {
		h.writeUploadError(c, log, err, "media")
		return
	}
	address := c.PostForm("address")
	// Адрес проверяется до обработки медиа, чтобы не запускать декодирование впустую
	if strings.TrimSpace(address) == "" {
		h.writeError(c, log, service.ErrAddressRequired, incidentFailureMessage)
		return
	}
	header, err := c.FormFile("media")
	if err != nil {
		h.writeUploadError(c, log, err, "media")
		return
	}
	file, err := header.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	report, err := h.incidentService.ReportIncident(c.Request.Context(), id, address, file, header.Filename)
	if err != nil {
		h.writeError(c, log, err, incidentFailureMessage)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List incident reports
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {array} IncidentReportResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/incidents [get]
func (h *Handler) listReports(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listReports").WithField("session_id", id)

	reports, err := h.incidentService.ListReports(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get map layer
// @Description Report markers as a GeoJSON FeatureCollection with severity colours, plus map centre and zoom.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} MapResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/map [get]
func (h *Handler) getMap(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getMap").WithField("session_id", id)

	reports, err := h.incidentService.ListReports(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ReportsToMapResponse(reports, h.cfg.TileURL))
}

// @Summary Run spatial analysis
// @Description Upload a satellite image to detect transit deserts. Replaces the previous finding. Requires API key.
// @Tags Spatial
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param image formData file true "Satellite image (JPG/PNG)"
// @Success 201 {object} SpatialFindingResponse
// @Failure 400 {object} map[string]string "Not an image"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 502 {object} map[string]string "Analysis failed"
// @Router /sessions/{id}/spatial [post]
func (h *Handler) analyzeSpatial(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "analyzeSpatial").WithField("session_id", id)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())
	header, err := c.FormFile("image")
	if err != nil {
		h.writeUploadError(c, log, err, "image")
		return
	}
	file, err := header.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	finding, err := h.spatialService.AnalyzeSpatial(c.Request.Context(), id, file, header.Filename)
	if err != nil {
		h.writeError(c, log, err, spatialFailureMessage)
		return
	}
	c.JSON(http.StatusCreated, ModelToFindingResponse(finding))
}

// @Summary Get current spatial finding
// @Tags Spatial
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SpatialFindingResponse
// @Failure 404 {object} map[string]string "Session or finding not found"
// @Router /sessions/{id}/spatial [get]
func (h *Handler) getFinding(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getFinding").WithField("session_id", id)

	finding, err := h.spatialService.GetFinding(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNoFinding) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToFindingResponse(finding))
}

// @Summary Ask the budget assistant
// @Description Append a question and the assistant answer to the transcript. Provider failures become an assistant message.
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param query body ChatRequest true "Question"
// @Success 200 {array} ChatMessageResponse
// @Failure 400 {object} map[string]string "Empty query"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/chat [post]
func (h *Handler) askBudget(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "askBudget").WithField("session_id", id)

	var input ChatRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	transcript, err := h.assistantService.AskBudget(c.Request.Context(), id, input.Query)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToChatResponses(transcript))
}

// @Summary Get chat transcript
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {array} ChatMessageResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/chat [get]
func (h *Handler) getTranscript(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getTranscript").WithField("session_id", id)

	transcript, err := h.assistantService.GetTranscript(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToChatResponses(transcript))
}

// @Summary Get session budget view
// @Description Budget items filtered by the session status filter, with stats over the full table.
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} BudgetResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/budget [get]
func (h *Handler) getBudgetView(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getBudgetView").WithField("session_id", id)

	view, err := h.sessionService.GetBudgetView(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, BudgetViewToResponse(view))
}

// @Summary Toggle budget status filter
// @Description Selecting the active status again, or an empty status, clears the filter.
// @Tags Budget
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param filter body BudgetFilterRequest true "Status"
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/budget/filter [post]
func (h *Handler) toggleBudgetFilter(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "toggleBudgetFilter").WithField("session_id", id)

	var input BudgetFilterRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sessionService.ToggleBudgetFilter(c.Request.Context(), id, models.BudgetStatus(input.Status))
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, BudgetViewToResponse(view))
}

// @Summary Get full budget table
// @Tags Budget
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} BudgetResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /budget [get]
func (h *Handler) getBudget(c *gin.Context) {
	log := h.logger.WithField("method", "getBudget")

	view, err := h.sessionService.GetBudget(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, BudgetViewToResponse(view))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) writeUploadError(c *gin.Context, log *logrus.Entry, err error, field string) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		log.WithError(err).Warn("Upload exceeds size limit")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	log.WithError(err).Warn("Upload is missing")
	c.JSON(http.StatusBadRequest, gin.H{"error": field + " file is required"})
}

// writeError сопоставляет ошибку сервиса с HTTP-статусом.
// failureMessage отдается клиенту при сбое внешнего анализа.
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error, failureMessage string) {
	if errors.Is(err, service.ErrSessionNotFound) {
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if errors.Is(err, media.ErrImageRequired) {
		log.WithError(err).Warn("Spatial analysis upload is not an image")
		c.JSON(http.StatusBadRequest, gin.H{"error": imageRequiredMessage})
		return
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			log.WithError(err).Warn("Request rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": target.Error()})
			return
		}
	}
	if errors.Is(err, service.ErrAnalysisFailed) {
		log.WithError(err).Error("External analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": failureMessage})
		return
	}

	log.WithError(err).Error("Request failed")
	if failureMessage == "" {
		failureMessage = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
}
