package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/shenikar/agri_incident_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// bindAndValidate читает JSON и проверяет его валидатором. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
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

// @Summary Create a new incident
// @Description Store a full incident record. Empty incident_id and status are filled in; an existing id is overwritten.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident record"
// @Success 201 {object} CreateIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	id := h.incidentService.CreateIncident(c.Request.Context(), DTOToIncidentModel(input))
	c.JSON(http.StatusCreated, CreateIncidentResponse{IncidentID: id})
}

// @Summary Get a list of incidents
// @Description Get all incidents ordered by id, optionally filtered by LGA, status and high severity
// @Tags Incidents
// @Accept json
// @Produce json
// @Param lga query string false "LGA name"
// @Param status query string false "Incident status"
// @Param high_severity query bool false "Only incidents with severity >= 70"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := models.IncidentFilter{
		LGA:    c.Query("lga"),
		Status: c.Query("status"),
	}
	if raw := c.Query("high_severity"); raw != "" {
		high, err := strconv.ParseBool(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid high_severity parameter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid high_severity parameter"})
			return
		}
		filter.HighSeverity = high
	}

	incidents := h.incidentService.ListIncidents(c.Request.Context(), filter)
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Count incidents
// @Tags Incidents
// @Produce json
// @Success 200 {object} CountResponse
// @Router /incidents/count [get]
func (h *Handler) countIncidents(c *gin.Context) {
	c.JSON(http.StatusOK, CountResponse{Count: h.incidentService.CountIncidents(c.Request.Context())})
}

// @Summary List high-severity incidents
// @Description Incidents with severity score of 70 or more
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Router /incidents/high-severity [get]
func (h *Handler) listHighSeverity(c *gin.Context) {
	incidents := h.incidentService.ListHighSeverity(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, ok := h.incidentService.GetIncident(c.Request.Context(), id)
	if !ok {
		log.Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Add a recommendation
// @Description Append a recommendation to the incident
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param recommendation body RecommendationDTO true "Recommendation"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/recommendations [post]
func (h *Handler) addRecommendation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addRecommendation").WithField("id", id)

	var input RecommendationDTO
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.respondApplied(c, h.incidentService.AddRecommendation(c.Request.Context(), id, DTOToRecommendation(input)))
}

// @Summary Update incident status
// @Description Overwrite the incident status. Any value is accepted.
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [put]
func (h *Handler) setStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.respondApplied(c, h.incidentService.SetStatus(c.Request.Context(), id, input.Status))
}

// @Summary Raise a resource request
// @Description Replace the incident resource request
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param request body RaiseResourceRequestRequest true "Resource request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/resource-request [post]
func (h *Handler) raiseResourceRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "raiseResourceRequest").WithField("id", id)

	var input RaiseResourceRequestRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.respondApplied(c, h.incidentService.RaiseResourceRequest(c.Request.Context(), id, input.Type, input.Notes))
}

// @Summary Set enrichment data
// @Description Overwrite weather hint, severity score and tags
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param enrichment body EnrichedDTO true "Enrichment data"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/enrichment [put]
func (h *Handler) enrichIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "enrichIncident").WithField("id", id)

	var input EnrichedDTO
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.respondApplied(c, h.incidentService.EnrichIncident(c.Request.Context(), id, DTOToEnriched(input)))
}

func (h *Handler) respondApplied(c *gin.Context, applied bool) {
	if !applied {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit a farmer report
// @Description Create an incident from a farmer report, enrich it, add a recommendation and raise resources for severe cases
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "Farmer report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	outcome := h.incidentService.SubmitReport(c.Request.Context(), DTOToFarmerReport(input))
	c.JSON(http.StatusCreated, OutcomeToReportResponse(outcome))
}

// @Summary Get LGA summary
// @Description Category breakdown, high-severity count and top three high-severity incidents of an LGA
// @Tags LGAs
// @Produce json
// @Param lga path string true "LGA name"
// @Success 200 {object} LGASummaryResponse
// @Router /lgas/{lga}/summary [get]
func (h *Handler) summarizeLGA(c *gin.Context) {
	summary := h.incidentService.SummarizeLGA(c.Request.Context(), c.Param("lga"))
	c.JSON(http.StatusOK, SummaryToResponse(summary))
}

// @Summary Get incident statistics
// @Description Totals by status, category and LGA
// @Tags Admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsToResponse(h.incidentService.Stats(c.Request.Context())))
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
