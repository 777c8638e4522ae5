package v1

import "github.com/shenikar/agri_incident_tracker/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		IncidentID:  dto.IncidentID,
		FarmerID:    dto.FarmerID,
		LGA:         dto.LGA,
		State:       dto.State,
		Geo:         models.Geo{Lat: dto.Geo.Lat, Lon: dto.Geo.Lon},
		Crop:        dto.Crop,
		Category:    dto.Category,
		Description: dto.Description,
		ReportedAt:  dto.ReportedAt,
		Enriched:    DTOToEnriched(dto.Enriched),
		Status:      dto.Status,
		ResourceRequest: models.ResourceRequest{
			Requested: dto.ResourceRequest.Requested,
			Type:      dto.ResourceRequest.Type,
			Notes:     dto.ResourceRequest.Notes,
			CreatedAt: dto.ResourceRequest.CreatedAt,
		},
	}
	for _, r := range dto.Recommendations {
		incident.Recommendations = append(incident.Recommendations, DTOToRecommendation(r))
	}
	return incident
}

func DTOToEnriched(dto EnrichedDTO) models.Enriched {
	return models.Enriched{
		WeatherHint:   dto.WeatherHint,
		SeverityScore: dto.SeverityScore,
		Tags:          dto.Tags,
	}
}

func DTOToRecommendation(dto RecommendationDTO) models.Recommendation {
	return models.Recommendation{
		Step:      dto.Step,
		Source:    dto.Source,
		CreatedAt: dto.CreatedAt,
	}
}

func DTOToFarmerReport(dto SubmitReportRequest) models.FarmerReport {
	return models.FarmerReport{
		FarmerID:    dto.FarmerID,
		LGA:         dto.LGA,
		State:       dto.State,
		Lat:         dto.Lat,
		Lon:         dto.Lon,
		Crop:        dto.Crop,
		Category:    dto.Category,
		Description: dto.Description,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// Пустые списки отдаются как [], а не null.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		IncidentID:  model.IncidentID,
		FarmerID:    model.FarmerID,
		LGA:         model.LGA,
		State:       model.State,
		Geo:         GeoDTO{Lat: model.Geo.Lat, Lon: model.Geo.Lon},
		Crop:        model.Crop,
		Category:    model.Category,
		Description: model.Description,
		ReportedAt:  model.ReportedAt,
		Enriched: EnrichedDTO{
			WeatherHint:   model.Enriched.WeatherHint,
			SeverityScore: model.Enriched.SeverityScore,
			Tags:          append([]string{}, model.Enriched.Tags...),
		},
		Status:          model.Status,
		Recommendations: make([]RecommendationDTO, 0, len(model.Recommendations)),
		ResourceRequest: ResourceRequestDTO{
			Requested: model.ResourceRequest.Requested,
			Type:      model.ResourceRequest.Type,
			Notes:     model.ResourceRequest.Notes,
			CreatedAt: model.ResourceRequest.CreatedAt,
		},
		Audit: make([]AuditEntryDTO, 0, len(model.Audit)),
	}
	for _, r := range model.Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationDTO{Step: r.Step, Source: r.Source, CreatedAt: r.CreatedAt})
	}
	for _, a := range model.Audit {
		resp.Audit = append(resp.Audit, AuditEntryDTO{Event: a.Event, At: a.At})
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func OutcomeToReportResponse(outcome *models.ReportOutcome) *ReportResponse {
	return &ReportResponse{
		IncidentID:        outcome.IncidentID,
		Severity:          outcome.Severity,
		Recommendation:    outcome.Recommendation,
		ResourceRequested: outcome.ResourceRequested,
		ResourceType:      outcome.ResourceType,
		Message:           outcome.Message,
	}
}

func SummaryToResponse(summary *models.LGASummary) *LGASummaryResponse {
	return &LGASummaryResponse{
		LGA:               summary.LGA,
		TotalIncidents:    summary.TotalIncidents,
		CategoryBreakdown: summary.CategoryBreakdown,
		HighSeverityCount: summary.HighSeverityCount,
		TopHighSeverity:   summary.TopHighSeverity,
		Incidents:         ModelsToIncidentResponses(summary.Incidents),
	}
}

func StatsToResponse(stats *models.Stats) *StatsResponse {
	return &StatsResponse{
		TotalIncidents:    stats.TotalIncidents,
		ByStatus:          stats.ByStatus,
		ByCategory:        stats.ByCategory,
		ByLGA:             stats.ByLGA,
		HighSeverityCount: stats.HighSeverityCount,
	}
}
