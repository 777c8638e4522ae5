package service

import (
	"context"
	"fmt"

	"github.com/shenikar/agri_incident_tracker/internal/enrichment"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// SubmitReport создает инцидент из отчёта и проводит его через обогащение, рекомендацию
// и, для серьёзных случаев, запрос ресурсов. Каждый шаг попадает в аудит.
func (s *incidentService) SubmitReport(ctx context.Context, report models.FarmerReport) *models.ReportOutcome {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "SubmitReport",
		"farmer_id": report.FarmerID,
		"lga":       report.LGA,
	})
	log.Info("Processing farmer report")

	id := s.CreateIncident(ctx, &models.Incident{
		FarmerID:    report.FarmerID,
		LGA:         report.LGA,
		State:       report.State,
		Geo:         models.Geo{Lat: report.Lat, Lon: report.Lon},
		Crop:        report.Crop,
		Category:    report.Category,
		Description: report.Description,
		ReportedAt:  s.now(),
	})

	enriched := enrichment.Enrich(report.Category, report.Crop, report.Lat, report.Lon, report.Description)
	s.EnrichIncident(ctx, id, enriched)

	rec := enrichment.Recommend(report.Category, report.Crop, enriched.SeverityScore, s.now())
	s.AddRecommendation(ctx, id, rec)
	s.SetStatus(ctx, id, models.StatusRecommended)

	outcome := &models.ReportOutcome{
		IncidentID:     id,
		Severity:       enriched.SeverityScore,
		Recommendation: rec.Step,
	}
	if enrichment.ShouldRequestResources(enriched.SeverityScore) {
		outcome.ResourceRequested = true
		outcome.ResourceType = enrichment.ResourceType(report.Category)
		notes := fmt.Sprintf("High severity %s incident", report.Category)
		s.RaiseResourceRequest(ctx, id, outcome.ResourceType, notes)
	}
	outcome.Message = acknowledgement(outcome)

	log.WithFields(logrus.Fields{
		"incident_id": id,
		"severity":    outcome.Severity,
	}).Info("Farmer report processed")
	return outcome
}

func acknowledgement(o *models.ReportOutcome) string {
	msg := fmt.Sprintf("Thank you for your report. Your incident has been recorded (ID: %s). ", o.IncidentID)
	msg += fmt.Sprintf("Severity level: %d/100. ", o.Severity)
	msg += fmt.Sprintf("Recommendation: %s", o.Recommendation)
	if o.ResourceRequested {
		msg += fmt.Sprintf(" A resource request has been raised for %s.", o.ResourceType)
	}
	return msg
}
