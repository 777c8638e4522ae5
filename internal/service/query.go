package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/shenikar/agri_incident_tracker/internal/store"
	"github.com/sirupsen/logrus"
)

const topHighSeverityLimit = 3

func filterPredicate(f models.IncidentFilter) store.Predicate {
	predicates := make([]store.Predicate, 0, 3)
	if f.LGA != "" {
		predicates = append(predicates, store.ByLGA(f.LGA))
	}
	if f.Status != "" {
		predicates = append(predicates, store.ByStatus(f.Status))
	}
	if f.HighSeverity {
		predicates = append(predicates, store.HighSeverity())
	}
	return store.And(predicates...)
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, bool) {
	incident, ok := s.store.Get(id)
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "GetIncident",
			"incident_id": id,
		}).Debug("Incident not found")
	}
	return incident, ok
}

// ListIncidents возвращает инциденты, отсортированные по id
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) []*models.Incident {
	incidents := s.scan(filterPredicate(filter))
	s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "ListIncidents",
		"lga":           filter.LGA,
		"status":        filter.Status,
		"high_severity": filter.HighSeverity,
		"count":         len(incidents),
	}).Debug("Incidents listed")
	return incidents
}

func (s *incidentService) ListByLGA(ctx context.Context, lga string) []*models.Incident {
	return s.scan(store.ByLGA(lga))
}

func (s *incidentService) ListByStatus(ctx context.Context, status string) []*models.Incident {
	return s.scan(store.ByStatus(status))
}

func (s *incidentService) ListHighSeverity(ctx context.Context) []*models.Incident {
	return s.scan(store.HighSeverity())
}

func (s *incidentService) CountIncidents(ctx context.Context) int {
	return s.store.Count()
}

// SummarizeLGA считает разбивку по категориям и выбирает три самых серьёзных инцидента района
func (s *incidentService) SummarizeLGA(ctx context.Context, lga string) *models.LGASummary {
	incidents := s.scan(store.ByLGA(lga))

	summary := &models.LGASummary{
		LGA:               lga,
		TotalIncidents:    len(incidents),
		CategoryBreakdown: make(map[string]int),
		TopHighSeverity:   make([]string, 0, topHighSeverityLimit),
		Incidents:         incidents,
	}

	high := make([]*models.Incident, 0)
	isHigh := store.HighSeverity()
	for _, incident := range incidents {
		summary.CategoryBreakdown[categoryKey(incident.Category)]++
		if isHigh(incident) {
			high = append(high, incident)
		}
	}
	summary.HighSeverityCount = len(high)

	sort.SliceStable(high, func(i, j int) bool {
		return high[i].Enriched.SeverityScore > high[j].Enriched.SeverityScore
	})
	for i := 0; i < len(high) && i < topHighSeverityLimit; i++ {
		summary.TopHighSeverity = append(summary.TopHighSeverity, FormatSummary(high[i]))
	}
	return summary
}

// Stats возвращает агрегаты по статусам, категориям и районам
func (s *incidentService) Stats(ctx context.Context) *models.Stats {
	stats := &models.Stats{
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByLGA:      make(map[string]int),
	}
	isHigh := store.HighSeverity()
	for _, incident := range s.store.ScanBy(store.All()) {
		stats.TotalIncidents++
		stats.ByStatus[incident.Status]++
		stats.ByCategory[categoryKey(incident.Category)]++
		stats.ByLGA[incident.LGA]++
		if isHigh(incident) {
			stats.HighSeverityCount++
		}
	}
	return stats
}

// FormatSummary - однострочное описание инцидента для операторов
func FormatSummary(incident *models.Incident) string {
	return fmt.Sprintf("%s | %s | %s | Severity: %d | Status: %s",
		incident.IncidentID,
		incident.Crop,
		incident.Category,
		incident.Enriched.SeverityScore,
		incident.Status,
	)
}

func (s *incidentService) scan(match store.Predicate) []*models.Incident {
	incidents := s.store.ScanBy(match)
	sort.Slice(incidents, func(i, j int) bool {
		return incidents[i].IncidentID < incidents[j].IncidentID
	})
	return incidents
}

func categoryKey(category string) string {
	if category == "" {
		return "unknown"
	}
	return category
}
