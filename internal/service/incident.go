package service

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/agri_incident_tracker/internal/metrics"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/shenikar/agri_incident_tracker/internal/store"
	"github.com/shenikar/agri_incident_tracker/internal/webhook"
	"github.com/sirupsen/logrus"
)

// TimeLayout - формат временных меток аудита и рекомендаций
const TimeLayout = "2006-01-02T15:04:05.000Z"

// События аудита
const (
	EventCreated             = "created"
	EventEnriched            = "enriched"
	EventRecommendationAdded = "recommendation_added"
	EventStatusUpdatedPrefix = "status_updated_to_"
	EventResourceRequested   = "resource_requested"
)

// IncidentStore определяет контракт хранилища инцидентов
type IncidentStore interface {
	GenerateID() string
	Insert(incident *models.Incident) string
	Get(id string) (*models.Incident, bool)
	Replace(id string, incident *models.Incident) bool
	ScanBy(match store.Predicate) []*models.Incident
	Count() int
}

// AuditArchive - внешний журнал, куда дублируются записи аудита
type AuditArchive interface {
	Append(ctx context.Context, incidentID string, entry models.AuditEntry) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами.
// Мутации с неизвестным id ничего не делают и возвращают false.
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) string
	AddRecommendation(ctx context.Context, id string, rec models.Recommendation) bool
	SetStatus(ctx context.Context, id, status string) bool
	RaiseResourceRequest(ctx context.Context, id, requestType, notes string) bool
	EnrichIncident(ctx context.Context, id string, enriched models.Enriched) bool
	SubmitReport(ctx context.Context, report models.FarmerReport) *models.ReportOutcome

	GetIncident(ctx context.Context, id string) (*models.Incident, bool)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) []*models.Incident
	ListByLGA(ctx context.Context, lga string) []*models.Incident
	ListByStatus(ctx context.Context, status string) []*models.Incident
	ListHighSeverity(ctx context.Context) []*models.Incident
	CountIncidents(ctx context.Context) int
	SummarizeLGA(ctx context.Context, lga string) *models.LGASummary
	Stats(ctx context.Context) *models.Stats
}

type incidentService struct {
	store     IncidentStore
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
	archive   AuditArchive
	metrics   *metrics.Metrics
	nowFn     func() time.Time

	// mu сериализует цепочки чтение-изменение-запись
	mu sync.Mutex
}

// NewIncidentService создает сервис. publisher и archive могут быть nil.
func NewIncidentService(
	incidentStore IncidentStore,
	logger *logrus.Logger,
	publisher webhook.WebhookPublisher,
	archive AuditArchive,
	m *metrics.Metrics,
) IncidentService {
	return &incidentService{
		store:     incidentStore,
		logger:    logger,
		publisher: publisher,
		archive:   archive,
		metrics:   m,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *incidentService) now() string {
	return s.nowFn().UTC().Format(TimeLayout)
}

// CreateIncident сохраняет новый инцидент, при необходимости выдавая id и статус по умолчанию
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) string {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"lga":     incident.LGA,
	})

	s.mu.Lock()
	record := incident.Clone()
	if record.IncidentID == "" {
		record.IncidentID = s.store.GenerateID()
	}
	if record.Status == "" {
		record.Status = models.StatusReceived
	}
	entry := models.AuditEntry{Event: EventCreated, At: s.now()}
	record.Audit = append(record.Audit, entry)
	id := s.store.Insert(record)
	count := s.store.Count()
	s.mu.Unlock()

	s.metrics.ObserveOperation("create", true)
	s.metrics.SetStoredIncidents(count)
	log.WithField("incident_id", id).Info("Incident created successfully")

	s.emit(ctx, id, entry)
	return id
}

// AddRecommendation добавляет рекомендацию в конец списка
func (s *incidentService) AddRecommendation(ctx context.Context, id string, rec models.Recommendation) bool {
	return s.mutate(ctx, "add_recommendation", id, func(incident *models.Incident, _ string) string {
		incident.Recommendations = append(incident.Recommendations, rec)
		return EventRecommendationAdded
	})
}

// SetStatus перезаписывает статус; переходы между статусами не проверяются
func (s *incidentService) SetStatus(ctx context.Context, id, status string) bool {
	return s.mutate(ctx, "set_status", id, func(incident *models.Incident, _ string) string {
		incident.Status = status
		return EventStatusUpdatedPrefix + status
	})
}

// RaiseResourceRequest заменяет текущий запрос ресурсов новым
func (s *incidentService) RaiseResourceRequest(ctx context.Context, id, requestType, notes string) bool {
	return s.mutate(ctx, "raise_resource_request", id, func(incident *models.Incident, now string) string {
		incident.ResourceRequest = models.ResourceRequest{
			Requested: true,
			Type:      requestType,
			Notes:     notes,
			CreatedAt: &now,
		}
		return EventResourceRequested
	})
}

// EnrichIncident перезаписывает данные обогащения
func (s *incidentService) EnrichIncident(ctx context.Context, id string, enriched models.Enriched) bool {
	return s.mutate(ctx, "enrich", id, func(incident *models.Incident, _ string) string {
		incident.Enriched = models.Enriched{
			WeatherHint:   enriched.WeatherHint,
			SeverityScore: enriched.SeverityScore,
			Tags:          append([]string(nil), enriched.Tags...),
		}
		return EventEnriched
	})
}

// mutate выполняет общий протокол: чтение, изменение копии, запись аудита, замена.
// Если инцидента нет, ничего не меняется и аудит не пишется.
func (s *incidentService) mutate(ctx context.Context, operation, id string, apply func(*models.Incident, string) string) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      operation,
		"incident_id": id,
	})

	entry, ok := s.applyLocked(id, apply)
	s.metrics.ObserveOperation(operation, ok)
	if !ok {
		log.Warn("Incident not found, mutation skipped")
		return false
	}

	log.WithField("event", entry.Event).Info("Incident updated successfully")
	s.emit(ctx, id, entry)
	return true
}

func (s *incidentService) applyLocked(id string, apply func(*models.Incident, string) string) (models.AuditEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incident, ok := s.store.Get(id)
	if !ok {
		return models.AuditEntry{}, false
	}
	now := s.now()
	entry := models.AuditEntry{Event: apply(incident, now), At: now}
	incident.Audit = append(incident.Audit, entry)
	return entry, s.store.Replace(id, incident)
}

// emit дублирует запись аудита в очередь событий и архив. Ошибки только логируются.
func (s *incidentService) emit(ctx context.Context, id string, entry models.AuditEntry) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"incident_id": id,
		"event":       entry.Event,
	})

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, webhook.NewIncidentEvent(id, entry.Event, entry.At)); err != nil {
			log.WithError(err).Warn("Failed to publish incident event")
			s.metrics.ObserveSideEffectError("publisher")
		}
	}
	if s.archive != nil {
		if err := s.archive.Append(ctx, id, entry); err != nil {
			log.WithError(err).Warn("Failed to archive audit entry")
			s.metrics.ObserveSideEffectError("archive")
		}
	}
}
