package store

import (
	"fmt"
	"sync"

	"github.com/shenikar/agri_incident_tracker/internal/models"
)

// HighSeverityThreshold - порог severity_score (включительно), начиная с которого инцидент считается серьёзным
const HighSeverityThreshold = 70

// Predicate отбирает инциденты при линейном сканировании
type Predicate func(*models.Incident) bool

// IncidentStore - хранилище инцидентов в памяти процесса.
// Создаётся один раз при старте и передаётся потребителям явно.
type IncidentStore struct {
	mu        sync.RWMutex
	incidents map[string]*models.Incident
	nextID    uint64
}

// New создает пустое хранилище со счётчиком идентификаторов, начинающимся с 1
func New() *IncidentStore {
	return &IncidentStore{
		incidents: make(map[string]*models.Incident),
		nextID:    1,
	}
}

// GenerateID выдаёт следующий идентификатор вида inc-000001.
// Счётчик увеличивается всегда, даже если инцидент так и не будет сохранён.
func (s *IncidentStore) GenerateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("inc-%06d", s.nextID)
	s.nextID++
	return id
}

// Insert сохраняет инцидент по его IncidentID, молча перезаписывая существующий
func (s *IncidentStore) Insert(incident *models.Incident) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents[incident.IncidentID] = incident.Clone()
	return incident.IncidentID
}

// Get возвращает копию инцидента
func (s *IncidentStore) Get(id string) (*models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	incident, ok := s.incidents[id]
	if !ok {
		return nil, false
	}
	return incident.Clone(), true
}

// Replace перезаписывает инцидент, только если он уже существует
func (s *IncidentStore) Replace(id string, incident *models.Incident) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incidents[id]; !ok {
		return false
	}
	s.incidents[id] = incident.Clone()
	return true
}

// ScanBy возвращает копии всех инцидентов, удовлетворяющих предикату. Порядок не гарантируется.
func (s *IncidentStore) ScanBy(match Predicate) []*models.Incident {
	if match == nil {
		match = All()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Incident, 0)
	for _, incident := range s.incidents {
		if match(incident) {
			out = append(out, incident.Clone())
		}
	}
	return out
}

func (s *IncidentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}

func All() Predicate {
	return func(*models.Incident) bool { return true }
}

func ByLGA(lga string) Predicate {
	return func(i *models.Incident) bool { return i.LGA == lga }
}

func ByStatus(status string) Predicate {
	return func(i *models.Incident) bool { return i.Status == status }
}

// HighSeverity отбирает инциденты с severity_score >= 70
func HighSeverity() Predicate {
	return func(i *models.Incident) bool { return i.Enriched.SeverityScore >= HighSeverityThreshold }
}

// And объединяет предикаты; пустой список совпадает со всем
func And(predicates ...Predicate) Predicate {
	return func(i *models.Incident) bool {
		for _, p := range predicates {
			if !p(i) {
				return false
			}
		}
		return true
	}
}
