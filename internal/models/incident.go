package models

// Статусы, которые выставляет поток обработки отчётов. Ядро хранилища их не проверяет:
// статус остаётся произвольной строкой.
const (
	StatusReceived    = "received"
	StatusRecommended = "recommended"
	StatusDispatched  = "dispatched"
	StatusClosed      = "closed"
)

type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Enriched - производные данные, которые заполняет внешний сервис обогащения
type Enriched struct {
	WeatherHint   string   `json:"weather_hint"`
	SeverityScore uint16   `json:"severity_score"`
	Tags          []string `json:"tags"`
}

type Recommendation struct {
	Step      string `json:"step"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}

// ResourceRequest хранит только последний запрос ресурсов
type ResourceRequest struct {
	Requested bool    `json:"requested"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes"`
	CreatedAt *string `json:"created_at"`
}

type AuditEntry struct {
	Event string `json:"event"`
	At    string `json:"at"`
}

type Incident struct {
	IncidentID      string           `json:"incident_id"`
	FarmerID        string           `json:"farmer_id"`
	LGA             string           `json:"lga"`
	State           string           `json:"state"`
	Geo             Geo              `json:"geo"`
	Crop            string           `json:"crop"`
	Category        string           `json:"category"`
	Description     string           `json:"description"`
	ReportedAt      string           `json:"reported_at"`
	Enriched        Enriched         `json:"enriched"`
	Status          string           `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
	ResourceRequest ResourceRequest  `json:"resource_request"`
	Audit           []AuditEntry     `json:"audit"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	cp := *i
	if i.Enriched.Tags != nil {
		cp.Enriched.Tags = append([]string(nil), i.Enriched.Tags...)
	}
	if i.Recommendations != nil {
		cp.Recommendations = append([]Recommendation(nil), i.Recommendations...)
	}
	if i.Audit != nil {
		cp.Audit = append([]AuditEntry(nil), i.Audit...)
	}
	if i.ResourceRequest.CreatedAt != nil {
		at := *i.ResourceRequest.CreatedAt
		cp.ResourceRequest.CreatedAt = &at
	}
	return &cp
}
