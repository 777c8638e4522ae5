package models

// FarmerReport - исходный отчёт фермера до обогащения
type FarmerReport struct {
	FarmerID    string  `json:"farmer_id"`
	LGA         string  `json:"lga"`
	State       string  `json:"state"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Crop        string  `json:"crop"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// ReportOutcome - результат обработки отчёта
type ReportOutcome struct {
	IncidentID        string
	Severity          uint16
	Recommendation    string
	ResourceRequested bool
	ResourceType      string
	Message           string
}

// IncidentFilter - условия выборки; пустые поля не ограничивают результат
type IncidentFilter struct {
	LGA          string
	Status       string
	HighSeverity bool
}

// LGASummary - сводка по району для операторов
type LGASummary struct {
	LGA               string
	TotalIncidents    int
	CategoryBreakdown map[string]int
	HighSeverityCount int
	TopHighSeverity   []string
	Incidents         []*Incident
}

type Stats struct {
	TotalIncidents    int
	ByStatus          map[string]int
	ByCategory        map[string]int
	ByLGA             map[string]int
	HighSeverityCount int
}
