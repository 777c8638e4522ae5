package v1

// GeoDTO - координаты участка
type GeoDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// EnrichedDTO - данные обогащения
// @Description Данные обогащения инцидента
type EnrichedDTO struct {
	WeatherHint   string   `json:"weather_hint"`
	SeverityScore uint16   `json:"severity_score"`
	Tags          []string `json:"tags"`
}

// RecommendationDTO - шаг рекомендации
type RecommendationDTO struct {
	Step      string `json:"step" validate:"required"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
}

type ResourceRequestDTO struct {
	Requested bool    `json:"requested"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes"`
	CreatedAt *string `json:"created_at"`
}

type AuditEntryDTO struct {
	Event string `json:"event"`
	At    string `json:"at"`
}

// CreateIncidentRequest DTO для создания инцидента из полной записи.
// Пустые incident_id и status заполняются сервисом, аудит ведёт только сервис.
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	IncidentID      string              `json:"incident_id,omitempty"`
	FarmerID        string              `json:"farmer_id"`
	LGA             string              `json:"lga"`
	State           string              `json:"state"`
	Geo             GeoDTO              `json:"geo"`
	Crop            string              `json:"crop"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	ReportedAt      string              `json:"reported_at"`
	Enriched        EnrichedDTO         `json:"enriched"`
	Status          string              `json:"status,omitempty"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	ResourceRequest ResourceRequestDTO  `json:"resource_request"`
}

// CreateIncidentResponse DTO с id созданного инцидента
type CreateIncidentResponse struct {
	IncidentID string `json:"incident_id"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RaiseResourceRequestRequest DTO для запроса ресурсов
// @Description DTO для запроса ресурсов
type RaiseResourceRequestRequest struct {
	Type  string `json:"type" validate:"required"`
	Notes string `json:"notes"`
}

// SubmitReportRequest DTO отчёта фермера
// @Description DTO отчёта фермера
type SubmitReportRequest struct {
	FarmerID    string  `json:"farmer_id" validate:"required"`
	LGA         string  `json:"lga" validate:"required"`
	State       string  `json:"state"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lon         float64 `json:"lon" validate:"longitude"`
	Crop        string  `json:"crop" validate:"required,oneof=maize rice cassava tomato sorghum other"`
	Category    string  `json:"category" validate:"required,oneof=pest disease flood drought input_need other"`
	Description string  `json:"description" validate:"max=2000"`
}

// ReportResponse DTO результата обработки отчёта
type ReportResponse struct {
	IncidentID        string `json:"incident_id"`
	Severity          uint16 `json:"severity"`
	Recommendation    string `json:"recommendation"`
	ResourceRequested bool   `json:"resource_requested"`
	ResourceType      string `json:"resource_type,omitempty"`
	Message           string `json:"message"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	IncidentID      string              `json:"incident_id"`
	FarmerID        string              `json:"farmer_id"`
	LGA             string              `json:"lga"`
	State           string              `json:"state"`
	Geo             GeoDTO              `json:"geo"`
	Crop            string              `json:"crop"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	ReportedAt      string              `json:"reported_at"`
	Enriched        EnrichedDTO         `json:"enriched"`
	Status          string              `json:"status"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	ResourceRequest ResourceRequestDTO  `json:"resource_request"`
	Audit           []AuditEntryDTO     `json:"audit"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// LGASummaryResponse DTO сводки по району
type LGASummaryResponse struct {
	LGA               string              `json:"lga"`
	TotalIncidents    int                 `json:"total_incidents"`
	CategoryBreakdown map[string]int      `json:"category_breakdown"`
	HighSeverityCount int                 `json:"high_severity_count"`
	TopHighSeverity   []string            `json:"top_high_severity"`
	Incidents         []*IncidentResponse `json:"incidents"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalIncidents    int            `json:"total_incidents"`
	ByStatus          map[string]int `json:"by_status"`
	ByCategory        map[string]int `json:"by_category"`
	ByLGA             map[string]int `json:"by_lga"`
	HighSeverityCount int            `json:"high_severity_count"`
}
