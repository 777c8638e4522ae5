// Package enrichment содержит детерминированные правила обогащения отчётов фермеров:
// погодную подсказку, оценку серьёзности, теги, рекомендации и политику запроса ресурсов.
package enrichment

import (
	"fmt"
	"strings"

	"github.com/shenikar/agri_incident_tracker/internal/models"
)

const (
	CropMaize   = "maize"
	CropRice    = "rice"
	CropCassava = "cassava"
	CropTomato  = "tomato"
	CropSorghum = "sorghum"
	CropOther   = "other"
)

const (
	CategoryPest      = "pest"
	CategoryDisease   = "disease"
	CategoryFlood     = "flood"
	CategoryDrought   = "drought"
	CategoryInputNeed = "input_need"
	CategoryOther     = "other"
)

const (
	WeatherSunny   = "sunny"
	WeatherRainy   = "rainy"
	WeatherHumid   = "humid"
	WeatherDry     = "dry"
	WeatherUnknown = "unknown"
)

const (
	ResourceAgrochemical = "agrochemical"
	ResourceSeed         = "seed"
	ResourceTraining     = "training"
	ResourceIrrigation   = "irrigation"
)

// RecommendationSource - источник рекомендаций, пока это справочник-заглушка
const RecommendationSource = "extension_manual_stub"

// ResourceRequestThreshold совпадает с порогом высокой серьёзности хранилища
const ResourceRequestThreshold = 70

const maxSeverity = 100

var baseSeverity = map[string]int{
	CategoryPest:      50,
	CategoryDisease:   50,
	CategoryFlood:     70,
	CategoryDrought:   60,
	CategoryInputNeed: 40,
}

var priorityCrops = map[string]bool{
	CropMaize:   true,
	CropRice:    true,
	CropCassava: true,
}

// WeatherHint - заглушка погодного сервиса, работает по координатам и тексту описания
func WeatherHint(lat, lon float64, description string) string {
	d := strings.ToLower(description)
	switch {
	case lat >= 6 && lat <= 14 && strings.Contains(d, "rain"):
		return WeatherRainy
	case containsAny(d, "humid", "mold"):
		return WeatherHumid
	case containsAny(d, "dry", "drought"):
		return WeatherDry
	case containsAny(d, "sunny", "hot"):
		return WeatherSunny
	default:
		return WeatherUnknown
	}
}

// SeverityScore вычисляет оценку серьёзности от 0 до 100
func SeverityScore(category, crop, weatherHint, description string) uint16 {
	score, ok := baseSeverity[category]
	if !ok {
		score = 30
	}
	if priorityCrops[crop] {
		score += 10
	}

	switch {
	case weatherHint == WeatherHumid && category == CategoryDisease,
		weatherHint == WeatherRainy && category == CategoryFlood,
		weatherHint == WeatherDry && category == CategoryDrought:
		score += 10
	}

	d := strings.ToLower(description)
	if containsAny(d, "fast spread", "rapid") {
		score += 15
	}
	if containsAny(d, "severe", "critical") {
		score += 20
	}
	if containsAny(d, "young", "seedling") {
		score += 5
	}

	if score > maxSeverity {
		score = maxSeverity
	}
	return uint16(score)
}

// Tags возвращает тег категории (если есть) и тег культуры
func Tags(category, crop string) []string {
	tags := make([]string, 0, 2)
	switch category {
	case CategoryPest:
		if crop == CropMaize {
			tags = append(tags, "fall_armyworm")
		} else {
			tags = append(tags, "pest_alert")
		}
	case CategoryDisease:
		if crop == CropCassava {
			tags = append(tags, "cassava_mosaic")
		} else {
			tags = append(tags, "disease_alert")
		}
	case CategoryFlood:
		tags = append(tags, "flood_risk")
	case CategoryDrought:
		tags = append(tags, "drought_alert")
	case CategoryInputNeed:
		tags = append(tags, "input_request")
	}
	return append(tags, crop+"_crop")
}

func Enrich(category, crop string, lat, lon float64, description string) models.Enriched {
	hint := WeatherHint(lat, lon, description)
	return models.Enriched{
		WeatherHint:   hint,
		SeverityScore: SeverityScore(category, crop, hint, description),
		Tags:          Tags(category, crop),
	}
}

// Recommend подбирает рекомендацию по паре категория/культура с учётом серьёзности
func Recommend(category, crop string, severity uint16, now string) models.Recommendation {
	step, ok := steps[stepKey{category: category, crop: crop}]
	switch {
	case !ok:
		step = fmt.Sprintf("Contact extension officer for %s management in %s", category, crop)
	case severity >= ResourceRequestThreshold:
		step = "URGENT: " + step + " (High severity incident - immediate action required)"
	}
	return models.Recommendation{
		Step:      step,
		Source:    RecommendationSource,
		CreatedAt: now,
	}
}

func ShouldRequestResources(severity uint16) bool {
	return severity >= ResourceRequestThreshold
}

// ResourceType определяет тип запрашиваемых ресурсов по категории
func ResourceType(category string) string {
	switch category {
	case CategoryPest, CategoryDisease:
		return ResourceAgrochemical
	case CategoryFlood, CategoryDrought:
		return ResourceIrrigation
	case CategoryInputNeed:
		return ResourceSeed
	default:
		return ResourceTraining
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
