package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherHint(t *testing.T) {
	cases := []struct {
		name        string
		lat         float64
		description string
		want        string
	}{
		{"rain in belt", 9.0, "Heavy RAIN flooded the field", WeatherRainy},
		{"rain outside belt", 20.0, "heavy rain", WeatherUnknown},
		{"mold", 9.0, "white mold on leaves", WeatherHumid},
		{"drought", 12.0, "prolonged drought", WeatherDry},
		{"hot", 12.0, "very hot week", WeatherSunny},
		{"nothing", 12.0, "leaves turning yellow", WeatherUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeatherHint(tc.lat, 7.0, tc.description))
		})
	}
}

func TestSeverityScore(t *testing.T) {
	cases := []struct {
		name        string
		category    string
		crop        string
		hint        string
		description string
		want        uint16
	}{
		{"pest on maize", CategoryPest, CropMaize, WeatherUnknown, "worms on leaves", 60},
		{"pest on tomato", CategoryPest, CropTomato, WeatherUnknown, "worms on leaves", 50},
		{"flood with rain", CategoryFlood, CropRice, WeatherRainy, "field under water", 90},
		{"humid disease rapid", CategoryDisease, CropCassava, WeatherHumid, "rapid leaf curl", 85},
		{"unknown category", "locusts", CropSorghum, WeatherUnknown, "swarm", 30},
		{"capped", CategoryFlood, CropMaize, WeatherRainy, "severe rapid flooding of seedling beds", 100},
		{"input need", CategoryInputNeed, CropOther, WeatherUnknown, "need seed", 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SeverityScore(tc.category, tc.crop, tc.hint, tc.description))
		})
	}
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"fall_armyworm", "maize_crop"}, Tags(CategoryPest, CropMaize))
	assert.Equal(t, []string{"pest_alert", "rice_crop"}, Tags(CategoryPest, CropRice))
	assert.Equal(t, []string{"cassava_mosaic", "cassava_crop"}, Tags(CategoryDisease, CropCassava))
	assert.Equal(t, []string{"disease_alert", "tomato_crop"}, Tags(CategoryDisease, CropTomato))
	assert.Equal(t, []string{"flood_risk", "rice_crop"}, Tags(CategoryFlood, CropRice))
	assert.Equal(t, []string{"drought_alert", "maize_crop"}, Tags(CategoryDrought, CropMaize))
	assert.Equal(t, []string{"input_request", "sorghum_crop"}, Tags(CategoryInputNeed, CropSorghum))
	assert.Equal(t, []string{"other_crop"}, Tags(CategoryOther, CropOther))
}

func TestEnrich(t *testing.T) {
	got := Enrich(CategoryFlood, CropRice, 9.0, 7.0, "rain flooded everything")

	assert.Equal(t, WeatherRainy, got.WeatherHint)
	assert.Equal(t, uint16(90), got.SeverityScore)
	assert.Equal(t, []string{"flood_risk", "rice_crop"}, got.Tags)
}

func TestRecommend(t *testing.T) {
	now := "2025-01-01T00:00:00.000Z"

	normal := Recommend(CategoryPest, CropMaize, 60, now)
	assert.Equal(t, "Scout daily, apply recommended Bt pesticide per label, remove heavily infested plants", normal.Step)
	assert.Equal(t, RecommendationSource, normal.Source)
	assert.Equal(t, now, normal.CreatedAt)

	urgent := Recommend(CategoryPest, CropMaize, 70, now)
	assert.Equal(t, "URGENT: Scout daily, apply recommended Bt pesticide per label, remove heavily infested plants (High severity incident - immediate action required)", urgent.Step)

	fallback := Recommend(CategoryOther, CropSorghum, 90, now)
	assert.Equal(t, "Contact extension officer for other management in sorghum", fallback.Step)
}

func TestResourcePolicy(t *testing.T) {
	assert.True(t, ShouldRequestResources(70))
	assert.False(t, ShouldRequestResources(69))

	assert.Equal(t, ResourceAgrochemical, ResourceType(CategoryPest))
	assert.Equal(t, ResourceAgrochemical, ResourceType(CategoryDisease))
	assert.Equal(t, ResourceIrrigation, ResourceType(CategoryFlood))
	assert.Equal(t, ResourceIrrigation, ResourceType(CategoryDrought))
	assert.Equal(t, ResourceSeed, ResourceType(CategoryInputNeed))
	assert.Equal(t, ResourceTraining, ResourceType(CategoryOther))
}
