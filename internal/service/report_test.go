package service

import (
	"context"
	"testing"

	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReport_HighSeverity(t *testing.T) {
	service, publisherMock, archiveMock := newTestIncidentService(t)
	allowSideEffects(publisherMock, archiveMock)
	ctx := context.Background()

	outcome := service.SubmitReport(ctx, models.FarmerReport{
		FarmerID:    "F-001",
		LGA:         "Kano",
		State:       "Kano",
		Lat:         12.0,
		Lon:         8.5,
		Crop:        "maize",
		Category:    "pest",
		Description: "Severe armyworm attack on leaves",
	})

	require.NotNil(t, outcome)
	assert.Equal(t, "inc-000001", outcome.IncidentID)
	assert.Equal(t, uint16(80), outcome.Severity)
	assert.True(t, outcome.ResourceRequested)
	assert.Equal(t, "agrochemical", outcome.ResourceType)
	assert.Equal(t,
		"URGENT: Scout daily, apply recommended Bt pesticide per label, remove heavily infested plants (High severity incident - immediate action required)",
		outcome.Recommendation)
	assert.Contains(t, outcome.Message, "(ID: inc-000001)")
	assert.Contains(t, outcome.Message, "Severity level: 80/100.")
	assert.Contains(t, outcome.Message, "A resource request has been raised for agrochemical.")

	incident, ok := service.GetIncident(ctx, outcome.IncidentID)
	require.True(t, ok)
	assert.Equal(t, "F-001", incident.FarmerID)
	assert.Equal(t, models.Geo{Lat: 12.0, Lon: 8.5}, incident.Geo)
	assert.Equal(t, fixedNowString, incident.ReportedAt)
	assert.Equal(t, models.StatusRecommended, incident.Status)
	assert.Equal(t, []string{"fall_armyworm", "maize_crop"}, incident.Enriched.Tags)
	require.Len(t, incident.Recommendations, 1)
	assert.Equal(t, "extension_manual_stub", incident.Recommendations[0].Source)
	assert.Equal(t, "High severity pest incident", incident.ResourceRequest.Notes)
	assert.Equal(t, []string{
		EventCreated,
		EventEnriched,
		EventRecommendationAdded,
		"status_updated_to_recommended",
		EventResourceRequested,
	}, events(incident))

	assert.Len(t, service.ListHighSeverity(ctx), 1)
}

func TestSubmitReport_LowSeverity(t *testing.T) {
	service, publisherMock, archiveMock := newTestIncidentService(t)
	allowSideEffects(publisherMock, archiveMock)
	ctx := context.Background()

	outcome := service.SubmitReport(ctx, models.FarmerReport{
		FarmerID:    "F-002",
		LGA:         "Ikeja",
		State:       "Lagos",
		Crop:        "tomato",
		Category:    "input_need",
		Description: "Need fertilizer for next season",
	})

	assert.Equal(t, uint16(40), outcome.Severity)
	assert.False(t, outcome.ResourceRequested)
	assert.Empty(t, outcome.ResourceType)
	assert.NotContains(t, outcome.Message, "resource request")

	incident, _ := service.GetIncident(ctx, outcome.IncidentID)
	assert.False(t, incident.ResourceRequest.Requested)
	assert.Nil(t, incident.ResourceRequest.CreatedAt)
	assert.Equal(t, []string{
		EventCreated,
		EventEnriched,
		EventRecommendationAdded,
		"status_updated_to_recommended",
	}, events(incident))
	assert.Empty(t, service.ListHighSeverity(ctx))
}

func TestSubmitReport_UnknownCombinationFallsBack(t *testing.T) {
	service, publisherMock, archiveMock := newTestIncidentService(t)
	allowSideEffects(publisherMock, archiveMock)

	outcome := service.SubmitReport(context.Background(), models.FarmerReport{
		LGA:      "Zaria",
		Crop:     "sorghum",
		Category: "other",
	})

	assert.Equal(t, "Contact extension officer for other management in sorghum", outcome.Recommendation)
	assert.Equal(t, uint16(30), outcome.Severity)
}
