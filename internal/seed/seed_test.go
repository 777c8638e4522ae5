package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/shenikar/agri_incident_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const seedJSON = `[
  {
    "farmer_id": "F-001",
    "lga": "Kano Municipal",
    "state": "Kano",
    "geo": {"lat": 12.0, "lon": 8.52},
    "crop": "maize",
    "category": "pest",
    "description": "Armyworms on young maize"
  },
  {
    "farmer_id": "F-002",
    "lga": "Ikeja",
    "state": "Lagos",
    "geo": {"lat": 6.6, "lon": 3.35},
    "crop": "wheat",
    "category": "pest",
    "description": "Unsupported crop"
  },
  {
    "farmer_id": "F-003",
    "lga": "Zaria",
    "state": "Kaduna",
    "geo": {"lat": 11.1, "lon": 7.7},
    "crop": "rice",
    "category": "flood",
    "description": "Heavy rain flooded the field"
  }
]`

func newTestLoader(t *testing.T) (*Loader, *mocks.MockIncidentService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewLoader(mockService, logger), mockService
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_SkipsInvalidRecords(t *testing.T) {
	loader, mockService := newTestLoader(t)

	gomock.InOrder(
		mockService.EXPECT().
			SubmitReport(gomock.Any(), models.FarmerReport{
				FarmerID:    "F-001",
				LGA:         "Kano Municipal",
				State:       "Kano",
				Lat:         12.0,
				Lon:         8.52,
				Crop:        "maize",
				Category:    "pest",
				Description: "Armyworms on young maize",
			}).
			Return(&models.ReportOutcome{IncidentID: "inc-000001", Severity: 65}),
		mockService.EXPECT().
			SubmitReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report models.FarmerReport) *models.ReportOutcome {
				assert.Equal(t, "F-003", report.FarmerID)
				return &models.ReportOutcome{IncidentID: "inc-000002", Severity: 100}
			}),
	)

	loaded, err := loader.LoadFile(context.Background(), writeSeed(t, seedJSON))

	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
}

func TestLoadFile_MissingFile(t *testing.T) {
	loader, mockService := newTestLoader(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	_, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	loader, mockService := newTestLoader(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	_, err := loader.LoadFile(context.Background(), writeSeed(t, `{"farmer_id": "F-1"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed file")
}

func TestLoad_StopsOnCancelledContext(t *testing.T) {
	loader, mockService := newTestLoader(t)
	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loaded := loader.Load(ctx, []Record{{FarmerID: "F-1", LGA: "Kano", Crop: "maize", Category: "pest"}})

	assert.Equal(t, 0, loaded)
}
