// Package seed загружает демонстрационные отчёты фермеров при старте сервиса.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/agri_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportSubmitter - часть сервиса инцидентов, нужная загрузчику
type ReportSubmitter interface {
	SubmitReport(ctx context.Context, report models.FarmerReport) *models.ReportOutcome
}

type geoRecord struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// Record - одна запись seed-файла
type Record struct {
	FarmerID    string    `json:"farmer_id" validate:"required"`
	LGA         string    `json:"lga" validate:"required"`
	State       string    `json:"state"`
	Geo         geoRecord `json:"geo"`
	Crop        string    `json:"crop" validate:"required,oneof=maize rice cassava tomato sorghum other"`
	Category    string    `json:"category" validate:"required,oneof=pest disease flood drought input_need other"`
	Description string    `json:"description"`
}

func (r Record) toReport() models.FarmerReport {
	return models.FarmerReport{
		FarmerID:    r.FarmerID,
		LGA:         r.LGA,
		State:       r.State,
		Lat:         r.Geo.Lat,
		Lon:         r.Geo.Lon,
		Crop:        r.Crop,
		Category:    r.Category,
		Description: r.Description,
	}
}

type Loader struct {
	submitter ReportSubmitter
	logger    *logrus.Logger
	validate  *validator.Validate
}

func NewLoader(submitter ReportSubmitter, logger *logrus.Logger) *Loader {
	return &Loader{
		submitter: submitter,
		logger:    logger,
		validate:  validator.New(),
	}
}

// LoadFile читает JSON-массив отчётов и проводит каждый через обработку отчёта.
// Некорректные записи пропускаются. Возвращает число загруженных отчётов.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return l.Load(ctx, records), nil
}

func (l *Loader) Load(ctx context.Context, records []Record) int {
	log := l.logger.WithField("component", "seed")

	loaded := 0
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("Seed loading interrupted")
			break
		}
		if err := l.validate.Struct(record); err != nil {
			log.WithError(err).WithField("index", i).Warn("Skipping invalid seed record")
			continue
		}

		outcome := l.submitter.SubmitReport(ctx, record.toReport())
		log.WithFields(logrus.Fields{
			"incident_id": outcome.IncidentID,
			"severity":    outcome.Severity,
		}).Debug("Seed report processed")
		loaded++
	}

	log.WithFields(logrus.Fields{"loaded": loaded, "total": len(records)}).Info("Seed data loaded")
	return loaded
}
