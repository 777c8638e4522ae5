package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "agri_incident_events"
)

// IncidentEvent - событие жизненного цикла инцидента, повторяющее запись аудита
type IncidentEvent struct {
	ID         uuid.UUID `json:"id"`
	IncidentID string    `json:"incident_id"`
	Event      string    `json:"event"`
	At         string    `json:"at"`
}

// NewIncidentEvent создает событие с новым идентификатором доставки
func NewIncidentEvent(incidentID, event, at string) IncidentEvent {
	return IncidentEvent{
		ID:         uuid.New(),
		IncidentID: incidentID,
		Event:      event,
		At:         at,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
