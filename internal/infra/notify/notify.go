// Package notify публикует события об изменениях бронирований и обращений в Redis,
// чтобы открытые админ-панели могли обновиться без перезагрузки
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrPublish ошибка публикации события
var ErrPublish = errors.New("notify: failed to publish event")

// Типы событий
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
	EventContactCreated       = "contact.created"
	EventContactStatusChanged = "contact.status_changed"
	EventContactDeleted       = "contact.deleted"
)

// Event событие об изменении записи
type Event struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entity_id"`
	Status   string    `json:"status,omitempty"`
	At       time.Time `json:"at"`
}

// RedisPublisher публикует события в канал Redis Pub/Sub
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher создает publisher поверх готового клиента
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish отправляет событие подписчикам канала
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}
	return nil
}

// Ping проверяет доступность Redis
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close закрывает клиент Redis
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Noop используется, когда уведомления выключены
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
