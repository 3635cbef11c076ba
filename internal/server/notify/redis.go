package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/gophtext/pkg/api"
)

// ChannelPrefix префикс Redis каналов документов
const ChannelPrefix = "gophtext:document:"

// Redis рассылает уведомления через Redis Pub/Sub, так что наблюдатель,
// подключенный к одному экземпляру сервера, видит операции, принятые другим.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Notifier = (*Redis)(nil)

// NewRedis подключается к Redis и проверяет соединение
func NewRedis(ctx context.Context, addr string, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	return &Redis{client: client, logger: logger}, nil
}

func channelName(documentID string) string {
	return ChannelPrefix + documentID
}

func (r *Redis) Publish(ctx context.Context, msg api.WatchMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	if err := r.client.Publish(ctx, channelName(msg.DocumentID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

func (r *Redis) Subscribe(ctx context.Context, documentID string) (<-chan api.WatchMessage, func(), error) {
	pubsub := r.client.Subscribe(ctx, channelName(documentID))

	// Ждем подтверждения подписки, иначе первые публикации могут потеряться
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan api.WatchMessage, SubscriberBuffer)
	go func() {
		defer close(out)
		for m := range pubsub.Channel() {
			msg, err := decodeMessage(m.Payload)
			if err != nil {
				r.logger.Warn("dropping malformed notification",
					"channel", m.Channel,
					"error", err)
				continue
			}
			select {
			case out <- msg:
			default:
			}
		}
	}()

	cancel := func() {
		// Закрытие pubsub закрывает pubsub.Channel(), горутина завершится и закроет out
		_ = pubsub.Close()
	}
	return out, cancel, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func decodeMessage(payload string) (api.WatchMessage, error) {
	var msg api.WatchMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return api.WatchMessage{}, fmt.Errorf("failed to decode notification: %w", err)
	}
	if msg.DocumentID == "" {
		return api.WatchMessage{}, fmt.Errorf("notification without document id")
	}
	return msg, nil
}
