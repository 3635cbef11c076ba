// Package notify рассылает наблюдателям документов уведомления о принятых сервером операциях.
package notify

import (
	"context"
	"errors"

	"github.com/iudanet/gophtext/pkg/api"
)

//go:generate moq -out notify_mock.go . Notifier

// ErrClosed возвращается после закрытия Notifier
var ErrClosed = errors.New("notifier is closed")

// SubscriberBuffer размер буфера канала подписчика.
// Если подписчик не успевает читать, уведомления отбрасываются: каждое уведомление
// несет полный вектор сервера, поэтому следующее покрывает пропущенные.
const SubscriberBuffer = 16

// Notifier publishes document notifications to watchers of that document
type Notifier interface {
	// Publish sends msg to every subscriber of msg.DocumentID
	Publish(ctx context.Context, msg api.WatchMessage) error

	// Subscribe returns a channel of notifications for documentID and a function
	// that cancels the subscription and closes the channel
	Subscribe(ctx context.Context, documentID string) (<-chan api.WatchMessage, func(), error)

	// Close cancels all subscriptions
	Close() error
}
