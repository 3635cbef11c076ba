package notify

import (
	"context"
	"sync"

	"github.com/iudanet/gophtext/pkg/api"
)

type subscriber struct {
	ch chan api.WatchMessage
}

// Memory рассылает уведомления внутри одного процесса сервера
type Memory struct {
	subs   map[string]map[*subscriber]struct{}
	mu     sync.Mutex
	closed bool
}

var _ Notifier = (*Memory)(nil)

// NewMemory создает Notifier без внешних зависимостей
func NewMemory() *Memory {
	return &Memory{
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// Publish не блокируется: переполненный подписчик пропускает уведомление
func (m *Memory) Publish(_ context.Context, msg api.WatchMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	for sub := range m.subs[msg.DocumentID] {
		select {
		case sub.ch <- msg:
		default:
		}
	}
	return nil
}

// Subscribe регистрирует подписчика документа; cancel снимает подписку и закрывает канал
func (m *Memory) Subscribe(_ context.Context, documentID string) (<-chan api.WatchMessage, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, nil, ErrClosed
	}

	sub := &subscriber{ch: make(chan api.WatchMessage, SubscriberBuffer)}
	if m.subs[documentID] == nil {
		m.subs[documentID] = make(map[*subscriber]struct{})
	}
	m.subs[documentID][sub] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subs[documentID][sub]; !ok {
				// Уже закрыт через Close
				return
			}
			delete(m.subs[documentID], sub)
			if len(m.subs[documentID]) == 0 {
				delete(m.subs, documentID)
			}
			close(sub.ch)
		})
	}

	return sub.ch, cancel, nil
}

// Close закрывает каналы всех подписчиков
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	for documentID, subs := range m.subs {
		for sub := range subs {
			close(sub.ch)
		}
		delete(m.subs, documentID)
	}
	return nil
}

// Subscribers возвращает количество подписчиков документа
func (m *Memory) Subscribers(documentID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs[documentID])
}
