package api

// Виды операций в wire payload
const (
	KindInsert = "insert"
	KindDelete = "delete"
)

// VersionVector вектор версий: site -> максимальный учтенный счетчик
type VersionVector map[string]uint64

// Atom представляет символ документа в wire payload
type Atom struct {
	Left    *string `json:"left"`    // левый сосед на момент создания ("site:counter" или null)
	Right   *string `json:"right"`   // правый сосед на момент создания ("site:counter" или null)
	ID      string  `json:"id"`      // "site:counter"
	Value   string  `json:"value"`   // ровно один символ
	Deleted bool    `json:"deleted"` // для только что созданной вставки всегда false
}

// Operation представляет одну операцию CRDT для синхронизации
type Operation struct {
	Atom   *Atom  `json:"atom,omitempty"`   // только для insert
	Kind   string `json:"kind"`             // "insert" или "delete"
	ID     string `json:"id"`               // собственный id операции "site:counter"
	Target string `json:"target,omitempty"` // только для delete: id удаляемого атома
}

// SyncRequest представляет запрос на синхронизацию от клиента.
// Operations - локальные операции клиента, которых сервер еще не видел,
// Vector - текущий вектор клиента, по нему сервер выбирает недостающие операции.
type SyncRequest struct {
	Vector     VersionVector `json:"vector"`
	Operations []Operation   `json:"operations"`
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	Vector     VersionVector `json:"vector"`     // вектор сервера после приема операций клиента
	Operations []Operation   `json:"operations"` // операции, которых клиент еще не видел
	Accepted   int           `json:"accepted"`   // количество новых операций, принятых от клиента
}

// DocumentResponse представляет текущее состояние документа на сервере
type DocumentResponse struct {
	Vector     VersionVector `json:"vector"`
	ID         string        `json:"id"`
	Text       string        `json:"text"`
	Operations int           `json:"operations"` // общее количество операций
}

// DocumentListResponse представляет список документов на сервере
type DocumentListResponse struct {
	Documents []string `json:"documents"`
}

// WatchMessage уведомляет наблюдателя документа по WebSocket о принятых сервером операциях.
// Сами операции наблюдатель забирает обычной синхронизацией по вектору версий.
type WatchMessage struct {
	Vector     VersionVector `json:"vector"`      // вектор сервера после приема операций
	DocumentID string        `json:"document_id"`
	Site       string        `json:"site"`        // сайт, отправивший операции
	Operations int           `json:"operations"`  // количество впервые принятых операций
}
