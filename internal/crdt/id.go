package crdt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SiteIDLen длина идентификатора сайта в hex-символах (32 бита)
const SiteIDLen = 8

// MaxCounter наибольший допустимый счетчик операции. Совпадает с диапазоном
// INTEGER в SQLite, где сервер хранит счетчики.
const MaxCounter = math.MaxInt64

var (
	// ErrInvalidID возвращается при разборе некорректного идентификатора
	ErrInvalidID = errors.New("invalid id")

	// ErrClockExhausted возвращается, когда локальный счетчик достиг MaxCounter
	// и реплика больше не может создавать операции
	ErrClockExhausted = errors.New("operation counter exhausted")
)

// SiteID идентификатор реплики. Неизменяем в течение жизни реплики.
type SiteID string

// NewSiteID генерирует случайный идентификатор сайта: первые 32 бита UUID в hex.
func NewSiteID() SiteID {
	u := uuid.New()
	return SiteID(hex.EncodeToString(u[:SiteIDLen/2]))
}

// ParseSiteID проверяет формат идентификатора сайта.
func ParseSiteID(s string) (SiteID, error) {
	if len(s) != SiteIDLen {
		return "", fmt.Errorf("%w: site %q must be %d hex chars", ErrInvalidID, s, SiteIDLen)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: site %q is not hex", ErrInvalidID, s)
	}
	return SiteID(strings.ToLower(s)), nil
}

// OperationID логическая метка операции и первичный ключ атома.
// Нулевое значение означает "нет".
type OperationID struct {
	Site    SiteID
	Counter uint64
}

// IsZero сообщает, что идентификатор пустой
func (id OperationID) IsZero() bool {
	return id.Site == "" && id.Counter == 0
}

// String возвращает представление "site:counter"
func (id OperationID) String() string {
	if id.IsZero() {
		return ""
	}
	return string(id.Site) + ":" + strconv.FormatUint(id.Counter, 10)
}

// Less задает полный порядок на идентификаторах: сначала Counter, затем Site.
// Используется для детерминированного упорядочивания конкурентных вставок.
func (id OperationID) Less(other OperationID) bool {
	if id.Counter != other.Counter {
		return id.Counter < other.Counter
	}
	return id.Site < other.Site
}

// ParseOperationID разбирает строку вида "site:counter". Счетчик в диапазоне [1, MaxCounter].
func ParseOperationID(s string) (OperationID, error) {
	site, counter, ok := strings.Cut(s, ":")
	if !ok {
		return OperationID{}, fmt.Errorf("%w: %q has no counter", ErrInvalidID, s)
	}

	siteID, err := ParseSiteID(site)
	if err != nil {
		return OperationID{}, err
	}

	n, err := strconv.ParseUint(counter, 10, 64)
	if err != nil || n == 0 || n > MaxCounter {
		return OperationID{}, fmt.Errorf("%w: %q has bad counter", ErrInvalidID, s)
	}

	return OperationID{Site: siteID, Counter: n}, nil
}
