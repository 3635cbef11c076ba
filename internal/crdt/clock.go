package crdt

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// VersionVector хранит для каждого сайта максимальный учтенный счетчик.
// Отсутствующая запись эквивалентна нулю.
type VersionVector map[SiteID]uint64

// Get возвращает значение для сайта (0 если записи нет)
func (vv VersionVector) Get(site SiteID) uint64 {
	return vv[site]
}

// Covers сообщает, видел ли владелец вектора операцию id.
// Сравнивается только high-water mark сайта, а не полная причинная история.
func (vv VersionVector) Covers(id OperationID) bool {
	return vv[id.Site] >= id.Counter
}

// Clone возвращает независимую копию вектора
func (vv VersionVector) Clone() VersionVector {
	if vv == nil {
		return VersionVector{}
	}
	return maps.Clone(vv)
}

// Merge поднимает каждую запись до максимума из двух векторов
func (vv VersionVector) Merge(other VersionVector) {
	for site, n := range other {
		if n > vv[site] {
			vv[site] = n
		}
	}
}

// String возвращает вектор в виде "site:counter,site:counter" с сортировкой по сайту
func (vv VersionVector) String() string {
	sites := slices.Sorted(maps.Keys(vv))
	parts := make([]string, 0, len(sites))
	for _, site := range sites {
		parts = append(parts, string(site)+":"+strconv.FormatUint(vv[site], 10))
	}
	return strings.Join(parts, ",")
}

// ParseVersionVector разбирает строку, полученную из VersionVector.String.
// Нулевые счетчики допустимы: так выглядит вектор нового документа.
func ParseVersionVector(s string) (VersionVector, error) {
	vv := VersionVector{}
	if s == "" {
		return vv, nil
	}

	for _, part := range strings.Split(s, ",") {
		site, counter, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: vector entry %q", ErrInvalidID, part)
		}
		siteID, err := ParseSiteID(site)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseUint(counter, 10, 64)
		if err != nil || n > MaxCounter {
			return nil, fmt.Errorf("%w: vector entry %q", ErrInvalidID, part)
		}
		vv[siteID] = n
	}

	return vv, nil
}

// Clock причинные часы реплики: локальный счетчик и вектор версий.
// Не потокобезопасен, владельцем является Document.
type Clock struct {
	vector  VersionVector
	site    SiteID
	counter uint64
}

// NewClock создает часы сайта с вектором {site: 0}
func NewClock(site SiteID) *Clock {
	return &Clock{
		site:   site,
		vector: VersionVector{site: 0},
	}
}

// Site возвращает идентификатор сайта
func (c *Clock) Site() SiteID {
	return c.site
}

// Counter возвращает текущее значение локального счетчика
func (c *Clock) Counter() uint64 {
	return c.counter
}

// NextLocalID увеличивает счетчик и возвращает новый идентификатор операции.
// Значения строго возрастают и никогда не переиспользуются; после MaxCounter
// возвращается ErrClockExhausted, счетчик не меняется.
func (c *Clock) NextLocalID() (OperationID, error) {
	if c.counter >= MaxCounter {
		return OperationID{}, ErrClockExhausted
	}
	c.counter++
	id := OperationID{Site: c.site, Counter: c.counter}
	c.Observe(id)
	return id, nil
}

// Exhausted сообщает, что новых локальных идентификаторов больше нет
func (c *Clock) Exhausted() bool {
	return c.counter >= MaxCounter
}

// Observe учитывает примененную операцию: vector[site] = max(vector[site], counter).
// Локальный счетчик поднимается до наблюдаемого значения (правило Лампорта),
// поэтому операция, созданная после другой, всегда получает больший идентификатор.
// Счетчики больше MaxCounter не учитываются.
func (c *Clock) Observe(id OperationID) {
	if id.Counter > MaxCounter {
		return
	}
	if id.Counter > c.vector[id.Site] {
		c.vector[id.Site] = id.Counter
	}
	if id.Counter > c.counter {
		c.counter = id.Counter
	}
}

// Covers сообщает, покрывает ли vector операцию id
func Covers(vector VersionVector, id OperationID) bool {
	return vector.Covers(id)
}

// Vector возвращает копию вектора версий
func (c *Clock) Vector() VersionVector {
	return c.vector.Clone()
}
