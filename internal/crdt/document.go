package crdt

import (
	"iter"
	"slices"
)

// Document реплика текстового документа: хранилище атомов, причинные часы
// и журнал локальных операций.
//
// Document не потокобезопасен: все вызовы должны быть сериализованы владельцем.
type Document struct {
	store *AtomStore
	clock *Clock
	log   OperationLog
}

// MergeResult статистика применения пакета операций
type MergeResult struct {
	Inserted   int // новые атомы
	Deleted    int // атомы, впервые помеченные удаленными
	Duplicates int // операции, уже примененные ранее
	Ignored    int // удаления неизвестных атомов и операции неизвестного типа
}

// New создает пустой документ. Если site не передан, генерируется случайный.
func New(site ...SiteID) *Document {
	id := NewSiteID()
	if len(site) > 0 && site[0] != "" {
		id = site[0]
	}

	return &Document{
		store: NewAtomStore(),
		clock: NewClock(id),
	}
}

// Restore восстанавливает документ из сохраненного журнала локальных операций
// и применявшихся ранее удаленных операций.
func Restore(site SiteID, local, remote []Operation) *Document {
	d := New(site)

	all := make([]Operation, 0, len(local)+len(remote))
	all = append(all, remote...)
	all = append(all, local...)
	d.Merge(all)

	for _, op := range local {
		d.log.Append(op)
	}

	return d
}

// Site возвращает идентификатор реплики
func (d *Document) Site() SiteID {
	return d.clock.Site()
}

// Insert вставляет text перед видимым символом с индексом index.
// Индекс больше длины текста означает вставку в конец, отрицательный - в начало.
// Некорректные байты UTF-8 вставляются как U+FFFD.
// Возвращает созданные операции; у исчерпанной реплики (Exhausted) вставка
// обрывается на последнем символе, получившем идентификатор.
func (d *Document) Insert(index int, text string) []Operation {
	var left OperationID
	if index > 0 {
		if id, ok := d.store.ResolveVisibleIndex(index - 1); ok {
			left = id
		} else if last, ok := d.store.Last(); ok {
			left = last
		}
	}

	var right OperationID
	if left.IsZero() {
		right, _ = d.store.Head()
	} else {
		right, _ = d.store.Next(left)
	}

	ops := make([]Operation, 0, len(text))
	for _, r := range text {
		id, err := d.clock.NextLocalID()
		if err != nil {
			break
		}
		atom := Atom{
			ID:    id,
			Value: r,
			Left:  left,
			Right: right,
		}
		d.store.Insert(atom, InsertLocal)

		op := NewInsert(atom)
		d.log.Append(op)
		ops = append(ops, op)

		// Следующий символ идет сразу за только что вставленным
		left = atom.ID
	}

	return ops
}

// Delete удаляет символы, начиная с видимого индекса index.
// length ограничивает количество шагов по цепочке, а не количество удаленных символов:
// уже удаленные атомы на пути тоже считаются шагом.
// Возвращает созданные операции.
func (d *Document) Delete(index, length int) []Operation {
	current, ok := d.store.ResolveVisibleIndex(index)
	if !ok {
		return nil
	}

	var ops []Operation
	for hop := 0; hop < length; hop++ {
		if atom, _ := d.store.Get(current); !atom.Deleted {
			id, err := d.clock.NextLocalID()
			if err != nil {
				break
			}
			d.store.MarkDeleted(current)
			op := NewDelete(id, current)
			d.log.Append(op)
			ops = append(ops, op)
		}

		next, ok := d.store.Next(current)
		if !ok {
			break
		}
		current = next
	}

	return ops
}

// Diff возвращает локальные операции, которых еще не видел владелец peer,
// в порядке журнала. Последовательность ленивая и перезапускаемая.
func (d *Document) Diff(peer VersionVector) iter.Seq[Operation] {
	return d.log.NotCovered(peer)
}

// DiffSlice то же, что Diff, но собирает результат в срез
func (d *Document) DiffSlice(peer VersionVector) []Operation {
	return slices.Collect(d.Diff(peer))
}

// Merge применяет пакет удаленных операций в произвольном порядке.
// Сначала применяются все вставки, затем все удаления (порядок внутри типа сохраняется).
// Повторное применение операции - no-op; удаление неизвестного атома игнорируется,
// как и операции со счетчиком больше MaxCounter.
//
// Вставка, левый сосед которой приходит позже в том же пакете, ждет его появления.
// Если сосед так и не появился, атом встраивается как вставка в начало.
func (d *Document) Merge(ops []Operation) MergeResult {
	var result MergeResult

	var inserts, deletes []Operation
	for _, op := range ops {
		switch {
		case !counterInRange(op):
			result.Ignored++
		case op.Kind == OpInsert:
			inserts = append(inserts, op)
		case op.Kind == OpDelete:
			deletes = append(deletes, op)
		default:
			result.Ignored++
		}
	}

	// waiting: отсутствующий левый сосед -> вставки, которые его ждут
	waiting := make(map[OperationID][]Operation)
	inBatch := make(map[OperationID]struct{}, len(inserts))
	var missing []OperationID
	var queue []Operation
	for _, op := range inserts {
		inBatch[op.Atom.ID] = struct{}{}
		if !d.missingOrigin(op) {
			queue = append(queue, op)
			continue
		}
		left := op.Atom.Left
		if _, ok := waiting[left]; !ok {
			missing = append(missing, left)
		}
		waiting[left] = append(waiting[left], op)
	}
	d.applyInserts(queue, waiting, &result)

	// Соседа нет в пакете: ждущие его вставки встраиваются в начало.
	// Второй проход разбирает то, что осталось из-за циклических ссылок.
	for _, skipInBatch := range []bool{true, false} {
		for _, left := range missing {
			group, ok := waiting[left]
			if !ok {
				continue
			}
			if _, pending := inBatch[left]; pending && skipInBatch {
				continue
			}
			delete(waiting, left)
			d.applyInserts(group, waiting, &result)
		}
	}

	for _, op := range deletes {
		d.clock.Observe(op.ID)
		switch {
		case !d.store.Contains(op.Target):
			result.Ignored++
		case d.store.MarkDeleted(op.Target):
			result.Deleted++
		default:
			result.Duplicates++
		}
	}

	return result
}

// applyInserts применяет очередь вставок; каждая примененная вставка освобождает
// ожидающие ее в waiting, так что каждая операция обрабатывается один раз.
func (d *Document) applyInserts(queue []Operation, waiting map[OperationID][]Operation, result *MergeResult) {
	for len(queue) > 0 {
		op := queue[0]
		queue = queue[1:]

		d.applyInsert(op, result)
		if next, ok := waiting[op.Atom.ID]; ok {
			delete(waiting, op.Atom.ID)
			queue = append(queue, next...)
		}
	}
}

func counterInRange(op Operation) bool {
	if op.ID.Counter > MaxCounter {
		return false
	}
	if op.Kind == OpInsert {
		return op.Atom.Left.Counter <= MaxCounter && op.Atom.Right.Counter <= MaxCounter
	}
	return op.Target.Counter <= MaxCounter
}

// missingOrigin сообщает, что левый сосед новой вставки еще неизвестен
func (d *Document) missingOrigin(op Operation) bool {
	left := op.Atom.Left
	return !left.IsZero() && !d.store.Contains(left) && !d.store.Contains(op.Atom.ID)
}

func (d *Document) applyInsert(op Operation, result *MergeResult) {
	d.clock.Observe(op.ID)
	if d.store.Insert(op.Atom, InsertRemote) {
		result.Inserted++
	} else {
		result.Duplicates++
	}
}

// String возвращает видимый текст документа
func (d *Document) String() string {
	return d.store.String()
}

// Len возвращает количество видимых символов
func (d *Document) Len() int {
	return d.store.Len()
}

// Exhausted сообщает, что локальный счетчик достиг MaxCounter и реплика
// больше не может создавать операции. Merge по-прежнему работает.
func (d *Document) Exhausted() bool {
	return d.clock.Exhausted()
}

// Vector возвращает копию вектора версий
func (d *Document) Vector() VersionVector {
	return d.clock.Vector()
}

// Log возвращает копию журнала локальных операций
func (d *Document) Log() []Operation {
	return d.log.All()
}

// Atoms возвращает все атомы в порядке цепочки, включая удаленные
func (d *Document) Atoms() []Atom {
	return d.store.Atoms()
}
