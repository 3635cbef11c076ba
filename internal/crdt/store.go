package crdt

import "strings"

// InsertMode режим вставки атома в хранилище
type InsertMode uint8

const (
	// InsertLocal атом только что создан этой репликой
	InsertLocal InsertMode = iota
	// InsertRemote атом получен от другой реплики
	InsertRemote
)

// node узел двусвязной цепочки. Ссылки prev/next - внутреннее состояние хранилища,
// они не сериализуются и не совпадают с Atom.Left/Atom.Right.
type node struct {
	prev *node
	next *node
	atom Atom
}

// AtomStore хранит все атомы документа (включая удаленные) и порядок их следования.
// Атомы никогда не удаляются: меняются только ссылки цепочки и флаг Deleted.
type AtomStore struct {
	atoms   map[OperationID]*node
	head    *node
	tail    *node
	visible int
}

// NewAtomStore создает пустое хранилище
func NewAtomStore() *AtomStore {
	return &AtomStore{
		atoms: make(map[OperationID]*node),
	}
}

// Insert регистрирует атом и встраивает его в цепочку.
// Повторная вставка уже известного id ничего не меняет и возвращает false.
//
// Позиция определяется по правилу RGA: сразу после левого соседа (или в начале
// документа, если сосед отсутствует или еще неизвестен), пропуская атомы с большим
// OperationID. Конкурентные вставки после одного соседа упорядочиваются по
// убыванию OperationID.
func (s *AtomStore) Insert(atom Atom, mode InsertMode) bool {
	if _, exists := s.atoms[atom.ID]; exists {
		return false
	}

	n := &node{atom: atom}

	var left *node
	if !atom.Left.IsZero() {
		left = s.atoms[atom.Left]
	}

	next := s.head
	if left != nil {
		next = left.next
	}

	// Локальный атом всегда имеет наибольший id, пропускать нечего
	if mode == InsertRemote {
		for next != nil && atom.ID.Less(next.atom.ID) {
			left = next
			next = next.next
		}
	}

	s.link(left, n, next)
	s.atoms[atom.ID] = n
	if !atom.Deleted {
		s.visible++
	}

	return true
}

// link вставляет n между left и next, восстанавливая симметрию ссылок
func (s *AtomStore) link(left, n, next *node) {
	n.prev = left
	n.next = next

	if left != nil {
		left.next = n
	} else {
		s.head = n
	}

	if next != nil {
		next.prev = n
	} else {
		s.tail = n
	}
}

// MarkDeleted помечает атом удаленным. Неизвестный или уже удаленный атом - no-op.
// Возвращает true, если состояние изменилось.
func (s *AtomStore) MarkDeleted(target OperationID) bool {
	n, exists := s.atoms[target]
	if !exists || n.atom.Deleted {
		return false
	}

	n.atom.Deleted = true
	s.visible--
	return true
}

// ResolveVisibleIndex переводит индекс видимого символа в id атома.
// Работает за линейное время от общего числа атомов.
func (s *AtomStore) ResolveVisibleIndex(position int) (OperationID, bool) {
	if position < 0 || position >= s.visible {
		return OperationID{}, false
	}

	count := 0
	for n := s.head; n != nil; n = n.next {
		if n.atom.Deleted {
			continue
		}
		if count == position {
			return n.atom.ID, true
		}
		count++
	}

	return OperationID{}, false
}

// Get возвращает копию атома по id
func (s *AtomStore) Get(id OperationID) (Atom, bool) {
	n, exists := s.atoms[id]
	if !exists {
		return Atom{}, false
	}
	return n.atom, true
}

// Contains сообщает, известен ли атом
func (s *AtomStore) Contains(id OperationID) bool {
	_, exists := s.atoms[id]
	return exists
}

// Head возвращает первый атом цепочки
func (s *AtomStore) Head() (OperationID, bool) {
	if s.head == nil {
		return OperationID{}, false
	}
	return s.head.atom.ID, true
}

// Last возвращает последний атом цепочки (в том числе удаленный)
func (s *AtomStore) Last() (OperationID, bool) {
	if s.tail == nil {
		return OperationID{}, false
	}
	return s.tail.atom.ID, true
}

// Next возвращает правого соседа атома в цепочке
func (s *AtomStore) Next(id OperationID) (OperationID, bool) {
	n, exists := s.atoms[id]
	if !exists || n.next == nil {
		return OperationID{}, false
	}
	return n.next.atom.ID, true
}

// Prev возвращает левого соседа атома в цепочке
func (s *AtomStore) Prev(id OperationID) (OperationID, bool) {
	n, exists := s.atoms[id]
	if !exists || n.prev == nil {
		return OperationID{}, false
	}
	return n.prev.atom.ID, true
}

// Len возвращает количество видимых символов
func (s *AtomStore) Len() int {
	return s.visible
}

// Size возвращает общее количество атомов, включая tombstones
func (s *AtomStore) Size() int {
	return len(s.atoms)
}

// String возвращает видимый текст
func (s *AtomStore) String() string {
	var b strings.Builder
	for n := s.head; n != nil; n = n.next {
		if !n.atom.Deleted {
			b.WriteRune(n.atom.Value)
		}
	}
	return b.String()
}

// Atoms возвращает копии всех атомов в порядке цепочки
func (s *AtomStore) Atoms() []Atom {
	result := make([]Atom, 0, len(s.atoms))
	for n := s.head; n != nil; n = n.next {
		result = append(result, n.atom)
	}
	return result
}
