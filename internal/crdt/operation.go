package crdt

// Atom один символ документа: видимый или удаленный (tombstone).
// Left и Right фиксируются при создании и больше не меняются.
type Atom struct {
	ID      OperationID // первичный ключ, совпадает с id операции вставки
	Left    OperationID // левый сосед на момент создания (нулевой если нет)
	Right   OperationID // правый сосед на момент создания (нулевой если нет)
	Value   rune
	Deleted bool // монотонный флаг: false -> true
}

// OpKind тип операции
type OpKind uint8

const (
	// OpInsert вставка атома
	OpInsert OpKind = iota + 1
	// OpDelete пометка атома удаленным
	OpDelete
)

// String возвращает имя типа операции в формате wire payload
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation неизменяемая операция: Insert{ID, Atom} или Delete{ID, Target}.
type Operation struct {
	Atom   Atom        // только для OpInsert
	ID     OperationID // собственный идентификатор операции
	Target OperationID // только для OpDelete
	Kind   OpKind
}

// NewInsert создает операцию вставки атома
func NewInsert(atom Atom) Operation {
	atom.Deleted = false
	return Operation{Kind: OpInsert, ID: atom.ID, Atom: atom}
}

// NewDelete создает операцию удаления атома target
func NewDelete(id, target OperationID) Operation {
	return Operation{Kind: OpDelete, ID: id, Target: target}
}
