package crdt

import "iter"

// OperationLog журнал операций, созданных этой репликой. Только дописывается.
type OperationLog struct {
	ops []Operation
}

// Append добавляет операцию в конец журнала
func (l *OperationLog) Append(op Operation) {
	l.ops = append(l.ops, op)
}

// Len возвращает количество операций в журнале
func (l *OperationLog) Len() int {
	return len(l.ops)
}

// All возвращает копию журнала
func (l *OperationLog) All() []Operation {
	result := make([]Operation, len(l.ops))
	copy(result, l.ops)
	return result
}

// NotCovered возвращает ленивую последовательность операций, которые не покрыты vector.
// Журнал не изменяется, последовательность можно обходить повторно.
func (l *OperationLog) NotCovered(vector VersionVector) iter.Seq[Operation] {
	peer := vector.Clone()
	return func(yield func(Operation) bool) {
		for _, op := range l.ops {
			if peer.Covers(op.ID) {
				continue
			}
			if !yield(op) {
				return
			}
		}
	}
}
