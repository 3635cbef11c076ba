// Package codec преобразует операции и векторы версий CRDT в wire payload (pkg/api) и обратно.
package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/pkg/api"
)

// ErrInvalidOperation возвращается для некорректной операции в payload
var ErrInvalidOperation = errors.New("invalid operation")

// OperationToAPI конвертирует операцию в wire формат
func OperationToAPI(op crdt.Operation) api.Operation {
	result := api.Operation{
		Kind: op.Kind.String(),
		ID:   op.ID.String(),
	}

	switch op.Kind {
	case crdt.OpInsert:
		result.Atom = &api.Atom{
			ID:      op.Atom.ID.String(),
			Value:   string(op.Atom.Value),
			Left:    optionalID(op.Atom.Left),
			Right:   optionalID(op.Atom.Right),
			Deleted: op.Atom.Deleted,
		}
	case crdt.OpDelete:
		result.Target = op.Target.String()
	}

	return result
}

// OperationsToAPI конвертирует пакет операций в wire формат, сохраняя порядок
func OperationsToAPI(ops []crdt.Operation) []api.Operation {
	result := make([]api.Operation, 0, len(ops))
	for _, op := range ops {
		result = append(result, OperationToAPI(op))
	}
	return result
}

// OperationFromAPI конвертирует и валидирует операцию из wire формата
func OperationFromAPI(op api.Operation) (crdt.Operation, error) {
	id, err := crdt.ParseOperationID(op.ID)
	if err != nil {
		return crdt.Operation{}, fmt.Errorf("%w: id: %w", ErrInvalidOperation, err)
	}

	switch op.Kind {
	case api.KindInsert:
		atom, err := atomFromAPI(op.Atom)
		if err != nil {
			return crdt.Operation{}, err
		}
		if atom.ID != id {
			return crdt.Operation{}, fmt.Errorf("%w: atom id %s differs from operation id %s", ErrInvalidOperation, atom.ID, id)
		}
		return crdt.NewInsert(atom), nil

	case api.KindDelete:
		target, err := crdt.ParseOperationID(op.Target)
		if err != nil {
			return crdt.Operation{}, fmt.Errorf("%w: target: %w", ErrInvalidOperation, err)
		}
		if target == id {
			return crdt.Operation{}, fmt.Errorf("%w: delete %s targets itself", ErrInvalidOperation, id)
		}
		return crdt.NewDelete(id, target), nil

	default:
		return crdt.Operation{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, op.Kind)
	}
}

// OperationsFromAPI конвертирует пакет операций. Первая некорректная операция
// прерывает разбор всего пакета.
func OperationsFromAPI(ops []api.Operation) ([]crdt.Operation, error) {
	result := make([]crdt.Operation, 0, len(ops))
	for i, op := range ops {
		converted, err := OperationFromAPI(op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		result = append(result, converted)
	}
	return result, nil
}

// VectorToAPI конвертирует вектор версий в wire формат
func VectorToAPI(vv crdt.VersionVector) api.VersionVector {
	result := make(api.VersionVector, len(vv))
	for site, n := range vv {
		result[string(site)] = n
	}
	return result
}

// VectorFromAPI конвертирует и валидирует вектор версий из wire формата
func VectorFromAPI(vv api.VersionVector) (crdt.VersionVector, error) {
	result := make(crdt.VersionVector, len(vv))
	for site, n := range vv {
		siteID, err := crdt.ParseSiteID(site)
		if err != nil {
			return nil, fmt.Errorf("vector: %w", err)
		}
		if n > crdt.MaxCounter {
			return nil, fmt.Errorf("vector: %w: counter %d of %s out of range", crdt.ErrInvalidID, n, site)
		}
		result[siteID] = n
	}
	return result, nil
}

func atomFromAPI(atom *api.Atom) (crdt.Atom, error) {
	if atom == nil {
		return crdt.Atom{}, fmt.Errorf("%w: insert without atom", ErrInvalidOperation)
	}

	id, err := crdt.ParseOperationID(atom.ID)
	if err != nil {
		return crdt.Atom{}, fmt.Errorf("%w: atom id: %w", ErrInvalidOperation, err)
	}

	// U+FFFD допустим как символ; отклоняется только некорректный байт (size == 1)
	value, size := utf8.DecodeRuneInString(atom.Value)
	if size == 0 || size != len(atom.Value) || (value == utf8.RuneError && size == 1) {
		return crdt.Atom{}, fmt.Errorf("%w: atom %s value must be exactly one character", ErrInvalidOperation, id)
	}

	left, err := parseOptionalID(atom.Left)
	if err != nil {
		return crdt.Atom{}, fmt.Errorf("%w: atom %s left: %w", ErrInvalidOperation, id, err)
	}
	right, err := parseOptionalID(atom.Right)
	if err != nil {
		return crdt.Atom{}, fmt.Errorf("%w: atom %s right: %w", ErrInvalidOperation, id, err)
	}

	return crdt.Atom{
		ID:      id,
		Value:   value,
		Left:    left,
		Right:   right,
		Deleted: atom.Deleted,
	}, nil
}

func optionalID(id crdt.OperationID) *string {
	if id.IsZero() {
		return nil
	}
	s := id.String()
	return &s
}

func parseOptionalID(s *string) (crdt.OperationID, error) {
	if s == nil || *s == "" {
		return crdt.OperationID{}, nil
	}
	return crdt.ParseOperationID(*s)
}
