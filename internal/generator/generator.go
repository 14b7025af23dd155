package generator

import (
	"github.com/google/uuid"
)

// Generator is an interface that defines a method to generate a new value of type T.
// Batch runs use it to obtain the run ID that tags their logs and published keys.
type Generator[T any] interface {
	Next() (T, error)
}

// UUIDV4Generator is a generator that produces UUIDv4 strings.
// It implements the Generator interface.
type UUIDV4Generator struct{}

func (g *UUIDV4Generator) Next() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var _ Generator[string] = &UUIDV4Generator{}

// Func adapts a plain function to the Generator interface.
type Func[T any] func() (T, error)

func (f Func[T]) Next() (T, error) {
	return f()
}

var _ Generator[string] = Func[string](nil)

// NextOr returns the next value from g, or fallback if g fails.
func NextOr[T any](g Generator[T], fallback T) T {
	v, err := g.Next()
	if err != nil {
		return fallback
	}
	return v
}
