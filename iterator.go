package lox

// LoxIterator is the runtime interface array values implement. Kept
// separate from LoxArray so a future sequence type (a string view, a
// slice) can reuse indexing and length semantics without embedding.
type LoxIterator interface {
	Len() int
	Add(item interface{})
	Get(index int) (interface{}, error)
	Set(index int, value interface{}) error
}
