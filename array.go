package lox

import (
	"bytes"
	"fmt"
)

// NewLoxArray wraps items as a Lox array value.
func NewLoxArray(items []interface{}) LoxIterator {
	return &LoxArray{items: items, size: len(items)}
}

// LoxArray is the runtime value produced by an array literal. Indexing
// is bounds-checked; out-of-range access or assignment reports
// illegalIndexError rather than panicking on the underlying slice.
type LoxArray struct {
	size  int
	items []interface{}
}

func (this *LoxArray) Len() int {
	return this.size
}

// Add appends a value, implementing `arr[] = value`.
func (this *LoxArray) Add(item interface{}) {
	this.items = append(this.items, item)
	this.size = len(this.items)
}

func (this *LoxArray) Get(index int) (interface{}, error) {
	if index < 0 || index >= this.size {
		return nil, newIllegalIndexError(index, "array index out of range")
	}
	return this.items[index], nil
}

func (this *LoxArray) Set(index int, value interface{}) error {
	if index < 0 || index >= this.size {
		return newIllegalIndexError(index, "array index out of range")
	}
	this.items[index] = value
	return nil
}

func (this *LoxArray) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, item := range this.items {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(stringify(item))
	}
	out.WriteString("]")
	return out.String()
}

// stringify renders any Lox runtime value the way print does.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
