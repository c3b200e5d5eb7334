package lox

// LoxCallable is anything invokable with `(...)`: user functions,
// lambdas, bound methods, classes (as constructors) and natives.
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) interface{}
}
