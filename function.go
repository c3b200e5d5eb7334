package lox

// NewLoxFunction wraps a declared function or method in its defining
// closure environment.
func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) LoxCallable {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// NewLoxLambda adapts an anonymous function expression into the same
// shape as a declared Function, so LoxFunction has one Call path for
// both.
func NewLoxLambda(lambda *Lambda, closure *Environment) LoxCallable {
	return &LoxFunction{
		declaration: NewFunction(nil, lambda.params, lambda.body),
		closure:     closure,
	}
}

// LoxFunction is a closure: a function declaration plus the environment
// it was declared in.
type LoxFunction struct {
	declaration   *Function
	closure       *Environment
	isInitializer bool
}

// Bind returns a copy of this function with `this` bound to instance, so
// a method retains the instance it was looked up on independent of how
// it's later called.
func (this *LoxFunction) Bind(instance *LoxInstance) LoxCallable {
	environment := NewEnvironment(this.closure)
	environment.Define("this", instance)
	return NewLoxFunction(this.declaration, environment, this.isInitializer)
}

func (this *LoxFunction) Arity() int {
	return len(this.declaration.params)
}

func (this *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (value interface{}) {
	env := NewEnvironment(this.closure)
	for i := 0; i < len(this.declaration.params); i++ {
		env.Define(this.declaration.params[i].Lexeme, arguments[i])
	}
	defer func() {
		r := recover()
		if r != nil {
			if _, ok := r.(*returnSignal); !ok {
				panic(r)
			}
		}
		if this.isInitializer {
			value = this.closure.GetAt(0, "this")
		} else if sig, ok := r.(*returnSignal); ok {
			value = sig.value
		}
	}()
	interpreter.executeBlock(this.declaration.body, env)
	return
}

func (this *LoxFunction) String() string {
	if this.declaration.name != nil {
		return "<fn " + this.declaration.name.Lexeme + ">"
	}
	return "<fn closure>"
}
