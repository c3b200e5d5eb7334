package lox

import (
	"fmt"
	"io"
	"strconv"
)

// Interpreter walks a resolved AST and evaluates it. Each Interpreter
// owns its own global scope and output stream, so a REPL session and a
// one-shot script run never share mutable state.
type Interpreter struct {
	globals      *Environment
	environment  *Environment
	locals       map[Expr]int
	out          io.Writer
	report       *reporter
	callDepth    int
	maxCallDepth int
}

// NewInterpreter returns an Interpreter with the native bindings defined
// and diagnostics routed through report. maxCallDepth bounds how many
// nested Lox calls Interpret will allow before reporting a RuntimeError
// instead of letting unbounded recursion overflow the Go stack; pass
// DefaultConfig().MaxCallDepth (or a Config loaded from glox.yaml) rather
// than 0, which would make every call trip the limit immediately.
func NewInterpreter(out io.Writer, report *reporter, maxCallDepth int) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", NewClock())
	return &Interpreter{
		globals:      globals,
		environment:  globals,
		locals:       map[Expr]int{},
		out:          out,
		report:       report,
		maxCallDepth: maxCallDepth,
	}
}

// Interpret runs a program, recovering a RuntimeError into the reporter
// rather than letting it crash the process. Any other panic value is a
// bug in the interpreter itself and is left to propagate.
func (this *Interpreter) Interpret(statements []Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				this.report.runtime(re)
				return
			}
			panic(r)
		}
	}()
	for _, statement := range statements {
		this.execute(statement)
	}
}

func (this *Interpreter) execute(stmt Stmt) {
	stmt.accept(this)
}

// resolve records, for a specific occurrence of a variable reference,
// how many enclosing scopes out its binding lives. Called by the
// resolver, consulted by lookUpVariable.
func (this *Interpreter) resolve(expr Expr, depth int) {
	this.locals[expr] = depth
}

func (this *Interpreter) executeBlock(statements []Stmt, env *Environment) {
	previous := this.environment
	defer func() {
		this.environment = previous
	}()
	this.environment = env
	for _, statement := range statements {
		this.execute(statement)
	}
}

func (this *Interpreter) visitBlockStmt(stmt *Block) interface{} {
	this.executeBlock(stmt.statements, NewEnvironment(this.environment))
	return nil
}

func (this *Interpreter) visitClassStmt(stmt *Class) interface{} {
	var superclass interface{}
	if stmt.superclass != nil {
		superclass = this.evaluate(stmt.superclass)
		if _, ok := superclass.(*LoxClass); !ok {
			panic(NewRuntimeError(stmt.superclass.name, "superclass must be a class."))
		}
	}

	this.environment.Define(stmt.name.Lexeme, nil)
	if stmt.superclass != nil {
		this.environment = NewEnvironment(this.environment)
		this.environment.Define("super", superclass)
	}

	methods := map[string]LoxCallable{}
	for _, method := range stmt.methods {
		function := NewLoxFunction(method, this.environment, method.name.Lexeme == "init")
		methods[method.name.Lexeme] = function
	}

	superklass, _ := superclass.(*LoxClass)
	class := NewLoxClass(stmt.name.Lexeme, superklass, methods)
	if superklass != nil {
		this.environment = this.environment.enclosing
	}

	this.environment.Assign(stmt.name, class)
	return nil
}

func (this *Interpreter) visitLiteralExpr(expr *Literal) interface{} {
	return expr.value
}

func (this *Interpreter) visitLogicalExpr(expr *Logical) interface{} {
	left := this.evaluate(expr.left)
	if expr.operator.Type == OR {
		if this.isTruthy(left) {
			return left
		}
	} else if !this.isTruthy(left) {
		return left
	}
	return this.evaluate(expr.right)
}

func (this *Interpreter) visitSetExpr(expr *Set) interface{} {
	object := this.evaluate(expr.object)

	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(NewRuntimeError(expr.name, "only instances have fields."))
	}
	value := this.evaluate(expr.value)
	instance.Set(expr.name, value)
	return value
}

func (this *Interpreter) visitSuperExpr(expr *Super) interface{} {
	distance := this.locals[expr]
	superclass, _ := this.environment.GetAt(distance, "super").(*LoxClass)
	object, _ := this.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		panic(NewRuntimeError(expr.method, "undefined property '"+expr.method.Lexeme+"'."))
	}
	return method.(*LoxFunction).Bind(object)
}

func (this *Interpreter) visitThisExpr(expr *This) interface{} {
	return this.lookUpVariable(expr.keyword, expr)
}

func (this *Interpreter) visitGroupingExpr(expr *Grouping) interface{} {
	return this.evaluate(expr.expression)
}

func (this *Interpreter) visitUnaryExpr(expr *Unary) interface{} {
	right := this.evaluate(expr.right)
	switch expr.operator.Type {
	case MINUS:
		this.checkNumberOperand(expr.operator, right)
		return -right.(float64)
	case BANG:
		return !this.isTruthy(right)
	case PLUS_PLUS:
		this.checkVariable(expr.operator, expr.right, "operand of an increment operator must be a variable.")
		this.checkNumberOperand(expr.operator, right)

		value := right.(float64)
		this.environment.Assign(expr.right.(*Variable).name, value+1)
		return ifFloat(expr.postfix, value, value+1)
	case MINUS_MINUS:
		this.checkVariable(expr.operator, expr.right, "operand of a decrement operator must be a variable.")
		this.checkNumberOperand(expr.operator, right)

		value := right.(float64)
		this.environment.Assign(expr.right.(*Variable).name, value-1)
		return ifFloat(expr.postfix, value, value-1)
	}
	return nil
}

func (this *Interpreter) visitVariableExpr(expr *Variable) interface{} {
	return this.lookUpVariable(expr.name, expr)
}

func (this *Interpreter) lookUpVariable(name *Token, expr Expr) interface{} {
	if distance, ok := this.locals[expr]; ok {
		return this.environment.GetAt(distance, name.Lexeme)
	}
	return this.globals.Get(name)
}

func (this *Interpreter) visitTernaryExpr(expr *Ternary) interface{} {
	if this.isTruthy(this.evaluate(expr.expr)) {
		return this.evaluate(expr.thenBranch)
	}
	return this.evaluate(expr.elseBranch)
}

func (this *Interpreter) visitBinaryExpr(expr *Binary) interface{} {
	left := this.evaluate(expr.left)
	right := this.evaluate(expr.right)

	switch expr.operator.Type {
	case GREATER:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) > right.(float64)
	case GREATER_EQUAL:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) >= right.(float64)
	case LESS:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) < right.(float64)
	case LESS_EQUAL:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) <= right.(float64)
	case MINUS:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) - right.(float64)
	case BANG_EQUAL:
		return !this.isEqual(left, right)
	case EQUAL_EQUAL:
		return this.isEqual(left, right)
	case PLUS:
		v1, ok1 := left.(float64)
		v2, ok2 := right.(float64)
		if ok1 && ok2 {
			return v1 + v2
		}

		s1, ok1 := left.(string)
		s2, ok2 := right.(string)
		if ok1 && ok2 {
			return s1 + s2
		}
		panic(NewRuntimeError(expr.operator, "operands must be two numbers or two strings."))
	case SLASH:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) / right.(float64)
	case STAR:
		this.checkNumberOperands(expr.operator, left, right)
		return left.(float64) * right.(float64)
	case COMMA:
		return right
	}
	return nil
}

func (this *Interpreter) visitCallExpr(expr *Call) interface{} {
	callee := this.evaluate(expr.callee)

	var arguments []interface{}
	for _, argument := range expr.arguments {
		arguments = append(arguments, this.evaluate(argument))
	}
	function, ok := callee.(LoxCallable)
	if !ok {
		panic(NewRuntimeError(expr.paren, "can only call functions and classes."))
	}

	if len(arguments) != function.Arity() {
		panic(NewRuntimeError(expr.paren, "expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))))
	}

	this.callDepth++
	if this.callDepth > this.maxCallDepth {
		this.callDepth--
		panic(NewRuntimeError(expr.paren, "stack overflow: call depth exceeded "+
			strconv.Itoa(this.maxCallDepth)+"."))
	}
	defer func() { this.callDepth-- }()

	return function.Call(this, arguments)
}

func (this *Interpreter) visitGetExpr(expr *Get) interface{} {
	object := this.evaluate(expr.object)
	if instance, ok := object.(*LoxInstance); ok {
		return instance.Get(expr.name)
	}
	panic(NewRuntimeError(expr.name, "only instances have properties."))
}

func (this *Interpreter) visitIndexExpr(expr *Index) interface{} {
	left := this.evaluate(expr.left)
	array, ok := left.(LoxIterator)
	if !ok {
		panic(NewRuntimeError(expr.name, "only arrays can be indexed."))
	}
	index := this.evaluate(expr.index)
	idx, ok := index.(float64)
	if !ok {
		panic(NewRuntimeError(expr.name, "array index must be a number."))
	}
	v, err := array.Get(int(idx))
	if err != nil {
		panic(NewRuntimeError(expr.name, err.Error()))
	}
	return v
}

func (this *Interpreter) visitExpressionStmt(stmt *Expression) interface{} {
	this.evaluate(stmt.expression)
	return nil
}

func (this *Interpreter) visitFunctionStmt(stmt *Function) interface{} {
	function := NewLoxFunction(stmt, this.environment, false)
	this.environment.Define(stmt.name.Lexeme, function)
	return nil
}

func (this *Interpreter) visitLambdaExpr(expr *Lambda) interface{} {
	return NewLoxLambda(expr, this.environment)
}

func (this *Interpreter) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	var items []interface{}
	for _, item := range expr.items {
		items = append(items, this.evaluate(item))
	}
	return NewLoxArray(items)
}

func (this *Interpreter) visitIfStmt(stmt *If) interface{} {
	if this.isTruthy(this.evaluate(stmt.condition)) {
		this.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		this.execute(stmt.elseBranch)
	}
	return nil
}

func (this *Interpreter) visitReturnStmt(stmt *Return) interface{} {
	var value interface{}
	if stmt.value != nil {
		value = this.evaluate(stmt.value)
	}
	panic(newReturnSignal(value))
}

func (this *Interpreter) visitPrintStmt(stmt *Print) interface{} {
	value := this.evaluate(stmt.expression)
	fmt.Fprintln(this.out, stringify(value))
	return nil
}

func (this *Interpreter) visitVarStmt(stmt *Var) interface{} {
	var value interface{}
	if stmt.initializer != nil {
		value = this.evaluate(stmt.initializer)
	}
	this.environment.Define(stmt.name.Lexeme, value)
	return nil
}

// visitWhileStmt runs the loop body under a recover that catches break
// and continue. continue unwinds back here and simply restarts the
// condition check; break unwinds here and stops.
func (this *Interpreter) visitWhileStmt(stmt *While) interface{} {
	runOnce := func() (hitContinue bool) {
		defer func() {
			if r := recover(); r != nil {
				switch r.(type) {
				case *continueSignal:
					hitContinue = true
				case *breakSignal:
					hitContinue = false
				default:
					panic(r)
				}
			}
		}()
		for this.isTruthy(this.evaluate(stmt.condition)) {
			this.execute(stmt.body)
		}
		return false
	}
	for runOnce() {
	}
	return nil
}

func (this *Interpreter) visitBreakStmt(stmt *Break) interface{} {
	panic(theBreakSignal)
}

func (this *Interpreter) visitContinueStmt(stmt *Continue) interface{} {
	panic(theContinueSignal)
}

func (this *Interpreter) visitAssignExpr(expr *Assign) interface{} {
	value := this.evaluate(expr.value)

	if distance, ok := this.locals[expr]; ok {
		this.environment.AssignAt(distance, expr.name, value)
	} else {
		this.globals.Assign(expr.name, value)
	}
	return value
}

func (this *Interpreter) visitArraySetExpr(expr *ArraySet) interface{} {
	value := this.evaluate(expr.left)
	array, ok := value.(LoxIterator)
	if !ok {
		panic(NewRuntimeError(expr.name, "only arrays support indexed assignment."))
	}
	if expr.index == nil {
		array.Add(this.evaluate(expr.value))
	} else {
		index := this.evaluate(expr.index).(float64)
		if err := array.Set(int(index), this.evaluate(expr.value)); err != nil {
			panic(NewRuntimeError(expr.name, err.Error()))
		}
	}
	return nil
}

func (this *Interpreter) evaluate(expr Expr) interface{} {
	return expr.accept(this)
}

func (this *Interpreter) isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

func (this *Interpreter) isEqual(a, b interface{}) bool {
	return a == b
}

func (this *Interpreter) checkNumberOperand(operator *Token, operand interface{}) {
	if _, ok := operand.(float64); ok {
		return
	}
	panic(NewRuntimeError(operator, "operand must be a number."))
}

func (this *Interpreter) checkNumberOperands(operator *Token, left, right interface{}) {
	_, ok1 := left.(float64)
	_, ok2 := right.(float64)
	if ok1 && ok2 {
		return
	}
	panic(NewRuntimeError(operator, "operands must be numbers."))
}

func (this *Interpreter) checkVariable(operator *Token, right Expr, message string) {
	if _, ok := right.(*Variable); ok {
		return
	}
	panic(NewRuntimeError(operator, message))
}

func ifFloat(cond bool, x, y float64) float64 {
	if cond {
		return x
	}
	return y
}
