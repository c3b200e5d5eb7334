package lox

// FunctionType tracks what kind of function body the resolver is
// currently inside, so return/this/super can be validated contextually.
type FunctionType int

// ClassType tracks whether the resolver is inside a class body, and
// whether that class has a superclass, for the same reason.
type ClassType int

const (
	ftNone FunctionType = iota
	ftFunction
	ftInitializer
	ftMethod
)

const (
	ctNone ClassType = iota
	ctSubclass
	ctClass
)

// Resolver performs a single static pass over the AST between parsing
// and interpretation. For every variable reference it counts how many
// enclosing lexical scopes separate it from its declaration and records
// that count on the Interpreter, keyed by the Expr node's identity. It
// also catches a handful of errors interpretation alone can't catch
// early: reading a variable in its own initializer, top-level return,
// this/super outside a class.
type Resolver struct {
	interpreter     *Interpreter
	scopes          *Stack
	currentFunction FunctionType
	currentClass    ClassType
	report          *reporter
}

// NewResolver returns a Resolver that records bindings on interpreter
// and reports errors through report.
func NewResolver(interpreter *Interpreter, report *reporter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		scopes:          NewStack(),
		currentFunction: ftNone,
		currentClass:    ctNone,
		report:          report,
	}
}

func (this *Resolver) visitBlockStmt(stmt *Block) interface{} {
	this.beginScope()
	this.resolve(stmt.statements)
	this.endScope()
	return nil
}

// Resolve is the entry point: resolve a whole program.
func (this *Resolver) Resolve(statements []Stmt) {
	this.resolve(statements)
}

func (this *Resolver) resolve(statements []Stmt) {
	for _, statement := range statements {
		this.resolveStmt(statement)
	}
}

func (this *Resolver) resolveStmt(stmt Stmt) {
	stmt.accept(this)
}

func (this *Resolver) resolveExpr(expr Expr) {
	expr.accept(this)
}

func (this *Resolver) beginScope() {
	this.scopes.Push(map[string]bool{})
}

func (this *Resolver) endScope() {
	_, _ = this.scopes.Pop()
}

func (this *Resolver) visitVarStmt(stmt *Var) interface{} {
	this.declare(stmt.name)
	if stmt.initializer != nil {
		this.resolveExpr(stmt.initializer)
	}
	this.define(stmt.name)
	return nil
}

func (this *Resolver) declare(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	scope := this.scopes.Top().(map[string]bool)
	if _, ok := scope[name.Lexeme]; ok {
		this.report.resolve(newResolveError(name, "already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

func (this *Resolver) define(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	scope := this.scopes.Top().(map[string]bool)
	scope[name.Lexeme] = true
}

func (this *Resolver) visitVariableExpr(expr *Variable) interface{} {
	if !this.scopes.IsEmpty() {
		if ready, ok := this.scopes.Top().(map[string]bool)[expr.name.Lexeme]; ok && !ready {
			this.report.resolve(newResolveError(expr.name, "can't read local variable in its own initializer."))
		}
	}
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) resolveLocal(expr Expr, name *Token) {
	for i := this.scopes.Size() - 1; i >= 0; i-- {
		if value, err := this.scopes.Get(i); err == nil {
			if _, ok := value.(map[string]bool)[name.Lexeme]; ok {
				this.interpreter.resolve(expr, this.scopes.Size()-1-i)
				return
			}
		}
	}
}

func (this *Resolver) visitAssignExpr(expr *Assign) interface{} {
	this.resolveExpr(expr.value)
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) visitClassStmt(stmt *Class) interface{} {
	enclosingClass := this.currentClass
	this.currentClass = ctClass

	this.declare(stmt.name)
	this.define(stmt.name)

	if stmt.superclass != nil && stmt.name.Lexeme == stmt.superclass.name.Lexeme {
		this.report.resolve(newResolveError(stmt.superclass.name, "a class can't inherit from itself."))
	}

	if stmt.superclass != nil {
		this.currentClass = ctSubclass
		this.resolveExpr(stmt.superclass)
		this.beginScope()
		this.scopes.Top().(map[string]bool)["super"] = true
	}

	this.beginScope()
	this.scopes.Top().(map[string]bool)["this"] = true
	for _, method := range stmt.methods {
		declaration := ftMethod
		if method.name.Lexeme == "init" {
			declaration = ftInitializer
		}
		this.resolveFunction(method, declaration)
	}
	this.endScope()
	if stmt.superclass != nil {
		this.endScope()
	}
	this.currentClass = enclosingClass
	return nil
}

func (this *Resolver) visitFunctionStmt(stmt *Function) interface{} {
	this.declare(stmt.name)
	this.define(stmt.name)
	this.resolveFunction(stmt, ftFunction)
	return nil
}

func (this *Resolver) resolveFunction(function *Function, ft FunctionType) {
	this.function(function.params, function.body, ft)
}

func (this *Resolver) resolveLambda(lambda *Lambda, ft FunctionType) {
	this.function(lambda.params, lambda.body, ft)
}

func (this *Resolver) function(params []*Token, body []Stmt, ft FunctionType) {
	enclosingFunction := this.currentFunction
	this.currentFunction = ft

	this.beginScope()

	for _, param := range params {
		this.declare(param)
		this.define(param)
	}

	this.resolve(body)

	this.endScope()
	this.currentFunction = enclosingFunction
}

func (this *Resolver) visitExpressionStmt(stmt *Expression) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitIfStmt(stmt *If) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		this.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (this *Resolver) visitPrintStmt(stmt *Print) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitReturnStmt(stmt *Return) interface{} {
	if this.currentFunction == ftNone {
		this.report.resolve(newResolveError(stmt.keyword, "can't return from top-level code."))
	}
	if stmt.value != nil {
		if this.currentFunction == ftInitializer {
			this.report.resolve(newResolveError(stmt.keyword, "can't return a value from an initializer."))
		}
		this.resolveExpr(stmt.value)
	}
	return nil
}

func (this *Resolver) visitWhileStmt(stmt *While) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.body)
	return nil
}

func (this *Resolver) visitBreakStmt(stmt *Break) interface{} {
	return nil
}

func (this *Resolver) visitContinueStmt(stmt *Continue) interface{} {
	return nil
}

func (this *Resolver) visitBinaryExpr(expr *Binary) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitCallExpr(expr *Call) interface{} {
	this.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		this.resolveExpr(argument)
	}
	return nil
}

func (this *Resolver) visitGroupingExpr(expr *Grouping) interface{} {
	this.resolveExpr(expr.expression)
	return nil
}

func (this *Resolver) visitLiteralExpr(expr *Literal) interface{} {
	return nil
}

func (this *Resolver) visitLogicalExpr(expr *Logical) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitSetExpr(expr *Set) interface{} {
	this.resolveExpr(expr.value)
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitSuperExpr(expr *Super) interface{} {
	if this.currentClass == ctNone {
		this.report.resolve(newResolveError(expr.keyword, "can't use 'super' outside of a class."))
	} else if this.currentClass != ctSubclass {
		this.report.resolve(newResolveError(expr.keyword, "can't use 'super' in a class with no superclass."))
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitThisExpr(expr *This) interface{} {
	if this.currentClass == ctNone {
		this.report.resolve(newResolveError(expr.keyword, "can't use 'this' outside of a class."))
		return nil
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitGetExpr(expr *Get) interface{} {
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitUnaryExpr(expr *Unary) interface{} {
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitTernaryExpr(expr *Ternary) interface{} {
	this.resolveExpr(expr.expr)
	this.resolveExpr(expr.thenBranch)
	this.resolveExpr(expr.elseBranch)
	return nil
}

func (this *Resolver) visitLambdaExpr(expr *Lambda) interface{} {
	this.resolveLambda(expr, ftFunction)
	return nil
}

func (this *Resolver) visitIndexExpr(expr *Index) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.index)
	return nil
}

func (this *Resolver) visitArraySetExpr(expr *ArraySet) interface{} {
	this.resolveExpr(expr.left)
	if expr.index != nil {
		this.resolveExpr(expr.index)
	}
	this.resolveExpr(expr.value)
	return nil
}

func (this *Resolver) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	for _, item := range expr.items {
		this.resolveExpr(item)
	}
	return nil
}
