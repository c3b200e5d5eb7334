package lox

import (
	"bytes"
	"fmt"
)

// AstPrinter renders an AST back to a parenthesized Lisp-ish form. It is
// a pure function of its input: printing the same node twice yields the
// same string, and it never resolves or evaluates anything.
type AstPrinter struct{}

func (printer *AstPrinter) printExpr(expr Expr) string {
	return expr.accept(printer).(string)
}

func (printer *AstPrinter) printStmt(stmt Stmt) string {
	return stmt.accept(printer).(string)
}

func (printer *AstPrinter) visitBlockStmt(stmt *Block) interface{} {
	bs := bytes.NewBufferString("(block")
	for _, statement := range stmt.statements {
		bs.WriteString(" " + statement.accept(printer).(string))
	}
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) visitClassStmt(stmt *Class) interface{} {
	bs := bytes.NewBufferString("(class " + stmt.name.Lexeme)
	if stmt.superclass != nil {
		bs.WriteString(" < " + printer.printExpr(stmt.superclass))
	}
	for _, method := range stmt.methods {
		bs.WriteString(" " + printer.printStmt(method))
	}
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) visitExpressionStmt(stmt *Expression) interface{} {
	return printer.parenthesize(";", stmt.expression)
}

func (printer *AstPrinter) visitFunctionStmt(stmt *Function) interface{} {
	return printer.printFunctionLike("fun "+stmt.name.Lexeme, stmt.params, stmt.body)
}

func (printer *AstPrinter) visitIfStmt(stmt *If) interface{} {
	if stmt.elseBranch == nil {
		return printer.parenthesize2("if", stmt.condition, stmt.thenBranch)
	}
	return printer.parenthesize2("if-else", stmt.condition, stmt.thenBranch, stmt.elseBranch)
}

func (printer *AstPrinter) visitPrintStmt(stmt *Print) interface{} {
	return printer.parenthesize("print", stmt.expression)
}

func (printer *AstPrinter) visitReturnStmt(stmt *Return) interface{} {
	if stmt.value == nil {
		return "(return)"
	}
	return printer.parenthesize("return", stmt.value)
}

func (printer *AstPrinter) visitVarStmt(stmt *Var) interface{} {
	if stmt.initializer == nil {
		return printer.parenthesize2("var", stmt.name)
	}
	return printer.parenthesize2("var", stmt.name, "=", stmt.initializer)
}

func (printer *AstPrinter) visitWhileStmt(stmt *While) interface{} {
	return printer.parenthesize2("while", stmt.condition, stmt.body)
}

func (printer *AstPrinter) visitBreakStmt(stmt *Break) interface{} {
	return "(break)"
}

func (printer *AstPrinter) visitContinueStmt(stmt *Continue) interface{} {
	return "(continue)"
}

func (printer *AstPrinter) visitBinaryExpr(expr *Binary) interface{} {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (printer *AstPrinter) visitGroupingExpr(expr *Grouping) interface{} {
	return printer.parenthesize("group", expr.expression)
}

func (printer *AstPrinter) visitLiteralExpr(expr *Literal) interface{} {
	if expr.value == nil {
		return "nil"
	}
	if v, ok := expr.value.(float64); ok {
		return formatNumber(v)
	}
	return fmt.Sprintf("%v", expr.value)
}

func (printer *AstPrinter) visitUnaryExpr(expr *Unary) interface{} {
	if expr.postfix {
		return printer.parenthesize("post"+expr.operator.Lexeme, expr.right)
	}
	return printer.parenthesize(expr.operator.Lexeme, expr.right)
}

func (printer *AstPrinter) visitVariableExpr(expr *Variable) interface{} {
	return expr.name.Lexeme
}

func (printer *AstPrinter) visitAssignExpr(expr *Assign) interface{} {
	return printer.parenthesize("= "+expr.name.Lexeme, expr.value)
}

func (printer *AstPrinter) visitLogicalExpr(expr *Logical) interface{} {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (printer *AstPrinter) visitCallExpr(expr *Call) interface{} {
	bs := bytes.NewBufferString("(call " + printer.printExpr(expr.callee))
	for _, arg := range expr.arguments {
		bs.WriteString(" " + printer.printExpr(arg))
	}
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) visitTernaryExpr(expr *Ternary) interface{} {
	return printer.parenthesize("?", expr.expr, expr.thenBranch, expr.elseBranch)
}

func (printer *AstPrinter) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	return printer.parenthesize(expr.bracket.Lexeme, expr.items...)
}

func (printer *AstPrinter) visitLambdaExpr(expr *Lambda) interface{} {
	return printer.printFunctionLike("fun", expr.params, expr.body)
}

func (printer *AstPrinter) printFunctionLike(head string, params []*Token, body []Stmt) string {
	bs := bytes.NewBufferString("(" + head + " (")
	for i, param := range params {
		if i > 0 {
			bs.WriteString(" ")
		}
		bs.WriteString(param.Lexeme)
	}
	bs.WriteString(")")
	for _, stmt := range body {
		bs.WriteString(" " + stmt.accept(printer).(string))
	}
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) visitIndexExpr(expr *Index) interface{} {
	return printer.parenthesize2("[]", expr.left, expr.index)
}

func (printer *AstPrinter) visitGetExpr(expr *Get) interface{} {
	return printer.parenthesize2(".", expr.object, expr.name.Lexeme)
}

func (printer *AstPrinter) visitSetExpr(expr *Set) interface{} {
	return printer.parenthesize2("=", expr.object, expr.name.Lexeme, expr.value)
}

func (printer *AstPrinter) visitArraySetExpr(expr *ArraySet) interface{} {
	if expr.index == nil {
		return printer.parenthesize2("[]=", expr.left, expr.value)
	}
	return printer.parenthesize2("[]=", expr.left, expr.index, expr.value)
}

func (printer *AstPrinter) visitThisExpr(expr *This) interface{} {
	return "this"
}

func (printer *AstPrinter) visitSuperExpr(expr *Super) interface{} {
	return printer.parenthesize2("super", expr.method.Lexeme)
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	bs := bytes.NewBufferString("(" + name)
	for _, expr := range exprs {
		bs.WriteString(" ")
		bs.WriteString(fmt.Sprintf("%v", expr.accept(printer)))
	}
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) parenthesize2(name string, parts ...interface{}) string {
	bs := bytes.NewBufferString("(" + name)
	printer.transform(bs, parts...)
	bs.WriteString(")")
	return bs.String()
}

func (printer *AstPrinter) transform(bs *bytes.Buffer, parts ...interface{}) {
	for _, part := range parts {
		bs.WriteString(" ")
		switch v := part.(type) {
		case Expr:
			bs.WriteString(v.accept(printer).(string))
		case Stmt:
			bs.WriteString(v.accept(printer).(string))
		case *Token:
			bs.WriteString(v.Lexeme)
		case string:
			bs.WriteString(v)
		default:
			bs.WriteString(fmt.Sprintf("%v", v))
		}
	}
}
