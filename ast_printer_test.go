package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinterParenthesizesByPrecedence(t *testing.T) {
	expression := NewBinary(
		NewUnary(NewToken(MINUS, "-", nil, 1), NewLiteral(123.0), false),
		NewToken(STAR, "*", nil, 1),
		NewGrouping(NewLiteral(45.67)))

	printer := &AstPrinter{}
	assert.Equal(t, "(* (- 123) (group 45.67))", printer.printExpr(expression))
}

func TestAstPrinterIsDeterministic(t *testing.T) {
	expression := NewTernary(
		NewVariable(NewToken(IDENTIFIER, "ready", nil, 1)),
		NewLiteral(1.0),
		NewLiteral(0.0))

	printer := &AstPrinter{}
	first := printer.printExpr(expression)
	second := printer.printExpr(expression)
	assert.Equal(t, first, second, "printing the same node twice must yield the same string")
}

func TestAstPrinterWholeNumbersHaveNoTrailingZero(t *testing.T) {
	printer := &AstPrinter{}
	assert.Equal(t, "3", printer.printExpr(NewLiteral(3.0)))
	assert.Equal(t, "3.5", printer.printExpr(NewLiteral(3.5)))
	assert.Equal(t, "nil", printer.printExpr(NewLiteral(nil)))
}

func TestAstPrinterBlockAndIfStatements(t *testing.T) {
	printer := &AstPrinter{}

	block := NewBlock([]Stmt{
		NewPrint(NewLiteral("hi")),
	})
	assert.Equal(t, `(block (print hi))`, printer.printStmt(block))

	ifStmt := NewIf(NewLiteral(true), NewPrint(NewLiteral(1.0)), nil)
	assert.Equal(t, "(if true (print 1))", printer.printStmt(ifStmt))
}
