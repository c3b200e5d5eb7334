package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) (*Interpreter, []Stmt, *reporter) {
	t.Helper()
	var out bytes.Buffer
	report := newReporter(&out)
	tokens := NewScanner(source, report).ScanTokens()
	stmts := NewParser(tokens, report).Parse()
	require.False(t, report.hadError)

	interp := NewInterpreter(&out, report, DefaultConfig().MaxCallDepth)
	NewResolver(interp, report).Resolve(stmts)
	return interp, stmts, report
}

func TestResolverBindsBlockLocalToItsDeclaration(t *testing.T) {
	interp, stmts, report := resolveSource(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
	`)
	require.False(t, report.hadError)

	block := stmts[1].(*Block)
	printStmt := block.statements[1].(*Print)
	variable := printStmt.expression.(*Variable)

	distance, ok := interp.locals[variable]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolverReadingOwnInitializerIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	assert.True(t, report.hadError)
}

func TestResolverDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, report.hadError)
}

func TestResolverTopLevelReturnIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `return 1;`)
	assert.True(t, report.hadError)
}

func TestResolverReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, report.hadError)
}

func TestResolverThisOutsideClassIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `print this;`)
	assert.True(t, report.hadError)
}

func TestResolverSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, report := resolveSource(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`)
	assert.True(t, report.hadError)
}

func TestResolverClassCannotInheritFromItself(t *testing.T) {
	_, _, report := resolveSource(t, `class Foo < Foo {}`)
	assert.True(t, report.hadError)
}
