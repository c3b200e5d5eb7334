package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newToken(lexeme string) *Token {
	return NewToken(IDENTIFIER, lexeme, nil, 1)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	assert.Equal(t, 1.0, env.Get(newToken("a")))
}

func TestEnvironmentGetUndefinedPanics(t *testing.T) {
	env := NewEnvironment(nil)
	assert.Panics(t, func() { env.Get(newToken("missing")) })
}

func TestEnvironmentGetWalksEnclosingScope(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "outer value")
	inner := NewEnvironment(outer)
	assert.Equal(t, "outer value", inner.Get(newToken("a")))
}

func TestEnvironmentDefineShadowsWithoutTouchingEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "outer value")
	inner := NewEnvironment(outer)
	inner.Define("a", "inner value")

	assert.Equal(t, "inner value", inner.Get(newToken("a")))
	assert.Equal(t, "outer value", outer.Get(newToken("a")))
}

func TestEnvironmentAssignWalksEnclosingScope(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "before")
	inner := NewEnvironment(outer)

	inner.Assign(newToken("a"), "after")
	assert.Equal(t, "after", outer.Get(newToken("a")))
}

func TestEnvironmentAssignUndefinedPanics(t *testing.T) {
	env := NewEnvironment(nil)
	assert.Panics(t, func() { env.Assign(newToken("missing"), 1.0) })
}

func TestEnvironmentGetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", "global")
	middle := NewEnvironment(global)
	middle.Define("a", "middle")
	inner := NewEnvironment(middle)

	assert.Equal(t, "middle", inner.GetAt(1, "a"))
	assert.Equal(t, "global", inner.GetAt(2, "a"))

	inner.AssignAt(1, newToken("a"), "middle updated")
	assert.Equal(t, "middle updated", middle.Get(newToken("a")))
	assert.Equal(t, "global", global.Get(newToken("a")))
}
