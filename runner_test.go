package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPersistsGlobalsAcrossRunCalls(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, DefaultConfig())

	session.Run(`var x = 1;`)
	require.False(t, session.HadError())

	session.Run(`x = x + 1; print x;`)
	require.False(t, session.HadError())
	assert.Equal(t, "2\n", out.String())
}

func TestSessionResetErrorClearsBothFlags(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, DefaultConfig())

	session.Run(`1 +;`)
	require.True(t, session.HadError())

	session.ResetError()
	assert.False(t, session.HadError())
	assert.False(t, session.HadRuntimeError())
}

func TestSessionCompileErrorSkipsInterpretation(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, DefaultConfig())

	session.Run(`print "before"; 1 +;`)
	assert.True(t, session.HadError())
	assert.False(t, session.HadRuntimeError())
	assert.Equal(t, "[line 1] Error at ';': expect expression near `print \"before\" ; 1 +`\n", out.String(),
		"a program with a compile error prints only its diagnostic, never its own output")
}

func TestSessionRuntimeErrorStopsAtTheFailingStatement(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, DefaultConfig())

	session.Run(`print "first"; print 1 + "two"; print "never";`)
	assert.True(t, session.HadRuntimeError())
	assert.Contains(t, out.String(), "first")
	assert.NotContains(t, out.String(), "never")
}

func TestSessionFullProgramScenario(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, DefaultConfig())

	session.Run(`
		class Animal {
			init(name) {
				this.name = name;
			}
			speak() {
				return this.name + " makes a sound";
			}
		}
		class Dog < Animal {
			speak() {
				return super.speak() + " (bark)";
			}
		}
		var d = Dog("Rex");
		print d.speak();
	`)
	require.False(t, session.HadError())
	require.False(t, session.HadRuntimeError())
	assert.Equal(t, "Rex makes a sound (bark)\n", out.String())
}
