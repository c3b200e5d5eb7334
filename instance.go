package lox

// NewLoxInstance constructs an instance with no fields set.
func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

// LoxInstance is a class's runtime object: a bag of fields plus a
// pointer back to the class that supplies its methods.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

// Get resolves a property, preferring an instance field over a method of
// the same name.
func (this *LoxInstance) Get(name *Token) interface{} {
	if value, ok := this.fields[name.Lexeme]; ok {
		return value
	}
	if method := this.class.findMethod(name.Lexeme); method != nil {
		return method.(*LoxFunction).Bind(this)
	}
	panic(NewRuntimeError(name, "undefined property '"+name.Lexeme+"'."))
}

// Set assigns a field, creating it if it doesn't already exist.
func (this *LoxInstance) Set(name *Token, value interface{}) {
	this.fields[name.Lexeme] = value
}

func (this *LoxInstance) String() string {
	return this.class.name + " instance"
}
