package gentsdecl

import "fmt"

// TSType is a TypeScript type expression.
type TSType interface {
	TSType() string
}

type simpleType string

func (s simpleType) TSType() string { return string(s) }

const (
	numberType  simpleType = "number"
	stringType  simpleType = "string"
	booleanType simpleType = "boolean"
	neverType   simpleType = "never"
)

type repeatedType struct {
	elem TSType
}

func (r repeatedType) TSType() string { return fmt.Sprintf("ReadonlyArray<%s>", r.elem.TSType()) }

// MapScalar returns the TypeScript type for a scalar kind. typeName is used
// verbatim for references and ignored otherwise.
func MapScalar(kind ScalarKind, typeName string) TSType {
	switch kind {
	case Numeric:
		return numberType
	case Textual:
		return stringType
	case Boolean:
		return booleanType
	case Reference:
		return simpleType(typeName)
	}
	// ScalarKind values only come from scalarKind, which rejects anything else.
	panic(fmt.Sprintf("gentsdecl: unknown scalar kind %d", int(kind)))
}

// FieldType maps a field, wrapping repeated fields in ReadonlyArray.
func FieldType(f FieldSpec) TSType {
	t := MapScalar(f.Kind, f.TypeName)
	if f.Multiplicity == Repeated {
		return repeatedType{elem: t}
	}
	return t
}
