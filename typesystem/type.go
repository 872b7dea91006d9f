// Package typesystem implements the typed value universe that the
// expression resolver (package resolve) lowers untyped syntax into.
//
// The primitive kinds are process-wide singletons. Compound types (Array,
// Struct, Callback, Function, UnitProduct) are immutable values that each
// constructor call allocates afresh; they are not interned, so two equal
// compound types may be distinct pointers and are compared with Equal.
package typesystem

import "fmt"

// Kind tags the sum type Type is built from.
type Kind int

const (
	KindInvalid Kind = iota
	KindVoid
	KindNumber // has an associated Unit, Unit{} (no unit) included
	KindString
	KindColor
	KindBrush
	KindBool
	KindImage
	KindArray
	KindStruct
	KindEnumeration
	KindCallback
	KindFunction
	KindElementReference
	KindModel
	KindUnitProduct
	KindInferredProperty
	KindInferredCallback
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindBrush:
		return "brush"
	case KindBool:
		return "bool"
	case KindImage:
		return "image"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindEnumeration:
		return "enumeration"
	case KindCallback:
		return "callback"
	case KindFunction:
		return "function"
	case KindElementReference:
		return "element-reference"
	case KindModel:
		return "model"
	case KindUnitProduct:
		return "unit-product"
	case KindInferredProperty:
		return "inferred-property"
	case KindInferredCallback:
		return "inferred-callback"
	default:
		return "unknown"
	}
}

// Type is the resolver's value-type representation. The zero value is not
// valid; use the Invalid singleton or one of the constructors below.
type Type struct {
	kind Kind

	unit Unit // KindNumber

	elem *Type // KindArray: element type

	fields *Fields // KindStruct: ordered field table

	enum *Enumeration // KindEnumeration

	args []*Type // KindCallback, KindFunction
	ret  *Type   // KindCallback, KindFunction

	unitProduct []UnitTerm // KindUnitProduct

	unitKindInt bool // KindNumber: true for Int32, false for Float32 and any unit-carrying number
}

// Kind returns the tag of t.
func (t *Type) Kind() Kind {
	if t == nil {
		return KindInvalid
	}
	return t.kind
}

// Enumeration describes a named set of string-valued variants, e.g. the
// values a `layout-direction` or `text-horizontal-alignment` enum property
// can take.
type Enumeration struct {
	Name     string
	Variants []string
}

// UnitTerm is one factor of a UnitProduct, e.g. `px` raised to 1 or `s`
// raised to -1 for a velocity in px/s.
type UnitTerm struct {
	Unit Unit
	Pow  int
}

// Interned singleton instances for the kinds that carry no payload.
var (
	Invalid          = &Type{kind: KindInvalid}
	Void             = &Type{kind: KindVoid}
	String           = &Type{kind: KindString}
	Color            = &Type{kind: KindColor}
	Brush            = &Type{kind: KindBrush}
	Bool             = &Type{kind: KindBool}
	Image            = &Type{kind: KindImage}
	Model            = &Type{kind: KindModel}
	ElementReference = &Type{kind: KindElementReference}
	InferredProperty = &Type{kind: KindInferredProperty}
	InferredCallback = &Type{kind: KindInferredCallback}

	// Float32 is the default numeric type with no unit, e.g. the result of
	// `1 + 2` or any arithmetic whose operands carry no unit.
	Float32 = &Type{kind: KindNumber, unit: Unit{}}
	// Int32 is a plain unitless integer; numeric literals without a decimal
	// point and without a unit suffix carry this type until promoted.
	Int32 = &Type{kind: KindNumber, unit: Unit{}, unitKindInt: true}
)

// NumberOf returns the numeric Type carrying the given unit.
func NumberOf(u Unit) *Type {
	if u.isZero() {
		return Float32
	}
	return &Type{kind: KindNumber, unit: u}
}

// Unit returns the unit of a KindNumber type, or the zero Unit otherwise.
func (t *Type) Unit() Unit {
	if t == nil || t.kind != KindNumber {
		return Unit{}
	}
	return t.unit
}

// ArrayOf returns the Array<elem> type.
func ArrayOf(elem *Type) *Type {
	if elem == nil {
		elem = Void
	}
	return &Type{kind: KindArray, elem: elem}
}

// Elem returns the element type of a KindArray type, or nil otherwise.
func (t *Type) Elem() *Type {
	if t == nil || t.kind != KindArray {
		return nil
	}
	return t.elem
}

// StructOf returns the Struct type with the given ordered fields.
func StructOf(fields *Fields) *Type {
	if fields == nil {
		fields = NewFields()
	}
	return &Type{kind: KindStruct, fields: fields}
}

// Fields returns the field table of a KindStruct type, or nil otherwise.
func (t *Type) Fields() *Fields {
	if t == nil || t.kind != KindStruct {
		return nil
	}
	return t.fields
}

// EnumerationOf returns the Enumeration type for the given declaration.
func EnumerationOf(e *Enumeration) *Type {
	return &Type{kind: KindEnumeration, enum: e}
}

// EnumInfo returns the Enumeration payload of a KindEnumeration type.
func (t *Type) EnumInfo() *Enumeration {
	if t == nil || t.kind != KindEnumeration {
		return nil
	}
	return t.enum
}

// CallbackOf returns the Callback{args, ret} type.
func CallbackOf(args []*Type, ret *Type) *Type {
	if ret == nil {
		ret = Void
	}
	return &Type{kind: KindCallback, args: args, ret: ret}
}

// FunctionOf returns the Function{args, ret} type.
func FunctionOf(args []*Type, ret *Type) *Type {
	if ret == nil {
		ret = Void
	}
	return &Type{kind: KindFunction, args: args, ret: ret}
}

// Args returns the argument types of a Callback or Function type.
func (t *Type) Args() []*Type {
	if t == nil || (t.kind != KindCallback && t.kind != KindFunction) {
		return nil
	}
	return t.args
}

// Ret returns the return type of a Callback or Function type.
func (t *Type) Ret() *Type {
	if t == nil || (t.kind != KindCallback && t.kind != KindFunction) {
		return nil
	}
	return t.ret
}

// UnitProductOf returns the UnitProduct type for the given factors. Terms
// with a zero power are dropped; if every term cancels, the unitless
// Float32 type is returned instead (a UnitProduct with no units left is
// just a number).
func UnitProductOf(terms []UnitTerm) *Type {
	kept := make([]UnitTerm, 0, len(terms))
	for _, tm := range terms {
		if tm.Pow != 0 {
			kept = append(kept, tm)
		}
	}
	if len(kept) == 0 {
		return Float32
	}
	return &Type{kind: KindUnitProduct, unitProduct: kept}
}

// UnitProductTerms returns the factors of a KindUnitProduct type.
func (t *Type) UnitProductTerms() []UnitTerm {
	if t == nil || t.kind != KindUnitProduct {
		return nil
	}
	return t.unitProduct
}

// IsInt reports whether t is the unitless Int32 type.
func (t *Type) IsInt() bool {
	return t.Kind() == KindNumber && t.unit.isZero() && t.unitKindInt
}

// IsInvalid reports whether t is the Invalid type (including a nil Type).
func (t *Type) IsInvalid() bool {
	return t.Kind() == KindInvalid
}

// String renders a human-readable (diagnostic-facing) description of t.
func (t *Type) String() string {
	if t == nil {
		return "invalid"
	}
	switch t.kind {
	case KindNumber:
		if t.unit.isZero() {
			if t.unitKindInt {
				return "int"
			}
			return "float"
		}
		return fmt.Sprintf("number<%s>", t.unit)
	case KindArray:
		return fmt.Sprintf("[%s]", t.elem)
	case KindStruct:
		return fmt.Sprintf("struct%s", t.fields.String())
	case KindEnumeration:
		if t.enum != nil {
			return "enum " + t.enum.Name
		}
		return "enum"
	case KindCallback:
		return fmt.Sprintf("callback(%s)->%s", argString(t.args), t.ret)
	case KindFunction:
		return fmt.Sprintf("function(%s)->%s", argString(t.args), t.ret)
	case KindUnitProduct:
		s := ""
		for i, term := range t.unitProduct {
			if i > 0 {
				s += "*"
			}
			s += fmt.Sprintf("%s^%d", term.Unit, term.Pow)
		}
		return s
	default:
		return t.kind.String()
	}
}

func argString(args []*Type) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s
}
