package ir

import (
	"fmt"
	"math"
)

// InstID is a stable index into a Program's instruction arena.
type InstID uint32

// ValueKind tags the variants of Value.
type ValueKind uint8

const (
	// ValueEmpty is the absent operand (for example, no offset).
	ValueEmpty ValueKind = iota

	// ValueImmU32 is an immediate 32-bit unsigned scalar.
	ValueImmU32

	// ValueImmF32 is an immediate 32-bit float scalar.
	ValueImmF32

	// ValueInst references the instruction that produces the operand.
	ValueInst
)

// Value is an instruction operand: empty, an immediate scalar, or a
// reference to a producing instruction by arena index.
type Value struct {
	kind ValueKind
	bits uint32
	inst InstID
}

// Empty returns the absent operand.
func Empty() Value {
	return Value{kind: ValueEmpty}
}

// ImmU32 returns an immediate unsigned scalar operand.
func ImmU32(v uint32) Value {
	return Value{kind: ValueImmU32, bits: v}
}

// ImmF32 returns an immediate float scalar operand.
func ImmF32(v float32) Value {
	return Value{kind: ValueImmF32, bits: math.Float32bits(v)}
}

// Ref returns an operand referencing the instruction at id.
func Ref(id InstID) Value {
	return Value{kind: ValueInst, inst: id}
}

// Kind returns the value's variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsEmpty reports whether the operand is absent.
func (v Value) IsEmpty() bool { return v.kind == ValueEmpty }

// IsImmediate reports whether the operand is an immediate scalar.
func (v Value) IsImmediate() bool {
	return v.kind == ValueImmU32 || v.kind == ValueImmF32
}

// U32 returns the immediate unsigned value. It panics if the value is not
// an immediate U32; mixing up operand kinds is a defect in the caller, not
// a recoverable condition.
func (v Value) U32() uint32 {
	if v.kind != ValueImmU32 {
		panic(fmt.Sprintf("ir: U32 of %v value", v.kind))
	}
	return v.bits
}

// F32 returns the immediate float value. It panics if the value is not an
// immediate F32.
func (v Value) F32() float32 {
	if v.kind != ValueImmF32 {
		panic(fmt.Sprintf("ir: F32 of %v value", v.kind))
	}
	return math.Float32frombits(v.bits)
}

// Inst returns the referenced instruction index. It panics if the value is
// not a reference.
func (v Value) Inst() InstID {
	if v.kind != ValueInst {
		panic(fmt.Sprintf("ir: Inst of %v value", v.kind))
	}
	return v.inst
}

// String returns a human-readable value kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "Empty"
	case ValueImmU32:
		return "ImmU32"
	case ValueImmF32:
		return "ImmF32"
	case ValueInst:
		return "Inst"
	default:
		return "Unknown"
	}
}
