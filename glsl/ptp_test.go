// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gogpu/texlower/ir"
)

// =============================================================================
// Test: programmable texel pattern (four-tap gather offsets)
// =============================================================================

func ptpProgram(t *testing.T, aOp, bOp ir.Opcode, aArgs, bArgs []ir.Value) (*ir.Program, ir.InstID) {
	t.Helper()
	p := ir.NewProgram()
	uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	a := p.Append(aOp, ir.TextureInstInfo{}, aArgs...)
	b := p.Append(bOp, ir.TextureInstInfo{}, bArgs...)
	p.Append(ir.OpImageGather,
		ir.TextureInstInfo{Type: ir.Color2D, GatherComponent: 0},
		ir.Empty(), ir.Ref(uv), ir.Ref(a), ir.Ref(b))
	return p, uv
}

func immX4(v0, v1, v2, v3 uint32) []ir.Value {
	return []ir.Value{ir.ImmU32(v0), ir.ImmU32(v1), ir.ImmU32(v2), ir.ImmU32(v3)}
}

// TestPtpImmediatePairs: operand A supplies the X components in order,
// operand B the Y components.
func TestPtpImmediatePairs(t *testing.T) {
	p, uv := ptpProgram(t,
		ir.OpCompositeConstructU32x4, ir.OpCompositeConstructU32x4,
		immX4(1, 2, 3, 4), immX4(5, 6, 7, 8))

	ctx := NewContext(p, testOptions())
	ctx.Define(uv, VarF32x4)

	if err := ctx.Lower(); err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	wantStatements(t, ctx,
		"f4_1=textureGatherOffsets(tex0,f4_0,ivec2[](ivec2(1,5),ivec2(2,6),ivec2(3,7),ivec2(4,8)),int(0));")
}

// TestPtpMismatchedProducers: immediate operands with different producer
// opcodes are malformed IR.
func TestPtpMismatchedProducers(t *testing.T) {
	p, uv := ptpProgram(t,
		ir.OpCompositeConstructU32x4, ir.OpCompositeConstructU32x3,
		immX4(1, 2, 3, 4),
		[]ir.Value{ir.ImmU32(5), ir.ImmU32(6), ir.ImmU32(7)})

	ctx := NewContext(p, testOptions())
	ctx.Define(uv, VarF32x4)

	err := ctx.Lower()
	e := wantErrorKind(t, err, ErrInvariantViolation)
	if !e.IsInvariantViolation() {
		t.Error("IsInvariantViolation() = false")
	}
}

// TestPtpNonImmediateStub: any non-immediate component yields the fixed
// placeholder array, regardless of the actual values.
func TestPtpNonImmediateStub(t *testing.T) {
	p := ir.NewProgram()
	uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	dyn := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	a := p.Append(ir.OpCompositeConstructU32x4, ir.TextureInstInfo{},
		ir.ImmU32(1), ir.ImmU32(2), ir.ImmU32(3), ir.Ref(dyn))
	b := p.Append(ir.OpCompositeConstructU32x4, ir.TextureInstInfo{},
		ir.ImmU32(5), ir.ImmU32(6), ir.ImmU32(7), ir.ImmU32(8))
	p.Append(ir.OpImageGather,
		ir.TextureInstInfo{Type: ir.Color2D, GatherComponent: 0},
		ir.Empty(), ir.Ref(uv), ir.Ref(a), ir.Ref(b))

	ctx := NewContext(p, testOptions())
	ctx.Define(uv, VarF32x4)
	ctx.Define(dyn, VarU32x4)

	if err := ctx.Lower(); err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	wantStatements(t, ctx,
		"f4_1=textureGatherOffsets(tex0,f4_0,ivec2[](ivec2(0), ivec2(1), ivec2(2), ivec2(3)),int(0));")
}

// TestPtpNonImmediateStubSkipsProducerCheck: the stub path runs before the
// producer check, matching the documented stub policy.
func TestPtpNonImmediateStubSkipsProducerCheck(t *testing.T) {
	p := ir.NewProgram()
	uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	dyn := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	a := p.Append(ir.OpCompositeConstructU32x3, ir.TextureInstInfo{},
		ir.ImmU32(1), ir.ImmU32(2), ir.Ref(dyn))
	b := p.Append(ir.OpCompositeConstructU32x4, ir.TextureInstInfo{},
		ir.ImmU32(5), ir.ImmU32(6), ir.ImmU32(7), ir.ImmU32(8))
	p.Append(ir.OpImageGather,
		ir.TextureInstInfo{Type: ir.Color2D, GatherComponent: 0},
		ir.Empty(), ir.Ref(uv), ir.Ref(a), ir.Ref(b))

	ctx := NewContext(p, testOptions())
	ctx.Define(uv, VarF32x4)
	ctx.Define(dyn, VarU32x4)

	if err := ctx.Lower(); err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	wantStatements(t, ctx,
		"f4_1=textureGatherOffsets(tex0,f4_0,ivec2[](ivec2(0), ivec2(1), ivec2(2), ivec2(3)),int(0));")
}
