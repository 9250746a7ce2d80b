// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gogpu/texlower/ir"
)

func drefImplicitProgram(texType ir.TextureType, offset ir.Value) (*ir.Program, ir.InstID) {
	p := ir.NewProgram()
	uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	p.Append(ir.OpImageSampleDrefImplicitLod,
		ir.TextureInstInfo{Type: texType},
		ir.Empty(), ir.Ref(uv), ir.ImmF32(0.5), ir.Empty(), offset)
	return p, uv
}

func drefExplicitProgram(texType ir.TextureType, offset ir.Value) (*ir.Program, ir.InstID) {
	p := ir.NewProgram()
	uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	p.Append(ir.OpImageSampleDrefExplicitLod,
		ir.TextureInstInfo{Type: texType},
		ir.Empty(), ir.Ref(uv), ir.ImmF32(0.5), ir.ImmF32(1), offset)
	return p, uv
}

func lowerDref(t *testing.T, p *ir.Program, uv ir.InstID, stage ir.ShaderStage, shadowLod bool) *Context {
	t.Helper()
	opts := testOptions()
	opts.Stage = stage
	opts.Profile.TextureShadowLod = shadowLod
	ctx := NewContext(p, opts)
	ctx.Define(uv, VarF32x4)
	if err := ctx.Lower(); err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	return ctx
}

// =============================================================================
// Test: depth-compare packing (3- vs 4-component)
// =============================================================================

func TestDrefImplicitFragment(t *testing.T) {
	tests := []struct {
		texType ir.TextureType
		want    string
	}{
		// 3-component packing
		{ir.Color1D, "f_0=texture(tex0,vec3(f4_0,0.5));"},
		{ir.Color2D, "f_0=texture(tex0,vec3(f4_0,0.5));"},
		// 4-component packing
		{ir.ColorArray2D, "f_0=texture(tex0,vec4(f4_0,0.5));"},
		{ir.ColorCube, "f_0=texture(tex0,vec4(f4_0,0.5));"},
		// Cube arrays carry the reference as a separate argument.
		{ir.ColorArrayCube, "f_0=texture(tex0,vec4(f4_0),0.5);"},
	}
	for _, tt := range tests {
		t.Run(tt.texType.String(), func(t *testing.T) {
			p, uv := drefImplicitProgram(tt.texType, ir.Empty())
			ctx := lowerDref(t, p, uv, ir.StageFragment, true)
			wantStatements(t, ctx, tt.want)
		})
	}
}

func TestDrefImplicitNonFragmentForcesLodZero(t *testing.T) {
	p, uv := drefImplicitProgram(ir.Color2D, ir.Empty())
	ctx := lowerDref(t, p, uv, ir.StageVertex, true)
	wantStatements(t, ctx, "f_0=textureLod(tex0,vec3(f4_0,0.5),0.0);")
}

func TestDrefImplicitOffset(t *testing.T) {
	p, uv := drefImplicitProgram(ir.Color2D, ir.ImmU32(3))
	ctx := lowerDref(t, p, uv, ir.StageFragment, true)
	wantStatements(t, ctx, "f_0=textureOffset(tex0,vec3(f4_0,0.5),int(3));")

	p, uv = drefImplicitProgram(ir.Color2D, ir.ImmU32(3))
	ctx = lowerDref(t, p, uv, ir.StageVertex, true)
	wantStatements(t, ctx, "f_0=textureLodOffset(tex0,vec3(f4_0,0.5),0.0,int(3));")
}

func TestDrefExplicit(t *testing.T) {
	tests := []struct {
		texType ir.TextureType
		want    string
	}{
		{ir.Color2D, "f_0=textureLod(tex0,vec3(f4_0,0.5),1.0);"},
		{ir.ColorCube, "f_0=textureLod(tex0,vec4(f4_0,0.5),1.0);"},
		{ir.ColorArrayCube, "f_0=textureLod(tex0,f4_0,0.5,1.0);"},
	}
	for _, tt := range tests {
		t.Run(tt.texType.String(), func(t *testing.T) {
			p, uv := drefExplicitProgram(tt.texType, ir.Empty())
			ctx := lowerDref(t, p, uv, ir.StageFragment, true)
			wantStatements(t, ctx, tt.want)
		})
	}
}

func TestDrefExplicitOffset(t *testing.T) {
	p, uv := drefExplicitProgram(ir.Color2D, ir.ImmU32(3))
	ctx := lowerDref(t, p, uv, ir.StageFragment, true)
	wantStatements(t, ctx, "f_0=textureLodOffset(tex0,vec3(f4_0,0.5),1.0,int(3));")

	p, uv = drefExplicitProgram(ir.ColorArrayCube, ir.ImmU32(3))
	ctx = lowerDref(t, p, uv, ir.StageFragment, true)
	wantStatements(t, ctx, "f_0=textureLodOffset(tex0,f4_0,0.5,1.0,int(3));")
}

// =============================================================================
// Test: shadow-LOD extension fallback
// =============================================================================

// TestDrefGradientFallback: without GL_EXT_texture_shadow_lod, affected
// dimensionalities substitute a zero-derivative textureGrad.
func TestDrefGradientFallback(t *testing.T) {
	// Implicit LOD falls back outside the fragment stage only.
	p, uv := drefImplicitProgram(ir.ColorCube, ir.Empty())
	ctx := lowerDref(t, p, uv, ir.StageVertex, false)
	wantStatements(t, ctx, "f_0=textureGrad(tex0,vec4(f4_0,0.5),vec3(0),vec3(0));")

	// Explicit LOD falls back in every stage.
	p, uv = drefExplicitProgram(ir.ColorCube, ir.Empty())
	ctx = lowerDref(t, p, uv, ir.StageFragment, false)
	wantStatements(t, ctx, "f_0=textureGrad(tex0,vec4(f4_0,0.5),vec3(0),vec3(0));")

	// 2D arrays use two-component derivatives.
	p, uv = drefExplicitProgram(ir.ColorArray2D, ir.Empty())
	ctx = lowerDref(t, p, uv, ir.StageFragment, false)
	wantStatements(t, ctx, "f_0=textureGrad(tex0,vec4(f4_0,0.5),vec2(0),vec2(0));")
}

// TestDrefFragmentImplicitNoFallback: the implicit-LOD fragment path never
// needs the extension.
func TestDrefFragmentImplicitNoFallback(t *testing.T) {
	p, uv := drefImplicitProgram(ir.ColorCube, ir.Empty())
	ctx := lowerDref(t, p, uv, ir.StageFragment, false)
	wantStatements(t, ctx, "f_0=texture(tex0,vec4(f4_0,0.5));")
}

// TestDrefArrayCubeFallbackStub: cube arrays have no gradient form; the
// fallback binds a constant zero and emits no sampling call.
func TestDrefArrayCubeFallbackStub(t *testing.T) {
	p, uv := drefExplicitProgram(ir.ColorArrayCube, ir.Empty())
	ctx := lowerDref(t, p, uv, ir.StageFragment, false)
	wantStatements(t, ctx, "f_0=0.0f;")

	p, uv = drefImplicitProgram(ir.ColorArrayCube, ir.Empty())
	ctx = lowerDref(t, p, uv, ir.StageVertex, false)
	wantStatements(t, ctx, "f_0=0.0f;")
}

// TestDrefUnaffectedDimensionality: plain 2D shadow sampling never takes
// the fallback.
func TestDrefUnaffectedDimensionality(t *testing.T) {
	p, uv := drefExplicitProgram(ir.Color2D, ir.Empty())
	ctx := lowerDref(t, p, uv, ir.StageVertex, false)
	wantStatements(t, ctx, "f_0=textureLod(tex0,vec3(f4_0,0.5),1.0);")
}

// =============================================================================
// Test: illegal modifier combinations
// =============================================================================

func TestDrefIllegalModifiers(t *testing.T) {
	tests := []struct {
		name string
		op   ir.Opcode
		info ir.TextureInstInfo
	}{
		{"implicit bias", ir.OpImageSampleDrefImplicitLod,
			ir.TextureInstInfo{Type: ir.Color2D, HasBias: true}},
		{"implicit lod clamp", ir.OpImageSampleDrefImplicitLod,
			ir.TextureInstInfo{Type: ir.Color2D, HasLodClamp: true}},
		{"explicit bias", ir.OpImageSampleDrefExplicitLod,
			ir.TextureInstInfo{Type: ir.Color2D, HasBias: true}},
		{"explicit lod clamp", ir.OpImageSampleDrefExplicitLod,
			ir.TextureInstInfo{Type: ir.Color2D, HasLodClamp: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ir.NewProgram()
			uv := p.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
			p.Append(tt.op, tt.info,
				ir.Empty(), ir.Ref(uv), ir.ImmF32(0.5), ir.ImmF32(1), ir.Empty())

			ctx := NewContext(p, testOptions())
			ctx.Define(uv, VarF32x4)

			wantErrorKind(t, ctx.Lower(), ErrUnsupportedFeature)
			wantStatements(t, ctx)
		})
	}
}
