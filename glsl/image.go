// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/texlower/ir"
)

// castToIntVec casts a floating coordinate expression to the signed integer
// vector width used by the sparse sampling paths.
func castToIntVec(value string, info ir.TextureInstInfo) (string, error) {
	switch info.Type {
	case ir.Color1D, ir.Buffer:
		return fmt.Sprintf("int(%s)", value), nil
	case ir.ColorArray1D, ir.Color2D, ir.ColorArray2D:
		return fmt.Sprintf("ivec2(%s)", value), nil
	case ir.Color3D, ir.ColorCube:
		return fmt.Sprintf("ivec3(%s)", value), nil
	case ir.ColorArrayCube:
		return fmt.Sprintf("ivec4(%s)", value), nil
	default:
		return "", unsupportedf("offset cast for %v", info.Type)
	}
}

// fetchCastToInt casts a coordinate expression to the signed integer vector
// width required by texel fetch and image load/store. It differs from
// castToIntVec on ColorArray2D, which fetches take as ivec3.
func fetchCastToInt(value string, info ir.TextureInstInfo) (string, error) {
	switch info.Type {
	case ir.Color1D, ir.Buffer:
		return fmt.Sprintf("int(%s)", value), nil
	case ir.ColorArray1D, ir.Color2D:
		return fmt.Sprintf("ivec2(%s)", value), nil
	case ir.ColorArray2D, ir.Color3D, ir.ColorCube:
		return fmt.Sprintf("ivec3(%s)", value), nil
	case ir.ColorArrayCube:
		return fmt.Sprintf("ivec4(%s)", value), nil
	default:
		return "", unsupportedf("offset cast for %v", info.Type)
	}
}

// needsShadowLodExt reports whether depth-compare sampling of the type
// requires GL_EXT_texture_shadow_lod.
func needsShadowLodExt(t ir.TextureType) bool {
	switch t {
	case ir.ColorArray2D, ir.ColorCube, ir.ColorArrayCube:
		return true
	default:
		return false
	}
}

// offsetVec returns the source text for an integer offset operand. An
// immediate scalar and a fully-immediate vector construction fold to
// literals without materializing a variable; anything else consumes the
// variable bound to the producing instruction.
func (c *Context) offsetVec(offset ir.Value) (string, error) {
	if offset.IsImmediate() {
		return fmt.Sprintf("int(%d)", offset.U32()), nil
	}
	id := offset.Inst()
	inst := c.program.Inst(id)
	if c.program.AllArgsImmediate(id) {
		switch inst.Op {
		case ir.OpCompositeConstructU32x2:
			return fmt.Sprintf("ivec2(%d,%d)", inst.Args[0].U32(), inst.Args[1].U32()), nil
		case ir.OpCompositeConstructU32x3:
			return fmt.Sprintf("ivec3(%d,%d,%d)",
				inst.Args[0].U32(), inst.Args[1].U32(), inst.Args[2].U32()), nil
		case ir.OpCompositeConstructU32x4:
			return fmt.Sprintf("ivec4(%d,%d,%d,%d)",
				inst.Args[0].U32(), inst.Args[1].U32(), inst.Args[2].U32(), inst.Args[3].U32()), nil
		}
	}
	return c.consume(offset)
}

// ptpStub is the fixed placeholder emitted when programmable texel pattern
// offsets are not fully immediate. A deliberate precision loss, kept
// byte-stable because golden tests compare against it.
const ptpStub = "ivec2[](ivec2(0), ivec2(1), ivec2(2), ivec2(3))"

// ptpOffsets builds the four-tap offset array for multi-texel gather.
// Operand a supplies the X components in order, operand b the Y components.
func (c *Context) ptpOffsets(a, b ir.Value) (string, error) {
	ai, bi := a.Inst(), b.Inst()
	if !c.program.AllArgsImmediate(ai) || !c.program.AllArgsImmediate(bi) {
		return ptpStub, nil
	}
	x, y := c.program.Inst(ai), c.program.Inst(bi)
	if x.Op != y.Op || x.Op != ir.OpCompositeConstructU32x4 {
		return "", invariantf("invalid PTP arguments: %v and %v", x.Op, y.Op)
	}
	return fmt.Sprintf("ivec2[](ivec2(%d,%d),ivec2(%d,%d),ivec2(%d,%d),ivec2(%d,%d))",
		x.Args[0].U32(), y.Args[0].U32(),
		x.Args[1].U32(), y.Args[1].U32(),
		x.Args[2].U32(), y.Args[2].U32(),
		x.Args[3].U32(), y.Args[3].U32()), nil
}

// Lower lowers every instruction in program order, appending one statement
// per texture operation to the context. The first error aborts the
// remainder of the stream; statements already emitted stay valid.
func (c *Context) Lower() error {
	for id := 0; id < c.program.Len(); id++ {
		if err := c.lowerInst(ir.InstID(id)); err != nil {
			return err
		}
	}
	return nil
}

// instArgs validates the operand count of the instruction at id.
func (c *Context) instArgs(id ir.InstID, want int) ([]ir.Value, error) {
	inst := c.program.Inst(id)
	if len(inst.Args) != want {
		return nil, invariantf("%v: %d operands, want %d", inst.Op, len(inst.Args), want)
	}
	return inst.Args, nil
}

// consumeOpt is consume for operands that may legitimately be absent.
func (c *Context) consumeOpt(v ir.Value) (string, error) {
	if v.IsEmpty() {
		return "", nil
	}
	return c.consume(v)
}

// lowerInst dispatches one instruction. Every opcode is matched explicitly;
// an opcode this switch does not know is malformed input.
//
// Operand layouts (index operand first, unused for bound resources):
//
//	SampleImplicitLod      index, coords, bias, offset
//	SampleExplicitLod      index, coords, lod, offset
//	SampleDrefImplicitLod  index, coords, dref, bias, offset
//	SampleDrefExplicitLod  index, coords, dref, lod, offset
//	Gather                 index, coords, offset, offset2
//	GatherDref             index, coords, offset, offset2, dref
//	Fetch                  index, coords, offset, lod, ms
//	QueryDimensions        index, lod
//	QueryLod               index, coords
//	Gradient               index, coords, derivatives, offset, lodclamp
//	Read                   index, coords
//	Write                  index, coords, color
//
//nolint:gocyclo // One arm per opcode keeps the dispatch closed.
func (c *Context) lowerInst(id ir.InstID) error {
	switch op := c.program.Inst(id).Op; op {
	case ir.OpCompositeConstructU32x2, ir.OpCompositeConstructU32x3, ir.OpCompositeConstructU32x4:
		// Lowered upstream; referenced here only as offset producers.
		return nil

	case ir.OpGetSparseFromOp:
		// Consumed by the instruction it is associated with.
		return nil

	case ir.OpImageSampleImplicitLod:
		args, err := c.instArgs(id, 4)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		bias, err := c.consumeOpt(args[2])
		if err != nil {
			return err
		}
		return c.emitImageSampleImplicitLod(id, coords, bias, args[3])

	case ir.OpImageSampleExplicitLod:
		args, err := c.instArgs(id, 4)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		lod, err := c.consume(args[2])
		if err != nil {
			return err
		}
		return c.emitImageSampleExplicitLod(id, coords, lod, args[3])

	case ir.OpImageSampleDrefImplicitLod:
		args, err := c.instArgs(id, 5)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		dref, err := c.consume(args[2])
		if err != nil {
			return err
		}
		return c.emitImageSampleDrefImplicitLod(id, coords, dref, args[4])

	case ir.OpImageSampleDrefExplicitLod:
		args, err := c.instArgs(id, 5)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		dref, err := c.consume(args[2])
		if err != nil {
			return err
		}
		lod, err := c.consume(args[3])
		if err != nil {
			return err
		}
		return c.emitImageSampleDrefExplicitLod(id, coords, dref, lod, args[4])

	case ir.OpImageGather:
		args, err := c.instArgs(id, 4)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		return c.emitImageGather(id, coords, args[2], args[3])

	case ir.OpImageGatherDref:
		args, err := c.instArgs(id, 5)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		dref, err := c.consume(args[4])
		if err != nil {
			return err
		}
		return c.emitImageGatherDref(id, coords, args[2], args[3], dref)

	case ir.OpImageFetch:
		args, err := c.instArgs(id, 5)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		offset, err := c.consumeOpt(args[2])
		if err != nil {
			return err
		}
		lod, err := c.consumeOpt(args[3])
		if err != nil {
			return err
		}
		return c.emitImageFetch(id, coords, offset, lod)

	case ir.OpImageQueryDimensions:
		args, err := c.instArgs(id, 2)
		if err != nil {
			return err
		}
		lod, err := c.consumeOpt(args[1])
		if err != nil {
			return err
		}
		return c.emitImageQueryDimensions(id, lod)

	case ir.OpImageQueryLod:
		args, err := c.instArgs(id, 2)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		return c.emitImageQueryLod(id, coords)

	case ir.OpImageGradient:
		args, err := c.instArgs(id, 5)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		return c.emitImageGradient(id, coords, args[2], args[3])

	case ir.OpImageRead:
		args, err := c.instArgs(id, 2)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		return c.emitImageRead(id, coords)

	case ir.OpImageWrite:
		args, err := c.instArgs(id, 3)
		if err != nil {
			return err
		}
		coords, err := c.consume(args[1])
		if err != nil {
			return err
		}
		color, err := c.consume(args[2])
		if err != nil {
			return err
		}
		return c.emitImageWrite(id, coords, color)

	case ir.OpBindlessImageSampleImplicitLod:
		return c.emitBindlessImageSampleImplicitLod()
	case ir.OpBindlessImageSampleExplicitLod:
		return c.emitBindlessImageSampleExplicitLod()
	case ir.OpBindlessImageSampleDrefImplicitLod:
		return c.emitBindlessImageSampleDrefImplicitLod()
	case ir.OpBindlessImageSampleDrefExplicitLod:
		return c.emitBindlessImageSampleDrefExplicitLod()
	case ir.OpBindlessImageGather:
		return c.emitBindlessImageGather()
	case ir.OpBindlessImageGatherDref:
		return c.emitBindlessImageGatherDref()
	case ir.OpBindlessImageFetch:
		return c.emitBindlessImageFetch()
	case ir.OpBindlessImageQueryDimensions:
		return c.emitBindlessImageQueryDimensions()
	case ir.OpBindlessImageQueryLod:
		return c.emitBindlessImageQueryLod()
	case ir.OpBindlessImageGradient:
		return c.emitBindlessImageGradient()
	case ir.OpBindlessImageRead:
		return c.emitBindlessImageRead()
	case ir.OpBindlessImageWrite:
		return c.emitBindlessImageWrite()

	case ir.OpBoundImageSampleImplicitLod:
		return c.emitBoundImageSampleImplicitLod()
	case ir.OpBoundImageSampleExplicitLod:
		return c.emitBoundImageSampleExplicitLod()
	case ir.OpBoundImageSampleDrefImplicitLod:
		return c.emitBoundImageSampleDrefImplicitLod()
	case ir.OpBoundImageSampleDrefExplicitLod:
		return c.emitBoundImageSampleDrefExplicitLod()
	case ir.OpBoundImageGather:
		return c.emitBoundImageGather()
	case ir.OpBoundImageGatherDref:
		return c.emitBoundImageGatherDref()
	case ir.OpBoundImageFetch:
		return c.emitBoundImageFetch()
	case ir.OpBoundImageQueryDimensions:
		return c.emitBoundImageQueryDimensions()
	case ir.OpBoundImageQueryLod:
		return c.emitBoundImageQueryLod()
	case ir.OpBoundImageGradient:
		return c.emitBoundImageGradient()
	case ir.OpBoundImageRead:
		return c.emitBoundImageRead()
	case ir.OpBoundImageWrite:
		return c.emitBoundImageWrite()

	default:
		return invariantf("unhandled opcode %v", op)
	}
}

func (c *Context) emitImageSampleImplicitLod(id ir.InstID, coords, biasLC string, offset ir.Value) error {
	info := c.program.Inst(id).Info
	if info.HasLodClamp {
		return unsupportedf("ImageSampleImplicitLod: LOD clamp samples")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	bias := ""
	if info.HasBias {
		bias = "," + biasLC
	}
	texel := c.vars.define(id, VarF32x4)
	sparse, fused := c.program.ClaimSparse(id)
	if !fused {
		if !offset.IsEmpty() {
			offsetStr, err := c.offsetVec(offset)
			if err != nil {
				return err
			}
			if c.stage == ir.StageFragment {
				c.add("%s=textureOffset(%s,%s,%s%s);", texel, texture, coords, offsetStr, bias)
			} else {
				c.add("%s=textureLodOffset(%s,%s,0.0,%s);", texel, texture, coords, offsetStr)
			}
		} else {
			if c.stage == ir.StageFragment {
				c.add("%s=texture(%s,%s%s);", texel, texture, coords, bias)
			} else {
				c.add("%s=textureLod(%s,%s,0.0);", texel, texture, coords)
			}
		}
		return nil
	}
	// TODO: query sparse texel extension support instead of assuming it.
	resident := c.vars.define(sparse, VarU1)
	if !offset.IsEmpty() {
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		c.add("%s=sparseTexelsResidentARB(sparseTextureOffsetARB(%s,%s,%s,%s%s));",
			resident, texture, coords, offsetStr, texel, bias)
	} else {
		c.add("%s=sparseTexelsResidentARB(sparseTextureARB(%s,%s,%s%s));",
			resident, texture, coords, texel, bias)
	}
	return nil
}

func (c *Context) emitImageSampleExplicitLod(id ir.InstID, coords, lodLC string, offset ir.Value) error {
	info := c.program.Inst(id).Info
	if info.HasBias {
		return unsupportedf("ImageSampleExplicitLod: bias texture samples")
	}
	if info.HasLodClamp {
		return unsupportedf("ImageSampleExplicitLod: LOD clamp samples")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	texel := c.vars.define(id, VarF32x4)
	sparse, fused := c.program.ClaimSparse(id)
	if !fused {
		if !offset.IsEmpty() {
			offsetStr, err := c.offsetVec(offset)
			if err != nil {
				return err
			}
			c.add("%s=textureLodOffset(%s,%s,%s,%s);", texel, texture, coords, lodLC, offsetStr)
		} else {
			c.add("%s=textureLod(%s,%s,%s);", texel, texture, coords, lodLC)
		}
		return nil
	}
	resident := c.vars.define(sparse, VarU1)
	if !offset.IsEmpty() {
		cast, err := castToIntVec(coords, info)
		if err != nil {
			return err
		}
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		c.add("%s=sparseTexelsResidentARB(sparseTexelFetchOffsetARB(%s,%s,int(%s),%s,%s));",
			resident, texture, cast, lodLC, offsetStr, texel)
	} else {
		c.add("%s=sparseTexelsResidentARB(sparseTextureLodARB(%s,%s,%s,%s));",
			resident, texture, coords, lodLC, texel)
	}
	return nil
}

func (c *Context) emitImageSampleDrefImplicitLod(id ir.InstID, coords, dref string, offset ir.Value) error {
	info := c.program.Inst(id).Info
	if _, fused := c.program.ClaimSparse(id); fused {
		return unsupportedf("ImageSampleDrefImplicitLod: sparse texture samples")
	}
	if info.HasBias {
		return unsupportedf("ImageSampleDrefImplicitLod: bias texture samples")
	}
	if info.HasLodClamp {
		return unsupportedf("ImageSampleDrefImplicitLod: LOD clamp samples")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	needsShadowExt := needsShadowLodExt(info.Type)
	cast := "vec3"
	if needsShadowExt {
		cast = "vec4"
	}
	useGrad := !c.profile.TextureShadowLod && c.stage != ir.StageFragment && needsShadowExt
	result := c.vars.define(id, VarF32)
	if useGrad {
		// The device lacks GL_EXT_texture_shadow_lod; approximate with a
		// zero-derivative textureGrad. Cube arrays have no gradient form
		// at all, so they bind a constant zero instead.
		if info.Type == ir.ColorArrayCube {
			c.add("%s=0.0f;", result)
			return nil
		}
		dCast := "vec3"
		if info.Type == ir.ColorArray2D {
			dCast = "vec2"
		}
		c.add("%s=textureGrad(%s,%s(%s,%s),%s(0),%s(0));", result, texture, cast, coords, dref, dCast, dCast)
		return nil
	}
	if !offset.IsEmpty() {
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		if c.stage == ir.StageFragment {
			c.add("%s=textureOffset(%s,%s(%s,%s),%s);", result, texture, cast, coords, dref, offsetStr)
		} else {
			c.add("%s=textureLodOffset(%s,%s(%s,%s),0.0,%s);", result, texture, cast, coords, dref, offsetStr)
		}
	} else {
		if c.stage == ir.StageFragment {
			if info.Type == ir.ColorArrayCube {
				c.add("%s=texture(%s,vec4(%s),%s);", result, texture, coords, dref)
			} else {
				c.add("%s=texture(%s,%s(%s,%s));", result, texture, cast, coords, dref)
			}
		} else {
			c.add("%s=textureLod(%s,%s(%s,%s),0.0);", result, texture, cast, coords, dref)
		}
	}
	return nil
}

func (c *Context) emitImageSampleDrefExplicitLod(id ir.InstID, coords, dref, lodLC string, offset ir.Value) error {
	info := c.program.Inst(id).Info
	if _, fused := c.program.ClaimSparse(id); fused {
		return unsupportedf("ImageSampleDrefExplicitLod: sparse texture samples")
	}
	if info.HasBias {
		return unsupportedf("ImageSampleDrefExplicitLod: bias texture samples")
	}
	if info.HasLodClamp {
		return unsupportedf("ImageSampleDrefExplicitLod: LOD clamp samples")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	needsShadowExt := needsShadowLodExt(info.Type)
	useGrad := !c.profile.TextureShadowLod && needsShadowExt
	cast := "vec3"
	if needsShadowExt {
		cast = "vec4"
	}
	result := c.vars.define(id, VarF32)
	if useGrad {
		if info.Type == ir.ColorArrayCube {
			c.add("%s=0.0f;", result)
			return nil
		}
		dCast := "vec3"
		if info.Type == ir.ColorArray2D {
			dCast = "vec2"
		}
		c.add("%s=textureGrad(%s,%s(%s,%s),%s(0),%s(0));", result, texture, cast, coords, dref, dCast, dCast)
		return nil
	}
	if !offset.IsEmpty() {
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		if info.Type == ir.ColorArrayCube {
			c.add("%s=textureLodOffset(%s,%s,%s,%s,%s);", result, texture, coords, dref, lodLC, offsetStr)
		} else {
			c.add("%s=textureLodOffset(%s,%s(%s,%s),%s,%s);", result, texture, cast, coords, dref, lodLC, offsetStr)
		}
	} else {
		if info.Type == ir.ColorArrayCube {
			c.add("%s=textureLod(%s,%s,%s,%s);", result, texture, coords, dref, lodLC)
		} else {
			c.add("%s=textureLod(%s,%s(%s,%s),%s);", result, texture, cast, coords, dref, lodLC)
		}
	}
	return nil
}

func (c *Context) emitImageGather(id ir.InstID, coords string, offset, offset2 ir.Value) error {
	info := c.program.Inst(id).Info
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	texel := c.vars.define(id, VarF32x4)
	sparse, fused := c.program.ClaimSparse(id)
	if !fused {
		if offset.IsEmpty() {
			c.add("%s=textureGather(%s,%s,int(%d));", texel, texture, coords, info.GatherComponent)
			return nil
		}
		if offset2.IsEmpty() {
			offsetStr, err := c.offsetVec(offset)
			if err != nil {
				return err
			}
			c.add("%s=textureGatherOffset(%s,%s,%s,int(%d));",
				texel, texture, coords, offsetStr, info.GatherComponent)
			return nil
		}
		offsets, err := c.ptpOffsets(offset, offset2)
		if err != nil {
			return err
		}
		c.add("%s=textureGatherOffsets(%s,%s,%s,int(%d));",
			texel, texture, coords, offsets, info.GatherComponent)
		return nil
	}
	resident := c.vars.define(sparse, VarU1)
	if offset.IsEmpty() {
		c.add("%s=sparseTexelsResidentARB(sparseTextureGatherARB(%s,%s,%s,int(%d)));",
			resident, texture, coords, texel, info.GatherComponent)
		return nil
	}
	cast, err := castToIntVec(coords, info)
	if err != nil {
		return err
	}
	if offset2.IsEmpty() {
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		c.add("%s=sparseTexelsResidentARB(sparseTextureGatherOffsetARB(%s,%s,%s,%s,int(%d)));",
			resident, texture, cast, offsetStr, texel, info.GatherComponent)
		return nil
	}
	offsets, err := c.ptpOffsets(offset, offset2)
	if err != nil {
		return err
	}
	c.add("%s=sparseTexelsResidentARB(sparseTextureGatherOffsetARB(%s,%s,%s,%s,int(%d)));",
		resident, texture, cast, offsets, texel, info.GatherComponent)
	return nil
}

func (c *Context) emitImageGatherDref(id ir.InstID, coords string, offset, offset2 ir.Value, dref string) error {
	info := c.program.Inst(id).Info
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	texel := c.vars.define(id, VarF32x4)
	sparse, fused := c.program.ClaimSparse(id)
	if !fused {
		if offset.IsEmpty() {
			c.add("%s=textureGather(%s,%s,%s);", texel, texture, coords, dref)
			return nil
		}
		if offset2.IsEmpty() {
			offsetStr, err := c.offsetVec(offset)
			if err != nil {
				return err
			}
			c.add("%s=textureGatherOffset(%s,%s,%s,%s);", texel, texture, coords, dref, offsetStr)
			return nil
		}
		offsets, err := c.ptpOffsets(offset, offset2)
		if err != nil {
			return err
		}
		c.add("%s=textureGatherOffsets(%s,%s,%s,%s);", texel, texture, coords, dref, offsets)
		return nil
	}
	resident := c.vars.define(sparse, VarU1)
	if offset.IsEmpty() {
		c.add("%s=sparseTexelsResidentARB(sparseTextureGatherARB(%s,%s,%s,%s));",
			resident, texture, coords, dref, texel)
		return nil
	}
	cast, err := castToIntVec(coords, info)
	if err != nil {
		return err
	}
	if offset2.IsEmpty() {
		offsetStr, err := c.offsetVec(offset)
		if err != nil {
			return err
		}
		c.add("%s=sparseTexelsResidentARB(sparseTextureGatherOffsetARB(%s,%s,%s,%s,%s));",
			resident, texture, cast, dref, offsetStr, texel)
		return nil
	}
	offsets, err := c.ptpOffsets(offset, offset2)
	if err != nil {
		return err
	}
	c.add("%s=sparseTexelsResidentARB(sparseTextureGatherOffsetARB(%s,%s,%s,%s,%s));",
		resident, texture, cast, dref, offsets, texel)
	return nil
}

func (c *Context) emitImageFetch(id ir.InstID, coords, offset, lod string) error {
	info := c.program.Inst(id).Info
	if info.HasBias {
		return unsupportedf("ImageFetch: bias texture samples")
	}
	if info.HasLodClamp {
		return unsupportedf("ImageFetch: LOD clamp samples")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	sparse, fused := c.program.ClaimSparse(id)
	texel := c.vars.define(id, VarF32x4)
	if !fused {
		if offset != "" {
			coordsCast, err := fetchCastToInt(coords, info)
			if err != nil {
				return err
			}
			offsetCast, err := fetchCastToInt(offset, info)
			if err != nil {
				return err
			}
			c.add("%s=texelFetchOffset(%s,%s,int(%s),%s);", texel, texture, coordsCast, lod, offsetCast)
		} else {
			if info.Type == ir.Buffer {
				c.add("%s=texelFetch(%s,int(%s));", texel, texture, coords)
			} else {
				coordsCast, err := fetchCastToInt(coords, info)
				if err != nil {
					return err
				}
				c.add("%s=texelFetch(%s,%s,int(%s));", texel, texture, coordsCast, lod)
			}
		}
		return nil
	}
	resident := c.vars.define(sparse, VarU1)
	coordsCast, err := castToIntVec(coords, info)
	if err != nil {
		return err
	}
	if offset != "" {
		offsetCast, err := castToIntVec(offset, info)
		if err != nil {
			return err
		}
		c.add("%s=sparseTexelsResidentARB(sparseTexelFetchOffsetARB(%s,%s,int(%s),%s,%s));",
			resident, texture, coordsCast, lod, offsetCast, texel)
	} else {
		c.add("%s=sparseTexelsResidentARB(sparseTexelFetchARB(%s,%s,int(%s),%s));",
			resident, texture, coordsCast, lod, texel)
	}
	return nil
}

func (c *Context) emitImageQueryDimensions(id ir.InstID, lod string) error {
	info := c.program.Inst(id).Info
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	switch info.Type {
	case ir.Color1D:
		result := c.vars.define(id, VarU32x4)
		c.add("%s=uvec4(uint(textureSize(%s,int(%s))),0u,0u,uint(textureQueryLevels(%s)));",
			result, texture, lod, texture)
		return nil
	case ir.ColorArray1D, ir.Color2D, ir.ColorCube:
		result := c.vars.define(id, VarU32x4)
		c.add("%s=uvec4(uvec2(textureSize(%s,int(%s))),0u,uint(textureQueryLevels(%s)));",
			result, texture, lod, texture)
		return nil
	case ir.ColorArray2D, ir.Color3D, ir.ColorArrayCube:
		result := c.vars.define(id, VarU32x4)
		c.add("%s=uvec4(uvec3(textureSize(%s,int(%s))),uint(textureQueryLevels(%s)));",
			result, texture, lod, texture)
		return nil
	case ir.Buffer:
		return unsupportedf("ImageQueryDimensions: texture buffers")
	default:
		return invariantf("unspecified image type %v", info.Type)
	}
}

func (c *Context) emitImageQueryLod(id ir.InstID, coords string) error {
	info := c.program.Inst(id).Info
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	result := c.vars.define(id, VarF32x4)
	c.add("%s=vec4(textureQueryLod(%s,%s),0.0,0.0);", result, texture, coords)
	return nil
}

func (c *Context) emitImageGradient(id ir.InstID, coords string, derivatives, offset ir.Value) error {
	info := c.program.Inst(id).Info
	if info.HasLodClamp {
		return unsupportedf("ImageGradient: LOD clamp samples")
	}
	if _, fused := c.program.ClaimSparse(id); fused {
		return unsupportedf("ImageGradient: sparse texture samples")
	}
	if !offset.IsEmpty() {
		return unsupportedf("ImageGradient: offset")
	}
	texture, err := c.texture(info)
	if err != nil {
		return err
	}
	texel := c.vars.define(id, VarF32x4)
	derivVec, err := c.consume(derivatives)
	if err != nil {
		return err
	}
	if info.NumDerivatives > 1 {
		c.add("%s=textureGrad(%s,%s,vec2(%s.xz),vec2(%s.yz));", texel, texture, coords, derivVec, derivVec)
	} else {
		c.add("%s=textureGrad(%s,%s,float(%s.x),float(%s.y));", texel, texture, coords, derivVec, derivVec)
	}
	return nil
}

func (c *Context) emitImageRead(id ir.InstID, coords string) error {
	info := c.program.Inst(id).Info
	if _, fused := c.program.ClaimSparse(id); fused {
		return unsupportedf("ImageRead: sparse image loads")
	}
	image, err := c.image(info)
	if err != nil {
		return err
	}
	cast, err := fetchCastToInt(coords, info)
	if err != nil {
		return err
	}
	result := c.vars.define(id, VarU32x4)
	c.add("%s=uvec4(imageLoad(%s,%s));", result, image, cast)
	return nil
}

func (c *Context) emitImageWrite(id ir.InstID, coords, color string) error {
	info := c.program.Inst(id).Info
	image, err := c.image(info)
	if err != nil {
		return err
	}
	cast, err := fetchCastToInt(coords, info)
	if err != nil {
		return err
	}
	c.add("imageStore(%s,%s,%s);", image, cast, color)
	return nil
}
