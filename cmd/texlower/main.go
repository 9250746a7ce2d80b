// Command texlower lowers a small demo stream of texture instructions and
// prints the resulting GLSL statements.
//
// Configuration comes from the environment:
//
//	TEXLOWER_STAGE          vertex | fragment | compute (default fragment)
//	TEXLOWER_NO_SHADOW_LOD  disable GL_EXT_texture_shadow_lod in the profile
//	TEXLOWER_SPARSE         attach a sparse-residency pseudo-op to the sample
package main

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/gogpu/texlower/glsl"
	"github.com/gogpu/texlower/ir"
)

func main() {
	var stage ir.ShaderStage
	switch name := env.Str("TEXLOWER_STAGE", "fragment"); name {
	case "vertex":
		stage = ir.StageVertex
	case "fragment":
		stage = ir.StageFragment
	case "compute":
		stage = ir.StageCompute
	default:
		fmt.Println("unknown stage:", name)
		os.Exit(1)
	}

	program := ir.NewProgram()

	// Stand-ins for values produced by upstream lowering.
	uv := program.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	storeCoords := program.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{})
	storeColor := program.Append(ir.OpCompositeConstructU32x4, ir.TextureInstInfo{})

	// Implicit-LOD sample of a 2D texture, optionally sparse.
	sample := program.Append(ir.OpImageSampleImplicitLod,
		ir.TextureInstInfo{Type: ir.Color2D, DescriptorIndex: 0},
		ir.Empty(), ir.Ref(uv), ir.Empty(), ir.Empty())
	if env.Bool("TEXLOWER_SPARSE") {
		program.AddSparsePseudo(sample)
	}

	// Gather with a constant-folded offset.
	offset := program.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{},
		ir.ImmU32(1), ir.ImmU32(1))
	program.Append(ir.OpImageGather,
		ir.TextureInstInfo{Type: ir.Color2D, DescriptorIndex: 0, GatherComponent: 2},
		ir.Empty(), ir.Ref(uv), ir.Ref(offset), ir.Empty())

	// Raw fetch from a texel buffer.
	program.Append(ir.OpImageFetch,
		ir.TextureInstInfo{Type: ir.Buffer, DescriptorIndex: 1},
		ir.Empty(), ir.ImmU32(42), ir.Empty(), ir.Empty(), ir.Empty())

	// Depth-compare sample of a cube map with explicit LOD.
	program.Append(ir.OpImageSampleDrefExplicitLod,
		ir.TextureInstInfo{Type: ir.ColorCube, DescriptorIndex: 2},
		ir.Empty(), ir.Ref(uv), ir.ImmF32(0.5), ir.ImmF32(0), ir.Empty())

	// Store to a storage image.
	program.Append(ir.OpImageWrite,
		ir.TextureInstInfo{Type: ir.Color2D, DescriptorIndex: 0},
		ir.Empty(), ir.Ref(storeCoords), ir.Ref(storeColor))

	bindings := glsl.NewBindings()
	bindings.AddTexture(0, 0)
	bindings.AddTextureBuffer(1, 1)
	bindings.AddTexture(2, 2)
	bindings.AddImage(0, 0)

	opts := glsl.Options{
		Stage:    stage,
		Profile:  glsl.Profile{TextureShadowLod: !env.Bool("TEXLOWER_NO_SHADOW_LOD")},
		Bindings: bindings,
	}

	ctx := glsl.NewContext(program, opts)
	ctx.Define(uv, glsl.VarF32x4)
	ctx.Define(storeCoords, glsl.VarU32x4)
	ctx.Define(storeColor, glsl.VarU32x4)

	if err := ctx.Lower(); err != nil {
		fmt.Println("Lower error:", err)
		os.Exit(1)
	}

	fmt.Println("=== Statements ===")
	for _, stmt := range ctx.Statements() {
		fmt.Println(stmt)
	}

	fmt.Println("=== Variables ===")
	for id := 0; id < program.Len(); id++ {
		if v, ok := ctx.Variable(ir.InstID(id)); ok {
			fmt.Printf("  inst[%d] %s -> %s %s\n", id, program.Inst(ir.InstID(id)).Op, v.Type, v.Name)
		}
	}
}
