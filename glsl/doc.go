// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl lowers texture and image IR instructions to GLSL source
// statements.
//
// For each instruction in program order, the lowering validates modifier
// legality, resolves operand text, fuses an attached sparse-residency
// pseudo-instruction if present, selects one call template from the
// documented families (texture, textureLod, textureOffset, textureGather,
// texelFetch, imageLoad, imageStore and their sparse equivalents), and
// appends exactly one statement to the context while binding a fresh
// variable to the instruction.
//
// # Basic Usage
//
//	bindings := glsl.NewBindings()
//	bindings.AddTexture(0, 0)
//
//	opts := glsl.DefaultOptions()
//	opts.Bindings = bindings
//
//	ctx := glsl.NewContext(program, opts)
//	if err := ctx.Lower(); err != nil {
//	    // *glsl.Error distinguishes unsupported features from
//	    // invariant violations.
//	}
//	for _, stmt := range ctx.Statements() {
//	    fmt.Println(stmt)
//	}
//
// # Capability Fallback
//
// Depth-compare sampling of 2D arrays, cubes and cube arrays requires
// GL_EXT_texture_shadow_lod for explicit-LOD forms. When the profile lacks
// it, the lowering substitutes a zero-derivative textureGrad call; cube
// arrays have no gradient form and bind a constant zero instead.
//
// # Determinism
//
// Variable names and literal formatting are pure functions of the input,
// so identical programs lower to byte-identical output.
package glsl
