// Package texlower lowers GPU shader texture/image IR instructions to GLSL
// source statements.
//
// The package covers one stage of a shader recompiler: upstream passes
// build an ir.Program of texture operations with resolved modifier flags
// and pre-populated binding tables; this stage selects one GLSL call
// template per instruction and accumulates statements in program order.
//
// Example usage:
//
//	program := ir.NewProgram()
//	coords := program.Append(ir.OpCompositeConstructU32x2, ir.TextureInstInfo{},
//	    ir.ImmU32(0), ir.ImmU32(0))
//	_ = coords
//
//	bindings := glsl.NewBindings()
//	bindings.AddTexture(0, 0)
//
//	opts := glsl.DefaultOptions()
//	opts.Bindings = bindings
//
//	stmts, err := texlower.Lower(program, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For finer control (pre-binding variables produced by upstream lowering,
// inspecting bound variables), use glsl.NewContext directly.
package texlower

import (
	"github.com/gogpu/texlower/glsl"
	"github.com/gogpu/texlower/ir"
)

// Lower lowers every instruction of program and returns the emitted
// statements in program order.
func Lower(program *ir.Program, options glsl.Options) ([]string, error) {
	ctx := glsl.NewContext(program, options)
	if err := ctx.Lower(); err != nil {
		return nil, err
	}
	return ctx.Statements(), nil
}
