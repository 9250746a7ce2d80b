// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package texlower

import (
	"testing"

	"github.com/gogpu/texlower/glsl"
	"github.com/gogpu/texlower/ir"
)

func TestLower(t *testing.T) {
	program := ir.NewProgram()
	program.Append(ir.OpImageFetch,
		ir.TextureInstInfo{Type: ir.Buffer, DescriptorIndex: 0},
		ir.Empty(), ir.ImmU32(7), ir.Empty(), ir.Empty(), ir.Empty())
	program.Append(ir.OpImageQueryDimensions,
		ir.TextureInstInfo{Type: ir.Color2D, DescriptorIndex: 1},
		ir.Empty(), ir.ImmU32(0))

	bindings := glsl.NewBindings()
	bindings.AddTextureBuffer(0, 1)
	bindings.AddTexture(1, 3)

	opts := glsl.DefaultOptions()
	opts.Bindings = bindings

	stmts, err := Lower(program, opts)
	if err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	want := []string{
		"f4_0=texelFetch(tex1,int(7u));",
		"u4_0=uvec4(uvec2(textureSize(tex3,int(0u))),0u,uint(textureQueryLevels(tex3)));",
	}
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d: %v", len(stmts), len(want), stmts)
	}
	for i := range want {
		if stmts[i] != want[i] {
			t.Errorf("statement %d:\n  got  %q\n  want %q", i, stmts[i], want[i])
		}
	}
}

func TestLowerMissingBinding(t *testing.T) {
	program := ir.NewProgram()
	program.Append(ir.OpImageFetch,
		ir.TextureInstInfo{Type: ir.Buffer, DescriptorIndex: 9},
		ir.Empty(), ir.ImmU32(7), ir.Empty(), ir.Empty(), ir.Empty())

	stmts, err := Lower(program, glsl.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for unregistered descriptor")
	}
	e, ok := err.(*glsl.Error)
	if !ok {
		t.Fatalf("expected *glsl.Error, got %T: %v", err, err)
	}
	if e.Kind != glsl.ErrMissingBinding {
		t.Errorf("error kind = %v, want %v", e.Kind, glsl.ErrMissingBinding)
	}
	if stmts != nil {
		t.Errorf("statements on error = %v, want nil", stmts)
	}
}
