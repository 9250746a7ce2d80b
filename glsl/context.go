// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/texlower/ir"
)

// Profile describes the capabilities of the target GL implementation that
// affect template selection.
type Profile struct {
	// TextureShadowLod is true when the driver supports
	// GL_EXT_texture_shadow_lod. Without it, shadow sampling of the
	// affected dimensionalities falls back to textureGrad with zero
	// derivatives.
	TextureShadowLod bool
}

// Options configures lowering.
type Options struct {
	// Stage is the shader stage being lowered. Implicit-LOD sampling is
	// only meaningful in the fragment stage; other stages force LOD 0.
	Stage ir.ShaderStage

	// Profile is the target capability profile.
	Profile Profile

	// Bindings resolve descriptor indices to binding slots. If nil, empty
	// tables are used.
	Bindings *Bindings
}

// DefaultOptions returns sensible default options for lowering.
func DefaultOptions() Options {
	return Options{
		Stage:   ir.StageFragment,
		Profile: Profile{TextureShadowLod: true},
	}
}

// Bindings are the four independent descriptor-index to binding-slot
// tables, populated before lowering and read-only during it.
type Bindings struct {
	textures       map[uint32]uint32
	textureBuffers map[uint32]uint32
	images         map[uint32]uint32
	imageBuffers   map[uint32]uint32
}

// NewBindings creates empty binding tables.
func NewBindings() *Bindings {
	return &Bindings{
		textures:       make(map[uint32]uint32),
		textureBuffers: make(map[uint32]uint32),
		images:         make(map[uint32]uint32),
		imageBuffers:   make(map[uint32]uint32),
	}
}

// AddTexture registers a sampled texture descriptor.
func (b *Bindings) AddTexture(descriptor, slot uint32) {
	b.textures[descriptor] = slot
}

// AddTextureBuffer registers a texture buffer descriptor.
func (b *Bindings) AddTextureBuffer(descriptor, slot uint32) {
	b.textureBuffers[descriptor] = slot
}

// AddImage registers a storage image descriptor.
func (b *Bindings) AddImage(descriptor, slot uint32) {
	b.images[descriptor] = slot
}

// AddImageBuffer registers a storage image buffer descriptor.
func (b *Bindings) AddImageBuffer(descriptor, slot uint32) {
	b.imageBuffers[descriptor] = slot
}

// VarType is the semantic type of an allocated variable.
type VarType uint8

const (
	// VarF32x4 is a 4-wide float vector (color samples).
	VarF32x4 VarType = iota

	// VarU32x4 is a 4-wide unsigned vector (raw loads, dimension queries).
	VarU32x4

	// VarF32 is a scalar float (depth-compare results).
	VarF32

	// VarU1 is a scalar boolean (sparse residency results).
	VarU1
)

// String returns the GLSL type name.
func (t VarType) String() string {
	switch t {
	case VarF32x4:
		return "vec4"
	case VarU32x4:
		return "uvec4"
	case VarF32:
		return "float"
	case VarU1:
		return "bool"
	default:
		return "unknown"
	}
}

// prefix returns the variable name prefix for the type.
func (t VarType) prefix() string {
	switch t {
	case VarF32x4:
		return "f4_"
	case VarU32x4:
		return "u4_"
	case VarF32:
		return "f_"
	case VarU1:
		return "b_"
	default:
		return "x_"
	}
}

// Variable is a name bound one-to-one and immutably to the instruction
// that produced it.
type Variable struct {
	Name string
	Type VarType
}

// varAlloc hands out deterministic variable names, one per instruction.
// Counters are per type, so identical input always yields identical names.
type varAlloc struct {
	defs   map[ir.InstID]Variable
	counts [4]uint32
}

func newVarAlloc() *varAlloc {
	return &varAlloc{defs: make(map[ir.InstID]Variable)}
}

// define binds a fresh variable of type t to the instruction at id. A
// second definition for the same instruction panics: each instruction is
// lowered exactly once, so redefining is a dispatch defect.
func (a *varAlloc) define(id ir.InstID, t VarType) string {
	if v, ok := a.defs[id]; ok {
		panic(fmt.Sprintf("glsl: instruction %d already bound to %s", id, v.Name))
	}
	name := fmt.Sprintf("%s%d", t.prefix(), a.counts[t])
	a.counts[t]++
	a.defs[id] = Variable{Name: name, Type: t}
	return name
}

// Context accumulates the lowering output for one shader module: ordered
// statements and the variable bound to each instruction. Lowering is
// single-threaded; a Context must not be shared.
type Context struct {
	program  *ir.Program
	stage    ir.ShaderStage
	profile  Profile
	bindings *Bindings
	vars     *varAlloc
	stmts    []string
}

// NewContext creates a lowering context for program.
func NewContext(program *ir.Program, options Options) *Context {
	bindings := options.Bindings
	if bindings == nil {
		bindings = NewBindings()
	}
	return &Context{
		program:  program,
		stage:    options.Stage,
		profile:  options.Profile,
		bindings: bindings,
		vars:     newVarAlloc(),
	}
}

// Statements returns the emitted statements in program order.
func (c *Context) Statements() []string {
	return c.stmts
}

// Source returns the emitted statements joined into source text.
func (c *Context) Source() string {
	var sb strings.Builder
	for _, s := range c.stmts {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Variable returns the variable bound to the instruction at id.
func (c *Context) Variable(id ir.InstID) (Variable, bool) {
	v, ok := c.vars.defs[id]
	return v, ok
}

// Define binds a fresh variable of type t to the instruction at id and
// returns its name. Upstream lowering uses this to pre-bind the variables
// its own instructions produced, so texture operands can reference them.
func (c *Context) Define(id ir.InstID, t VarType) string {
	return c.vars.define(id, t)
}

// add appends one formatted statement to the output.
//
//nolint:goprintffuncname
func (c *Context) add(format string, args ...any) {
	c.stmts = append(c.stmts, fmt.Sprintf(format, args...))
}

// consume returns the source text for an operand: the literal for an
// immediate, or the variable previously bound to the producing instruction.
func (c *Context) consume(v ir.Value) (string, error) {
	switch v.Kind() {
	case ir.ValueImmU32:
		return fmt.Sprintf("%du", v.U32()), nil
	case ir.ValueImmF32:
		return formatFloat(v.F32()), nil
	case ir.ValueInst:
		def, ok := c.vars.defs[v.Inst()]
		if !ok {
			return "", invariantf("consume of unbound instruction %d", v.Inst())
		}
		return def.Name, nil
	default:
		return "", invariantf("consume of empty value")
	}
}

// texture resolves the sampled-texture binding identifier for info.
func (c *Context) texture(info ir.TextureInstInfo) (string, error) {
	table := c.bindings.textures
	if info.Type == ir.Buffer {
		table = c.bindings.textureBuffers
	}
	slot, ok := table[info.DescriptorIndex]
	if !ok {
		return "", NewError(ErrMissingBinding,
			fmt.Sprintf("texture descriptor %d not registered", info.DescriptorIndex))
	}
	return fmt.Sprintf("tex%d", slot), nil
}

// image resolves the storage-image binding identifier for info.
func (c *Context) image(info ir.TextureInstInfo) (string, error) {
	table := c.bindings.images
	if info.Type == ir.Buffer {
		table = c.bindings.imageBuffers
	}
	slot, ok := table[info.DescriptorIndex]
	if !ok {
		return "", NewError(ErrMissingBinding,
			fmt.Sprintf("image descriptor %d not registered", info.DescriptorIndex))
	}
	return fmt.Sprintf("img%d", slot), nil
}

// formatFloat formats a float32 for GLSL output.
func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
