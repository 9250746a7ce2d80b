// Package ir defines the texture/image instruction model consumed by the
// lowering backends.
//
// Instructions live in an append-only arena (Program) and reference each
// other through stable indices, so inspecting a value's producer is a cheap
// index lookup rather than a walk of a live object graph. Everything here is
// immutable after construction, except the one-shot claim of a
// sparse-residency pseudo-instruction by the backend that fuses it.
package ir

// ShaderStage represents a shader stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageCompute
)

// TextureType describes the dimensionality of a texture or image resource.
// It is fixed when the IR is built and drives all template and type
// selection during lowering.
type TextureType uint8

const (
	Color1D TextureType = iota
	ColorArray1D
	Color2D
	ColorArray2D
	Color3D
	ColorCube
	ColorArrayCube
	Buffer
)

// String returns a human-readable texture type name.
func (t TextureType) String() string {
	switch t {
	case Color1D:
		return "Color1D"
	case ColorArray1D:
		return "ColorArray1D"
	case Color2D:
		return "Color2D"
	case ColorArray2D:
		return "ColorArray2D"
	case Color3D:
		return "Color3D"
	case ColorCube:
		return "ColorCube"
	case ColorArrayCube:
		return "ColorArrayCube"
	case Buffer:
		return "Buffer"
	default:
		return "Unknown"
	}
}

// TextureInstInfo carries the per-instruction modifier flags attached to a
// texture or image instruction by the frontend.
type TextureInstInfo struct {
	// Type is the resource dimensionality.
	Type TextureType

	// DescriptorIndex selects the resource descriptor this instruction
	// addresses. Resolved to a binding slot by the backend.
	DescriptorIndex uint32

	// HasBias marks an implicit-LOD sample with an LOD bias operand.
	HasBias bool

	// HasLodClamp marks a sample with an LOD clamp operand.
	HasLodClamp bool

	// GatherComponent selects the component (0-3) for gather operations.
	GatherComponent uint8

	// NumDerivatives is the number of derivative components per axis for
	// gradient sampling.
	NumDerivatives uint8
}
