package ir

// Opcode identifies an instruction. The set is closed: the backend dispatch
// matches every opcode explicitly and treats anything else as malformed IR.
type Opcode uint8

const (
	// Composite constructions of unsigned vectors. Produced by upstream
	// passes; the backend inspects them when folding offset operands but
	// never lowers them itself.
	OpCompositeConstructU32x2 Opcode = iota
	OpCompositeConstructU32x3
	OpCompositeConstructU32x4

	// OpGetSparseFromOp is the sparse-residency pseudo-instruction. It is
	// never lowered on its own; the associated texture instruction consumes
	// it and binds it to the boolean residency result.
	OpGetSparseFromOp

	// Texture and image operations on resolved (bound) resources.
	OpImageSampleImplicitLod
	OpImageSampleExplicitLod
	OpImageSampleDrefImplicitLod
	OpImageSampleDrefExplicitLod
	OpImageGather
	OpImageGatherDref
	OpImageFetch
	OpImageQueryDimensions
	OpImageQueryLod
	OpImageGradient
	OpImageRead
	OpImageWrite

	// Bindless variants: the resource handle is computed at runtime.
	// Deferred addressing mode, uniformly unimplemented.
	OpBindlessImageSampleImplicitLod
	OpBindlessImageSampleExplicitLod
	OpBindlessImageSampleDrefImplicitLod
	OpBindlessImageSampleDrefExplicitLod
	OpBindlessImageGather
	OpBindlessImageGatherDref
	OpBindlessImageFetch
	OpBindlessImageQueryDimensions
	OpBindlessImageQueryLod
	OpBindlessImageGradient
	OpBindlessImageRead
	OpBindlessImageWrite

	// Bound-indexed variants: a runtime index into a fixed binding array.
	// Deferred addressing mode, uniformly unimplemented.
	OpBoundImageSampleImplicitLod
	OpBoundImageSampleExplicitLod
	OpBoundImageSampleDrefImplicitLod
	OpBoundImageSampleDrefExplicitLod
	OpBoundImageGather
	OpBoundImageGatherDref
	OpBoundImageFetch
	OpBoundImageQueryDimensions
	OpBoundImageQueryLod
	OpBoundImageGradient
	OpBoundImageRead
	OpBoundImageWrite
)

var opcodeNames = map[Opcode]string{
	OpCompositeConstructU32x2:            "CompositeConstructU32x2",
	OpCompositeConstructU32x3:            "CompositeConstructU32x3",
	OpCompositeConstructU32x4:            "CompositeConstructU32x4",
	OpGetSparseFromOp:                    "GetSparseFromOp",
	OpImageSampleImplicitLod:             "ImageSampleImplicitLod",
	OpImageSampleExplicitLod:             "ImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod:         "ImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod:         "ImageSampleDrefExplicitLod",
	OpImageGather:                        "ImageGather",
	OpImageGatherDref:                    "ImageGatherDref",
	OpImageFetch:                         "ImageFetch",
	OpImageQueryDimensions:               "ImageQueryDimensions",
	OpImageQueryLod:                      "ImageQueryLod",
	OpImageGradient:                      "ImageGradient",
	OpImageRead:                          "ImageRead",
	OpImageWrite:                         "ImageWrite",
	OpBindlessImageSampleImplicitLod:     "BindlessImageSampleImplicitLod",
	OpBindlessImageSampleExplicitLod:     "BindlessImageSampleExplicitLod",
	OpBindlessImageSampleDrefImplicitLod: "BindlessImageSampleDrefImplicitLod",
	OpBindlessImageSampleDrefExplicitLod: "BindlessImageSampleDrefExplicitLod",
	OpBindlessImageGather:                "BindlessImageGather",
	OpBindlessImageGatherDref:            "BindlessImageGatherDref",
	OpBindlessImageFetch:                 "BindlessImageFetch",
	OpBindlessImageQueryDimensions:       "BindlessImageQueryDimensions",
	OpBindlessImageQueryLod:              "BindlessImageQueryLod",
	OpBindlessImageGradient:              "BindlessImageGradient",
	OpBindlessImageRead:                  "BindlessImageRead",
	OpBindlessImageWrite:                 "BindlessImageWrite",
	OpBoundImageSampleImplicitLod:        "BoundImageSampleImplicitLod",
	OpBoundImageSampleExplicitLod:        "BoundImageSampleExplicitLod",
	OpBoundImageSampleDrefImplicitLod:    "BoundImageSampleDrefImplicitLod",
	OpBoundImageSampleDrefExplicitLod:    "BoundImageSampleDrefExplicitLod",
	OpBoundImageGather:                   "BoundImageGather",
	OpBoundImageGatherDref:               "BoundImageGatherDref",
	OpBoundImageFetch:                    "BoundImageFetch",
	OpBoundImageQueryDimensions:          "BoundImageQueryDimensions",
	OpBoundImageQueryLod:                 "BoundImageQueryLod",
	OpBoundImageGradient:                 "BoundImageGradient",
	OpBoundImageRead:                     "BoundImageRead",
	OpBoundImageWrite:                    "BoundImageWrite",
}

// String returns the opcode name.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "Unknown"
}
