// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// Deferred resource-addressing modes. Bindless operations compute the
// resource handle at runtime; bound-indexed operations index into a fixed
// binding array at runtime. Neither is implemented: every entry point
// exists so the dispatch stays closed, and each surfaces its own
// unsupported-feature condition.

func (c *Context) emitBindlessImageSampleImplicitLod() error {
	return unsupportedf("BindlessImageSampleImplicitLod: bindless addressing")
}

func (c *Context) emitBindlessImageSampleExplicitLod() error {
	return unsupportedf("BindlessImageSampleExplicitLod: bindless addressing")
}

func (c *Context) emitBindlessImageSampleDrefImplicitLod() error {
	return unsupportedf("BindlessImageSampleDrefImplicitLod: bindless addressing")
}

func (c *Context) emitBindlessImageSampleDrefExplicitLod() error {
	return unsupportedf("BindlessImageSampleDrefExplicitLod: bindless addressing")
}

func (c *Context) emitBindlessImageGather() error {
	return unsupportedf("BindlessImageGather: bindless addressing")
}

func (c *Context) emitBindlessImageGatherDref() error {
	return unsupportedf("BindlessImageGatherDref: bindless addressing")
}

func (c *Context) emitBindlessImageFetch() error {
	return unsupportedf("BindlessImageFetch: bindless addressing")
}

func (c *Context) emitBindlessImageQueryDimensions() error {
	return unsupportedf("BindlessImageQueryDimensions: bindless addressing")
}

func (c *Context) emitBindlessImageQueryLod() error {
	return unsupportedf("BindlessImageQueryLod: bindless addressing")
}

func (c *Context) emitBindlessImageGradient() error {
	return unsupportedf("BindlessImageGradient: bindless addressing")
}

func (c *Context) emitBindlessImageRead() error {
	return unsupportedf("BindlessImageRead: bindless addressing")
}

func (c *Context) emitBindlessImageWrite() error {
	return unsupportedf("BindlessImageWrite: bindless addressing")
}

func (c *Context) emitBoundImageSampleImplicitLod() error {
	return unsupportedf("BoundImageSampleImplicitLod: bound-indexed addressing")
}

func (c *Context) emitBoundImageSampleExplicitLod() error {
	return unsupportedf("BoundImageSampleExplicitLod: bound-indexed addressing")
}

func (c *Context) emitBoundImageSampleDrefImplicitLod() error {
	return unsupportedf("BoundImageSampleDrefImplicitLod: bound-indexed addressing")
}

func (c *Context) emitBoundImageSampleDrefExplicitLod() error {
	return unsupportedf("BoundImageSampleDrefExplicitLod: bound-indexed addressing")
}

func (c *Context) emitBoundImageGather() error {
	return unsupportedf("BoundImageGather: bound-indexed addressing")
}

func (c *Context) emitBoundImageGatherDref() error {
	return unsupportedf("BoundImageGatherDref: bound-indexed addressing")
}

func (c *Context) emitBoundImageFetch() error {
	return unsupportedf("BoundImageFetch: bound-indexed addressing")
}

func (c *Context) emitBoundImageQueryDimensions() error {
	return unsupportedf("BoundImageQueryDimensions: bound-indexed addressing")
}

func (c *Context) emitBoundImageQueryLod() error {
	return unsupportedf("BoundImageQueryLod: bound-indexed addressing")
}

func (c *Context) emitBoundImageGradient() error {
	return unsupportedf("BoundImageGradient: bound-indexed addressing")
}

func (c *Context) emitBoundImageRead() error {
	return unsupportedf("BoundImageRead: bound-indexed addressing")
}

func (c *Context) emitBoundImageWrite() error {
	return unsupportedf("BoundImageWrite: bound-indexed addressing")
}
