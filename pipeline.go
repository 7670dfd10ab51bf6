package wgpu

import (
	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Handle-free pipeline state blocks, shared with the encoder.
type (
	VertexAttribute    = abi.VertexAttribute
	VertexBufferLayout = abi.VertexBufferLayout
	PrimitiveState     = abi.PrimitiveState
	StencilFaceState   = abi.StencilFaceState
	DepthStencilState  = abi.DepthStencilState
	MultisampleState   = abi.MultisampleState
	BlendComponent     = abi.BlendComponent
	BlendState         = abi.BlendState
	ColorTargetState   = abi.ColorTargetState
	ConstantEntry      = abi.ConstantEntry
	Color              = abi.Color
)

// VertexState is the vertex stage of a render pipeline: a shader entry
// point plus the layout of every vertex buffer the stage reads.
type VertexState struct {
	Module     *ShaderModule
	EntryPoint string
	Constants  []ConstantEntry
	Buffers    []VertexBufferLayout
}

// FragmentState is the fragment stage: a shader entry point plus one color
// target per render pass attachment. Nil means "no fragment stage", not
// "keep previous".
type FragmentState struct {
	Module     *ShaderModule
	EntryPoint string
	Constants  []ConstantEntry
	Targets    []ColorTargetState
}

// RenderPipelineDescriptor is the deepest descriptor in the API: vertex
// buffers nest attribute arrays, color targets nest optional blend states,
// and depth-stencil is a nullable block. Nil optional blocks disable that
// stage.
type RenderPipelineDescriptor struct {
	Label        string
	Layout       *PipelineLayout
	Vertex       VertexState
	Primitive    PrimitiveState
	DepthStencil *DepthStencilState
	Multisample  MultisampleState
	Fragment     *FragmentState
}

func validateVertexBuffers(op string, buffers []VertexBufferLayout) error {
	for i := range buffers {
		b := &buffers[i]
		if err := checkEnum(op, "vertex-step-mode", b.StepMode); err != nil {
			return err
		}
		if b.ArrayStride == 0 && len(b.Attributes) > 0 {
			return errf(op, KindValidation, "vertex buffer %d has attributes but zero stride", i)
		}
		for j := range b.Attributes {
			a := &b.Attributes[j]
			if a.Format == "" {
				return errf(op, KindValidation, "vertex buffer %d attribute %d missing format", i, j)
			}
			if err := checkEnum(op, "vertex-format", a.Format); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *RenderPipelineDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if d.Vertex.Module == nil {
		return errf(op, KindValidation, "missing vertex shader module")
	}
	if err := d.Vertex.Module.use(op); err != nil {
		return err
	}
	if err := validateVertexBuffers(op, d.Vertex.Buffers); err != nil {
		return err
	}
	if err := checkEnum(op, "primitive-topology", d.Primitive.Topology); err != nil {
		return err
	}
	if err := checkEnum(op, "index-format", d.Primitive.StripIndexFormat); err != nil {
		return err
	}
	if err := checkEnum(op, "front-face", d.Primitive.FrontFace); err != nil {
		return err
	}
	if err := checkEnum(op, "cull-mode", d.Primitive.CullMode); err != nil {
		return err
	}
	if ds := d.DepthStencil; ds != nil {
		if ds.Format == "" {
			return errf(op, KindValidation, "depth-stencil state missing format")
		}
		if err := checkEnum(op, "texture-format", ds.Format); err != nil {
			return err
		}
		if err := checkEnum(op, "compare-function", ds.DepthCompare); err != nil {
			return err
		}
		for _, face := range []*StencilFaceState{&ds.StencilFront, &ds.StencilBack} {
			if err := checkEnum(op, "compare-function", face.Compare); err != nil {
				return err
			}
			for _, o := range []string{face.FailOp, face.DepthFailOp, face.PassOp} {
				if err := checkEnum(op, "stencil-operation", o); err != nil {
					return err
				}
			}
		}
	}
	if f := d.Fragment; f != nil {
		if f.Module == nil {
			return errf(op, KindValidation, "fragment state missing shader module")
		}
		if err := f.Module.use(op); err != nil {
			return err
		}
		if len(f.Targets) == 0 {
			return errf(op, KindValidation, "fragment state has no color targets")
		}
		for i := range f.Targets {
			t := &f.Targets[i]
			if t.Format == "" {
				return errf(op, KindValidation, "color target %d missing format", i)
			}
			if err := checkEnum(op, "texture-format", t.Format); err != nil {
				return err
			}
			if b := t.Blend; b != nil {
				for _, c := range []*BlendComponent{&b.Color, &b.Alpha} {
					if err := checkEnum(op, "blend-operation", c.Operation); err != nil {
						return err
					}
					if err := checkEnum(op, "blend-factor", c.SrcFactor); err != nil {
						return err
					}
					if err := checkEnum(op, "blend-factor", c.DstFactor); err != nil {
						return err
					}
				}
			}
		}
	}
	if d.Layout != nil {
		return d.Layout.use(op)
	}
	return nil
}

// RenderPipeline wraps one native render pipeline handle.
type RenderPipeline struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreateRenderPipeline builds a render pipeline. A null native handle is a
// fatal creation error for the pipeline; nothing is retried here.
func (d *Device) CreateRenderPipeline(desc *RenderPipelineDescriptor) (*RenderPipeline, error) {
	const op = "create render pipeline"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	var layout uintptr
	if desc.Layout != nil {
		layout = desc.Layout.handle
	}
	lowered := abi.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout,
		Vertex: abi.VertexState{
			Module:     desc.Vertex.Module.handle,
			EntryPoint: desc.Vertex.EntryPoint,
			Constants:  desc.Vertex.Constants,
			Buffers:    desc.Vertex.Buffers,
		},
		Primitive:    desc.Primitive,
		DepthStencil: desc.DepthStencil,
		Multisample:  desc.Multisample,
	}
	if f := desc.Fragment; f != nil {
		lowered.Fragment = &abi.FragmentState{
			Module:     f.Module.handle,
			EntryPoint: f.EntryPoint,
			Constants:  f.Constants,
			Targets:    f.Targets,
		}
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateRenderPipeline, func(m abi.Mem) uintptr {
		return abi.EncodeRenderPipelineDescriptor(m, &lowered)
	})
	if err != nil {
		return nil, err
	}
	return &RenderPipeline{handle: handle, device: d}, nil
}

func (p *RenderPipeline) use(op string) error {
	if p.released {
		return errf(op, KindContract, "render pipeline already released")
	}
	return nil
}

// Release frees the pipeline handle.
func (p *RenderPipeline) Release() error {
	const op = "release render pipeline"
	if err := p.use(op); err != nil {
		return err
	}
	p.released = true
	ffi.P().RenderPipelineRelease(p.handle)
	return nil
}

// ProgrammableStage is the single stage of a compute pipeline.
type ProgrammableStage struct {
	Module     *ShaderModule
	EntryPoint string
	Constants  []ConstantEntry
}

// ComputePipelineDescriptor describes a compute pipeline.
type ComputePipelineDescriptor struct {
	Label   string
	Layout  *PipelineLayout
	Compute ProgrammableStage
}

func (d *ComputePipelineDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if d.Compute.Module == nil {
		return errf(op, KindValidation, "missing compute shader module")
	}
	if err := d.Compute.Module.use(op); err != nil {
		return err
	}
	if d.Layout != nil {
		return d.Layout.use(op)
	}
	return nil
}

// ComputePipeline wraps one native compute pipeline handle.
type ComputePipeline struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreateComputePipeline builds a compute pipeline.
func (d *Device) CreateComputePipeline(desc *ComputePipelineDescriptor) (*ComputePipeline, error) {
	const op = "create compute pipeline"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	var layout uintptr
	if desc.Layout != nil {
		layout = desc.Layout.handle
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateComputePipeline, func(m abi.Mem) uintptr {
		return abi.EncodeComputePipelineDescriptor(m, &abi.ComputePipelineDescriptor{
			Label:  desc.Label,
			Layout: layout,
			Compute: abi.ProgrammableStage{
				Module:     desc.Compute.Module.handle,
				EntryPoint: desc.Compute.EntryPoint,
				Constants:  desc.Compute.Constants,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return &ComputePipeline{handle: handle, device: d}, nil
}

func (p *ComputePipeline) use(op string) error {
	if p.released {
		return errf(op, KindContract, "compute pipeline already released")
	}
	return nil
}

// Release frees the pipeline handle.
func (p *ComputePipeline) Release() error {
	const op = "release compute pipeline"
	if err := p.use(op); err != nil {
		return err
	}
	p.released = true
	ffi.P().ComputePipelineRelease(p.handle)
	return nil
}
