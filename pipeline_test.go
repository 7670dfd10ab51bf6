package wgpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWGSL = `
@vertex fn vs(@location(0) pos: vec2f) -> @builtin(position) vec4f {
	return vec4f(pos, 0.0, 1.0);
}
@fragment fn fs() -> @location(0) vec4f {
	return vec4f(1.0, 0.0, 0.0, 1.0);
}
`

func triangleDescriptor(mod *ShaderModule) *RenderPipelineDescriptor {
	return &RenderPipelineDescriptor{
		Label: "triangle",
		Vertex: VertexState{
			Module:     mod,
			EntryPoint: "vs",
			Buffers: []VertexBufferLayout{{
				ArrayStride: 8,
				StepMode:    "vertex",
				Attributes: []VertexAttribute{{
					Format:         "float32x2",
					Offset:         0,
					ShaderLocation: 0,
				}},
			}},
		},
		Primitive: PrimitiveState{Topology: "triangle-list"},
		Fragment: &FragmentState{
			Module:     mod,
			EntryPoint: "fs",
			Targets:    []ColorTargetState{{Format: "bgra8unorm"}},
		},
	}
}

func TestCreateRenderPipeline(t *testing.T) {
	_, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("triangle", testWGSL)
	require.NoError(t, err)

	pipeline, err := device.CreateRenderPipeline(triangleDescriptor(mod))
	require.NoError(t, err)
	require.NotNil(t, pipeline)
	require.NoError(t, pipeline.Release())
	assert.True(t, errors.Is(pipeline.Release(), ErrContract))
}

func TestCreateRenderPipelineValidation(t *testing.T) {
	_, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("triangle", testWGSL)
	require.NoError(t, err)

	mutate := func(fn func(*RenderPipelineDescriptor)) *RenderPipelineDescriptor {
		d := triangleDescriptor(mod)
		fn(d)
		return d
	}
	tests := []struct {
		name string
		desc *RenderPipelineDescriptor
	}{
		{"nil descriptor", nil},
		{"missing vertex module", mutate(func(d *RenderPipelineDescriptor) { d.Vertex.Module = nil })},
		{"unknown vertex format", mutate(func(d *RenderPipelineDescriptor) {
			d.Vertex.Buffers[0].Attributes[0].Format = "float128"
		})},
		{"attributes with zero stride", mutate(func(d *RenderPipelineDescriptor) {
			d.Vertex.Buffers[0].ArrayStride = 0
		})},
		{"unknown topology", mutate(func(d *RenderPipelineDescriptor) { d.Primitive.Topology = "hexagon-fan" })},
		{"unknown cull mode", mutate(func(d *RenderPipelineDescriptor) { d.Primitive.CullMode = "sideways" })},
		{"fragment without targets", mutate(func(d *RenderPipelineDescriptor) { d.Fragment.Targets = nil })},
		{"target missing format", mutate(func(d *RenderPipelineDescriptor) { d.Fragment.Targets[0].Format = "" })},
		{"unknown blend factor", mutate(func(d *RenderPipelineDescriptor) {
			d.Fragment.Targets[0].Blend = &BlendState{Color: BlendComponent{SrcFactor: "half"}}
		})},
		{"depth stencil missing format", mutate(func(d *RenderPipelineDescriptor) {
			d.DepthStencil = &DepthStencilState{DepthCompare: "less"}
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := device.CreateRenderPipeline(tt.desc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestCreateRenderPipelineWithDepthStencil(t *testing.T) {
	_, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("lit", testWGSL)
	require.NoError(t, err)

	d := triangleDescriptor(mod)
	d.DepthStencil = &DepthStencilState{
		Format:            "depth24plus",
		DepthWriteEnabled: true,
		DepthCompare:      "less",
	}
	pipeline, err := device.CreateRenderPipeline(d)
	require.NoError(t, err)
	require.NotNil(t, pipeline)
}

func TestCreateRenderPipelineReleasedModule(t *testing.T) {
	_, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("triangle", testWGSL)
	require.NoError(t, err)
	require.NoError(t, mod.Release())

	_, err = device.CreateRenderPipeline(triangleDescriptor(mod))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))
}

func TestCreateComputePipeline(t *testing.T) {
	_, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("doubler", "@compute @workgroup_size(64) fn main() {}")
	require.NoError(t, err)

	layout, err := device.CreatePipelineLayout(nil)
	require.NoError(t, err)
	pipeline, err := device.CreateComputePipeline(&ComputePipelineDescriptor{
		Label:   "doubler",
		Layout:  layout,
		Compute: ProgrammableStage{Module: mod, EntryPoint: "main"},
	})
	require.NoError(t, err)
	require.NotNil(t, pipeline)

	_, err = device.CreateComputePipeline(&ComputePipelineDescriptor{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreatePipelineLayoutRejectsReleasedLayouts(t *testing.T) {
	_, _, device := newTestDevice(t)
	bgl, err := device.CreateBindGroupLayout(&BindGroupLayoutDescriptor{
		Entries: []BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: ShaderStageCompute,
			Buffer:     &BufferBindingLayout{Type: "storage"},
		}},
	})
	require.NoError(t, err)
	require.NoError(t, bgl.Release())

	_, err = device.CreatePipelineLayout(&PipelineLayoutDescriptor{
		BindGroupLayouts: []*BindGroupLayout{bgl},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))
}
