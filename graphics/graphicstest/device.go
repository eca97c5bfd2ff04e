// Package graphicstest provides recording fakes of the graphics interfaces
// for use in tests.
package graphicstest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glpractice/graphics"
)

// Call is one recorded Device method invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Device records every call and simulates object allocation.
type Device struct {
	Calls []Call

	// FailCompile makes compilation of the given stage fail with the info log.
	FailCompile map[graphics.ShaderStage]string
	// FailLink makes linking fail with this info log when non-empty.
	FailLink string
	// Incomplete makes FramebufferComplete report false.
	Incomplete bool
	// PixelValue fills buffers passed to ReadPixels.
	PixelValue byte

	Sources  map[uint32]string
	Uniforms map[string][]float32 // latest value per uniform name
	Matrices map[string]mgl32.Mat4
	Floats   map[uint32][]float32 // uploaded vertex data per buffer
	Indices  map[uint32][]uint32  // uploaded index data per buffer
	Deleted  map[uint32]bool

	nextID   uint32
	stages   map[uint32]graphics.ShaderStage
	locNames map[int32]string
	locs     map[string]int32
	bound    map[graphics.BufferTarget]uint32
}

func NewDevice() *Device {
	return &Device{
		FailCompile: make(map[graphics.ShaderStage]string),
		Sources:     make(map[uint32]string),
		Uniforms:    make(map[string][]float32),
		Matrices:    make(map[string]mgl32.Mat4),
		Floats:      make(map[uint32][]float32),
		Indices:     make(map[uint32][]uint32),
		Deleted:     make(map[uint32]bool),
		stages:      make(map[uint32]graphics.ShaderStage),
		locNames:    make(map[int32]string),
		locs:        make(map[string]int32),
		bound:       make(map[graphics.BufferTarget]uint32),
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// Count returns how many times the named method was called.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls of the named method in order.
func (d *Device) Named(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the sequence of called method names.
func (d *Device) Names() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Name
	}
	return out
}

// Draws returns the number of draw calls issued.
func (d *Device) Draws() int {
	return d.Count("DrawArrays") + d.Count("DrawElements")
}

// Reset forgets recorded calls but keeps allocated state.
func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) Viewport(x, y, width, height int) { d.record("Viewport", x, y, width, height) }
func (d *Device) ClearColor(r, g, b, a float32)    { d.record("ClearColor", r, g, b, a) }
func (d *Device) Clear(mask graphics.ClearMask)    { d.record("Clear", mask) }
func (d *Device) Enable(c graphics.Capability)     { d.record("Enable", c) }
func (d *Device) PolygonMode(m graphics.PolygonMode) {
	d.record("PolygonMode", m)
}

func (d *Device) CreateShader(stage graphics.ShaderStage) uint32 {
	id := d.id()
	d.stages[id] = stage
	d.record("CreateShader", stage)
	return id
}

func (d *Device) ShaderSource(shader uint32, source string) {
	d.Sources[shader] = source
	d.record("ShaderSource", shader)
}

func (d *Device) CompileShader(shader uint32) { d.record("CompileShader", shader) }

func (d *Device) ShaderStatus(shader uint32) (bool, string) {
	d.record("ShaderStatus", shader)
	if msg, ok := d.FailCompile[d.stages[shader]]; ok {
		return false, msg
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.Deleted[shader] = true
	d.record("DeleteShader", shader)
}

func (d *Device) CreateProgram() uint32 {
	id := d.id()
	d.record("CreateProgram")
	return id
}

func (d *Device) AttachShader(program, shader uint32) { d.record("AttachShader", program, shader) }
func (d *Device) LinkProgram(program uint32)          { d.record("LinkProgram", program) }

func (d *Device) ProgramStatus(program uint32) (bool, string) {
	d.record("ProgramStatus", program)
	if d.FailLink != "" {
		return false, d.FailLink
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) { d.record("UseProgram", program) }

func (d *Device) DeleteProgram(program uint32) {
	d.Deleted[program] = true
	d.record("DeleteProgram", program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation", program, name)
	key := fmt.Sprintf("%d:%s", program, name)
	if loc, ok := d.locs[key]; ok {
		return loc
	}
	loc := int32(len(d.locs))
	d.locs[key] = loc
	d.locNames[loc] = name
	return loc
}

func (d *Device) uniform(name string, loc int32, v ...float32) {
	d.record(name, append([]any{loc}, anys(v)...)...)
	if n, ok := d.locNames[loc]; ok {
		d.Uniforms[n] = v
	}
}

func anys(v []float32) []any {
	out := make([]any, len(v))
	for i := range v {
		out[i] = v[i]
	}
	return out
}

func (d *Device) Uniform1i(loc int32, v int32)   { d.uniform("Uniform1i", loc, float32(v)) }
func (d *Device) Uniform1f(loc int32, v float32) { d.uniform("Uniform1f", loc, v) }
func (d *Device) Uniform3f(loc int32, x, y, z float32) {
	d.uniform("Uniform3f", loc, x, y, z)
}
func (d *Device) Uniform4f(loc int32, x, y, z, w float32) {
	d.uniform("Uniform4f", loc, x, y, z, w)
}

func (d *Device) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	d.record("UniformMatrix4fv", loc, m)
	if n, ok := d.locNames[loc]; ok {
		d.Matrices[n] = m
	}
}

func (d *Device) GenVertexArray() uint32 {
	id := d.id()
	d.record("GenVertexArray")
	return id
}

func (d *Device) BindVertexArray(vao uint32) { d.record("BindVertexArray", vao) }

func (d *Device) DeleteVertexArray(vao uint32) {
	d.Deleted[vao] = true
	d.record("DeleteVertexArray", vao)
}

func (d *Device) GenBuffer() uint32 {
	id := d.id()
	d.record("GenBuffer")
	return id
}

func (d *Device) BindBuffer(target graphics.BufferTarget, buffer uint32) {
	d.bound[target] = buffer
	d.record("BindBuffer", target, buffer)
}

func (d *Device) BufferFloat32(target graphics.BufferTarget, data []float32) {
	d.Floats[d.bound[target]] = append([]float32(nil), data...)
	d.record("BufferFloat32", target, len(data))
}

func (d *Device) BufferUint32(target graphics.BufferTarget, data []uint32) {
	d.Indices[d.bound[target]] = append([]uint32(nil), data...)
	d.record("BufferUint32", target, len(data))
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.Deleted[buffer] = true
	d.record("DeleteBuffer", buffer)
}

func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) { d.record("EnableVertexAttribArray", index) }
func (d *Device) DrawArrays(first, count int32)        { d.record("DrawArrays", first, count) }
func (d *Device) DrawElements(count int32)             { d.record("DrawElements", count) }

func (d *Device) GenFramebuffer() uint32 {
	id := d.id()
	d.record("GenFramebuffer")
	return id
}

func (d *Device) BindFramebuffer(fbo uint32) { d.record("BindFramebuffer", fbo) }

func (d *Device) DeleteFramebuffer(fbo uint32) {
	d.Deleted[fbo] = true
	d.record("DeleteFramebuffer", fbo)
}

func (d *Device) GenTexture() uint32 {
	id := d.id()
	d.record("GenTexture")
	return id
}

func (d *Device) ColorTexture(texture uint32, width, height int) {
	d.record("ColorTexture", texture, width, height)
}

func (d *Device) DeleteTexture(texture uint32) {
	d.Deleted[texture] = true
	d.record("DeleteTexture", texture)
}

func (d *Device) GenRenderbuffer() uint32 {
	id := d.id()
	d.record("GenRenderbuffer")
	return id
}

func (d *Device) DepthRenderbuffer(rb uint32, width, height int) {
	d.record("DepthRenderbuffer", rb, width, height)
}

func (d *Device) DeleteRenderbuffer(rb uint32) {
	d.Deleted[rb] = true
	d.record("DeleteRenderbuffer", rb)
}

func (d *Device) FramebufferComplete() bool {
	d.record("FramebufferComplete")
	return !d.Incomplete
}

func (d *Device) ReadPixels(x, y, width, height int, dst []byte) {
	for i := range dst {
		dst[i] = d.PixelValue
	}
	d.record("ReadPixels", x, y, width, height)
}

var _ graphics.Device = (*Device)(nil)
