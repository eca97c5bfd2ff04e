package graphics

import "github.com/go-gl/mathgl/mgl32"

type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

type Capability int

const (
	DepthTest Capability = iota
)

type PolygonMode int

const (
	Fill PolygonMode = iota
	Line
)

// Device is the subset of OpenGL used by the program. Every call must be
// made from the thread that owns the current context.
type Device interface {
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	PolygonMode(mode PolygonMode)

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus returns the compile status and info log of shader.
	ShaderStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramStatus returns the link status and info log of program.
	ProgramStatus(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer describes a float attribute; stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(first, count int32)
	// DrawElements draws count uint32 indices from the bound element buffer as triangles.
	DrawElements(count int32)

	GenFramebuffer() uint32
	BindFramebuffer(fbo uint32)
	DeleteFramebuffer(fbo uint32)
	GenTexture() uint32
	// ColorTexture allocates an RGBA8 texture and attaches it to the bound framebuffer.
	ColorTexture(texture uint32, width, height int)
	DeleteTexture(texture uint32)
	GenRenderbuffer() uint32
	// DepthRenderbuffer allocates depth storage and attaches it to the bound framebuffer.
	DepthRenderbuffer(rb uint32, width, height int)
	DeleteRenderbuffer(rb uint32)
	FramebufferComplete() bool
	// ReadPixels reads RGBA bytes from the bound framebuffer into dst.
	ReadPixels(x, y, width, height int, dst []byte)
}
