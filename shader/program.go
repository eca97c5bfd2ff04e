package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glpractice/graphics"
)

// Program is a linked vertex/fragment pair with a uniform location cache.
type Program struct {
	dev       graphics.Device
	id        uint32
	names     map[string]string
	locations map[string]int32
}

// NewProgram compiles both stages and links them. The shader objects are
// released once linking has been attempted; a failed compile or link
// releases everything and returns the driver's info log.
func NewProgram(dev graphics.Device, vertex, fragment Source) (*Program, error) {
	vs, err := compileShader(dev, vertex.Code, graphics.VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(dev, fragment.Code, graphics.FragmentShader)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.LinkProgram(program)
	ok, infoLog := dev.ProgramStatus(program)

	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !ok {
		dev.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}

	p := &Program{
		dev:       dev,
		id:        program,
		names:     make(map[string]string),
		locations: make(map[string]int32),
	}
	for k, v := range vertex.Names {
		p.names[k] = v
	}
	for k, v := range fragment.Names {
		p.names[k] = v
	}
	return p, nil
}

func compileShader(dev graphics.Device, source string, stage graphics.ShaderStage) (uint32, error) {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if ok, infoLog := dev.ShaderStatus(shader); !ok {
		dev.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", stage, infoLog)
	}
	return shader, nil
}

// ID returns the program object handle.
func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

// Location returns the location of uniform, or -1 when the linked program
// does not use it.
func (p *Program) Location(uniform string) int32 {
	if loc, ok := p.locations[uniform]; ok {
		return loc
	}
	name := uniform
	if n, ok := p.names[uniform]; ok {
		name = n
	}
	loc := p.dev.UniformLocation(p.id, name)
	p.locations[uniform] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc != -1 {
		p.dev.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc != -1 {
		p.dev.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc != -1 {
		p.dev.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.Location(name); loc != -1 {
		p.dev.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc != -1 {
		p.dev.UniformMatrix4fv(loc, m)
	}
}

func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}
