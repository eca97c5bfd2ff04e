package shader

// ────────────────────────────────── Fixed sources ──────────────────────────────────

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// ourColor is updated every frame by the uniform variant.
const uniformFragmentShaderSource = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main()
{
   FragColor = ourColor;
}
`

const fixedFragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main()
{
   FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// ColorUniform is the name of the colour uniform in the uniform fragment shader.
const ColorUniform = "ourColor"

// ────────────────────────────────── Public API ─────────────────────────────────

// Source is shader code ready to compile. Names maps uniform names as
// written by the author to the names used in Code, which differ only for
// translated sources.
type Source struct {
	Code  string
	Names map[string]string
}

// Mapped returns the name of uniform in compiled code.
func (s Source) Mapped(uniform string) string {
	if n, ok := s.Names[uniform]; ok {
		return n
	}
	return uniform
}

func FromString(code string) Source {
	return Source{Code: code}
}

// VertexSource passes the position attribute straight through.
func VertexSource() Source {
	return FromString(vertexShaderSource)
}

// UniformFragmentSource colours every fragment with ColorUniform.
func UniformFragmentSource() Source {
	return FromString(uniformFragmentShaderSource)
}

// FixedFragmentSource colours every fragment orange.
func FixedFragmentSource() Source {
	return FromString(fixedFragmentShaderSource)
}
