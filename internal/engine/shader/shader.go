// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program wraps a linked GLSL program.
type Program struct {
	id uint32
}

// Compile compiles vertex and fragment sources and links them.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link: %s", string(log))
	}

	return &Program{id: id}, nil
}

// compileStage compiles a single shader stage.
func compileStage(source string, stage uint32, name string) (uint32, error) {
	sh := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return sh, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of a uniform, or -1 if it is inactive.
func (p *Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

// MustUniform returns the location of a uniform, panicking if the linker
// discarded it. Use for uniforms the renderer cannot work without.
func (p *Program) MustUniform(name string) int32 {
	loc := p.Uniform(name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %d", name, p.id))
	}
	return loc
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
