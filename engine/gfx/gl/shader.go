package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grui/engine/assets"
)

// vertexAttribs describes one batch vertex: pos2, color4, uv2, textured1.
var vertexAttribs = []struct {
	index, size, offset int
}{
	{0, 2, 0},
	{1, 4, 2},
	{2, 2, 6},
	{3, 1, 8},
}

// newQuadBuffers allocates a VAO with a dynamic vertex buffer for maxQuads
// quads and a static index buffer that never changes after this.
func newQuadBuffers(maxQuads int) (vao, vbo, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*vertsPerQuad*vStride*4, nil, gl.DYNAMIC_DRAW)

	idx := quadIndices(maxQuads)
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, gl.Ptr(idx), gl.STATIC_DRAW)

	for _, a := range vertexAttribs {
		gl.EnableVertexAttribArray(uint32(a.index))
		gl.VertexAttribPointer(uint32(a.index), int32(a.size), gl.FLOAT, false,
			vStride*4, unsafe.Pointer(uintptr(a.offset*4)))
	}

	// the element buffer binding stays recorded in the VAO
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo, ebo
}

// loadProgram compiles and links the two named shaders from the asset tree.
func loadProgram(vertName, fragName string) (uint32, error) {
	var stages [2]uint32
	for i, st := range []struct {
		name string
		kind uint32
	}{{vertName, gl.VERTEX_SHADER}, {fragName, gl.FRAGMENT_SHADER}} {
		src, err := assets.LoadShader(st.name)
		if err == nil {
			stages[i], err = compile(src, st.kind)
		}
		if err != nil {
			for _, sh := range stages[:i] {
				gl.DeleteShader(sh)
			}
			return 0, fmt.Errorf("shader %s: %w", st.name, err)
		}
	}

	prog := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	for _, sh := range stages {
		gl.DeleteShader(sh)
	}

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link %s+%s: %s", vertName, fragName, msg)
	}
	return prog, nil
}

func compile(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return sh, nil
}

func infoLog(obj uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := strings.Repeat("\x00", int(n+1))
	read(obj, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}
