package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed shaders
var builtin embed.FS

// ShaderDir is checked before the built-in shaders, so a working copy can
// override them without rebuilding.
var ShaderDir = filepath.Join("assets", "shaders")

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(ShaderDir, name))
	if err != nil {
		b, err = builtin.ReadFile("shaders/" + name)
	}
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
