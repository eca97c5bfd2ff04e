package shader

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/richinsley/glpractice/filesystem"
	"github.com/richinsley/glpractice/graphics"
	xlate "github.com/richinsley/glpractice/translator"
)

// translate is swapped out in tests.
var translate = xlate.Translate

// LoadSource reads a shader file. Files written for GLSL ES 3.00 are
// translated to desktop GLSL before they are returned.
func LoadSource(ctx context.Context, fsys *filesystem.FileSystem, path string, stage graphics.ShaderStage) (Source, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %s shader %s: %w", stage, path, err)
	}
	code := string(data)
	if !isES(code) {
		return FromString(code), nil
	}
	translated, names, err := translate(ctx, code, stage)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return Source{Code: translated, Names: names}, nil
}

// LoadProgram reads, compiles and links the shader pair at vsPath and fsPath.
func LoadProgram(ctx context.Context, dev graphics.Device, fsys *filesystem.FileSystem, vsPath, fsPath string) (*Program, error) {
	vs, err := LoadSource(ctx, fsys, vsPath, graphics.VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := LoadSource(ctx, fsys, fsPath, graphics.FragmentShader)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(dev, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vsPath, fsPath, err)
	}
	return p, nil
}

// isES reports whether the first #version directive names the es profile.
func isES(code string) bool {
	sc := bufio.NewScanner(strings.NewReader(code))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] != "#version" {
			return false
		}
		return len(fields) >= 3 && fields[2] == "es"
	}
	return false
}
