package translator

import (
	"context"
	"fmt"
	"sync"

	"github.com/richinsley/glpractice/graphics"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(ctx)
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", initErr)
	}
	return translator, nil
}

// Translate converts GLSL ES 3.00 code into desktop GLSL 4.10. The returned
// map gives the translated name of every variable the translator renamed.
func Translate(ctx context.Context, code string, stage graphics.ShaderStage) (string, map[string]string, error) {
	t, err := GetTranslator(ctx)
	if err != nil {
		return "", nil, err
	}
	out, err := t.TranslateShader(code, stage.String(), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		if v.MappedName != "" && v.MappedName != name {
			names[name] = v.MappedName
		}
	}
	return out.Code, names, nil
}
