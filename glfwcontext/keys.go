package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glpractice/graphics"
)

var keyMap = map[graphics.Key]glfw.Key{
	graphics.KeyEscape:    glfw.KeyEscape,
	graphics.KeyW:         glfw.KeyW,
	graphics.KeyA:         glfw.KeyA,
	graphics.KeyS:         glfw.KeyS,
	graphics.KeyD:         glfw.KeyD,
	graphics.KeyTab:       glfw.KeyTab,
	graphics.KeySpace:     glfw.KeySpace,
	graphics.KeyLeftShift: glfw.KeyLeftShift,
}

var reverseKeyMap = func() map[glfw.Key]graphics.Key {
	m := make(map[glfw.Key]graphics.Key, len(keyMap))
	for k, v := range keyMap {
		m[v] = k
	}
	return m
}()

func toGLFWKey(k graphics.Key) (glfw.Key, bool) {
	v, ok := keyMap[k]
	return v, ok
}

func fromGLFWKey(k glfw.Key) graphics.Key {
	if v, ok := reverseKeyMap[k]; ok {
		return v
	}
	return graphics.KeyUnknown
}
