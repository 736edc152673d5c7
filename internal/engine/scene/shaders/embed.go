// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader is the vertex shader for ripple surface rendering.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader is the fragment shader for ripple surface rendering.
//
//go:embed surface.frag
var SurfaceFragmentShader string
