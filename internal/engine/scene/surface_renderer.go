// Package scene renders the ripple surface mesh.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripplegl/internal/engine/lighting"
	"github.com/Faultbox/ripplegl/internal/engine/scene/shaders"
	"github.com/Faultbox/ripplegl/internal/engine/shader"
	"github.com/Faultbox/ripplegl/internal/engine/surface"
	"github.com/Faultbox/ripplegl/internal/logger"
	"github.com/Faultbox/ripplegl/pkg/math"
)

// SurfaceRenderer draws the generated surface mesh with the mip-mapped
// texture and a point light.
type SurfaceRenderer struct {
	program uint32

	// Uniform locations
	locViewProj       int32
	locUVScale        int32
	locTexture        int32
	locLightPos       int32
	locLightColor     int32
	locLightIntensity int32
	locViewPos        int32
	locAmbient        int32

	// Mesh buffers
	vao         uint32
	positionVBO uint32
	normalVBO   uint32
	uvVBO       uint32
	ebo         uint32

	indexCount int32
	indexType  uint32 // gl.UNSIGNED_SHORT or gl.UNSIGNED_INT

	texture uint32
	UVScale float32
	Ambient [3]float32
}

// NewSurfaceRenderer compiles the surface shader and prepares uniform
// locations. The mesh is supplied later via Upload.
func NewSurfaceRenderer() (*SurfaceRenderer, error) {
	program, err := shader.CompileProgram(shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}

	sr := &SurfaceRenderer{
		program: program,
		UVScale: 1,
		Ambient: [3]float32{0.15, 0.15, 0.18},
	}

	sr.locViewProj = shader.GetUniform(program, "uViewProj")
	sr.locUVScale = shader.GetUniform(program, "uUVScale")
	sr.locTexture = shader.GetUniform(program, "uTexture")
	sr.locLightPos = shader.GetUniform(program, "uLightPos")
	sr.locLightColor = shader.GetUniform(program, "uLightColor")
	sr.locLightIntensity = shader.GetUniform(program, "uLightIntensity")
	sr.locViewPos = shader.GetUniform(program, "uViewPos")
	sr.locAmbient = shader.GetUniform(program, "uAmbient")

	return sr, nil
}

// SetTexture points the renderer at an already-uploaded GL texture.
func (sr *SurfaceRenderer) SetTexture(texID uint32) {
	sr.texture = texID
}

// Upload replaces the GPU mesh with a freshly built artifact. Previous
// buffers are released; the mesh itself is not retained.
func (sr *SurfaceRenderer) Upload(mesh *surface.Mesh) {
	sr.releaseBuffers()

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	// Position (location 0)
	gl.GenBuffers(1, &sr.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, unsafe.Pointer(&mesh.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.GenBuffers(1, &sr.normalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.normalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*4, unsafe.Pointer(&mesh.Normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.GenBuffers(1, &sr.uvVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.UVs)*4, unsafe.Pointer(&mesh.UVs[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(2)

	// EBO at the artifact's index width
	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	if mesh.IndexWidth == surface.Index32 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices32)*4, unsafe.Pointer(&mesh.Indices32[0]), gl.STATIC_DRAW)
		sr.indexType = gl.UNSIGNED_INT
		logger.Warn("mesh exceeds 16-bit index range, using 32-bit indices",
			zap.Int("vertices", mesh.VertexCount()),
		)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices16)*2, unsafe.Pointer(&mesh.Indices16[0]), gl.STATIC_DRAW)
		sr.indexType = gl.UNSIGNED_SHORT
	}
	sr.indexCount = int32(mesh.IndexCount)

	gl.BindVertexArray(0)

	logger.Debug("surface mesh uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("indexWidth", int(mesh.IndexWidth)),
	)
}

// Render draws the surface for the current frame.
func (sr *SurfaceRenderer) Render(viewProj math.Mat4, viewPos math.Vec3, light lighting.PointLight) {
	if sr.vao == 0 {
		return
	}

	gl.UseProgram(sr.program)

	gl.UniformMatrix4fv(sr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1f(sr.locUVScale, sr.UVScale)
	gl.Uniform3f(sr.locViewPos, viewPos.X, viewPos.Y, viewPos.Z)
	gl.Uniform3f(sr.locAmbient, sr.Ambient[0], sr.Ambient[1], sr.Ambient[2])

	gl.Uniform3f(sr.locLightPos, light.Position.X, light.Position.Y, light.Position.Z)
	gl.Uniform3f(sr.locLightColor, light.Color[0], light.Color[1], light.Color[2])
	gl.Uniform1f(sr.locLightIntensity, light.Intensity)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sr.texture)
	gl.Uniform1i(sr.locTexture, 0)

	gl.BindVertexArray(sr.vao)
	gl.DrawElements(gl.TRIANGLES, sr.indexCount, sr.indexType, nil)
	gl.BindVertexArray(0)
}

// Close releases all GPU resources.
func (sr *SurfaceRenderer) Close() {
	sr.releaseBuffers()
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}

func (sr *SurfaceRenderer) releaseBuffers() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	for _, buf := range []*uint32{&sr.positionVBO, &sr.normalVBO, &sr.uvVBO, &sr.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	sr.indexCount = 0
}
