package renderer

import (
	"Seascape/internal/config"
	"Seascape/internal/logger"
	"Seascape/internal/motion"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Full-viewport quad, two triangles corner to corner in NDC.
var oceanQuadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	-1, 1,
	1, -1,
	1, 1,
}

// Layer quad, oversized so parallax displacement never exposes an edge.
// Interleaved x, y, u, v; v is flipped so image row 0 lands at the top.
var layerQuadVertices = []float32{
	-1.25, -1.25, 0, 1,
	1.25, -1.25, 1, 1,
	-1.25, 1.25, 0, 0,
	-1.25, 1.25, 0, 0,
	1.25, -1.25, 1, 1,
	1.25, 1.25, 1, 0,
}

// OceanRenderer draws the shader backdrop and the parallax layers. When the
// GL context cannot be acquired it marks itself unavailable and every call
// becomes a no-op, so the rest of the program keeps running.
type OceanRenderer struct {
	available bool

	oceanShader   Shader
	layerShader   Shader
	oceanUniforms *UniformCache
	layerUniforms *UniformCache

	quadVAO  uint32
	quadVBO  uint32
	layerVAO uint32
	layerVBO uint32

	layers    []*Layer
	layerCfgs []config.LayerConfig
	amplitude float64

	width  int32
	height int32
}

func NewOceanRenderer(layers []config.LayerConfig, pointerAmplitude float64) *OceanRenderer {
	return &OceanRenderer{
		layerCfgs: layers,
		amplitude: pointerAmplitude,
	}
}

func (rend *OceanRenderer) Init(width, height int32) {
	if err := gl.Init(); err != nil {
		logger.Log.Warn("OpenGL unavailable, running without the water", zap.Error(err))
		return
	}
	rend.available = true
	rend.width, rend.height = width, height

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.ClearColor(0.01, 0.04, 0.08, 1.0)
	gl.Viewport(0, 0, width, height)

	rend.oceanShader = InitOceanShader()
	rend.oceanShader.Compile()
	rend.oceanUniforms = NewUniformCache(rend.oceanShader.Program())

	rend.layerShader = InitLayerShader()
	rend.layerShader.Compile()
	rend.layerUniforms = NewUniformCache(rend.layerShader.Program())

	rend.initOceanQuad()
	rend.initLayerQuad()
	rend.initLayers()

	logger.Log.Info("Ocean renderer initialized",
		zap.Int32("width", width), zap.Int32("height", height),
		zap.Int("layers", len(rend.layers)))
}

// initOceanQuad uploads the static full-viewport quad and binds its single
// 2-component position attribute, located by name in the ocean program.
func (rend *OceanRenderer) initOceanQuad() {
	if !rend.oceanShader.IsValid() {
		return
	}

	gl.GenVertexArrays(1, &rend.quadVAO)
	gl.BindVertexArray(rend.quadVAO)

	gl.GenBuffers(1, &rend.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(oceanQuadVertices)*4, gl.Ptr(oceanQuadVertices), gl.STATIC_DRAW)

	loc := gl.GetAttribLocation(rend.oceanShader.Program(), gl.Str(AttribPosition+"\x00"))
	if loc != -1 {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

func (rend *OceanRenderer) initLayerQuad() {
	if !rend.layerShader.IsValid() {
		return
	}

	gl.GenVertexArrays(1, &rend.layerVAO)
	gl.BindVertexArray(rend.layerVAO)

	gl.GenBuffers(1, &rend.layerVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.layerVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(layerQuadVertices)*4, gl.Ptr(layerQuadVertices), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	posLoc := gl.GetAttribLocation(rend.layerShader.Program(), gl.Str(AttribPosition+"\x00"))
	if posLoc != -1 {
		gl.EnableVertexAttribArray(uint32(posLoc))
		gl.VertexAttribPointer(uint32(posLoc), 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	}
	texLoc := gl.GetAttribLocation(rend.layerShader.Program(), gl.Str(AttribTexCoord+"\x00"))
	if texLoc != -1 {
		gl.EnableVertexAttribArray(uint32(texLoc))
		gl.VertexAttribPointer(uint32(texLoc), 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	}
	gl.BindVertexArray(0)
}

func (rend *OceanRenderer) initLayers() {
	for _, cfg := range rend.layerCfgs {
		img := BuildLayerImage(cfg, LayerTextureSize)
		texture, err := CreateTextureFromImage(img)
		if err != nil {
			logger.Log.Error("Failed to build layer texture",
				zap.String("layer", cfg.Name), zap.Error(err))
			continue
		}
		rend.layers = append(rend.layers, &Layer{
			Name:    cfg.Name,
			Depth:   cfg.Speed,
			texture: texture,
		})
	}
}

// Draw renders one frame. Uniform writes and draw calls are skipped when the
// context is unavailable or the program failed to build.
func (rend *OceanRenderer) Draw(elapsed float64, frame motion.Frame) {
	if !rend.available {
		return
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	if rend.oceanShader.IsValid() {
		rend.oceanShader.Use()
		rend.oceanUniforms.SetFloat(UniformTime, float32(elapsed))
		rend.oceanUniforms.SetVec2(UniformResolution, float32(rend.width), float32(rend.height))
		rend.oceanUniforms.SetFloat(UniformSpeed, float32(frame.Speed))
		rend.oceanUniforms.SetFloat(UniformRise, float32(frame.Rise))

		gl.BindVertexArray(rend.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	if rend.layerShader.IsValid() && len(rend.layers) > 0 && frame.Width > 0 && frame.Height > 0 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

		rend.layerShader.Use()
		gl.BindVertexArray(rend.layerVAO)
		gl.ActiveTexture(gl.TEXTURE0)
		rend.layerUniforms.SetInt(UniformSampler, 0)

		// Back to front, in declaration order.
		for _, layer := range rend.layers {
			off := motion.LayerOffset(frame, layer.Depth, rend.amplitude)
			// Pixels to NDC; pixel y grows downward, NDC y grows upward.
			dx := float32(off.X() / frame.Width * 2)
			dy := float32(-off.Y() / frame.Height * 2)
			rend.layerUniforms.SetVec2(UniformOffset, dx, dy)

			gl.BindTexture(gl.TEXTURE_2D, layer.texture)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}

		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(0)
}

// UpdateViewport resyncs the GL viewport with the window's pixel size.
// Idempotent, called from the resize callback and once at startup.
func (rend *OceanRenderer) UpdateViewport(width, height int32) {
	if !rend.available {
		return
	}
	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
}

func (rend *OceanRenderer) Available() bool {
	return rend.available
}

func (rend *OceanRenderer) Cleanup() {
	if !rend.available {
		return
	}
	for _, layer := range rend.layers {
		gl.DeleteTextures(1, &layer.texture)
	}
	gl.DeleteBuffers(1, &rend.quadVBO)
	gl.DeleteVertexArrays(1, &rend.quadVAO)
	gl.DeleteBuffers(1, &rend.layerVBO)
	gl.DeleteVertexArrays(1, &rend.layerVAO)
	rend.oceanShader.Delete()
	rend.layerShader.Delete()
}
