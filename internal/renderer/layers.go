package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"Seascape/internal/config"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// LayerTextureSize is the edge length of every synthesized layer texture.
const LayerTextureSize = 256

// Layer is one parallax plane: a procedural texture plus its depth
// coefficient. Depth 0 keeps the layer fixed; larger values move it more.
type Layer struct {
	Name    string
	Depth   float64
	texture uint32
}

// BuildLayerImage synthesizes a layer's RGBA silhouette: Perlin fBm shaped
// into a horizontal band that thickens toward the bottom of the image,
// tinted with the configured color. Deterministic per seed.
func BuildLayerImage(cfg config.LayerConfig, size int) *image.RGBA {
	noise := perlin.NewPerlin(2, 2, int32(cfg.Octaves), cfg.Seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		// Row 0 is the top of the band; density grows toward the bottom.
		profile := math.Pow(float64(y)/float64(size-1), 1.5)
		for x := 0; x < size; x++ {
			n := noise.Noise2D(float64(x)/float64(size)*cfg.Scale, float64(y)/float64(size)*cfg.Scale)
			v := (n + 1) * 0.5 // perlin output is roughly [-1,1]
			v = math.Max(0, math.Min(1, v))

			a := v * profile * float64(cfg.Alpha)
			shade := 0.8 + 0.2*v
			img.SetRGBA(x, y, color.RGBA{
				R: channel(float64(cfg.Tint[0]) * shade),
				G: channel(float64(cfg.Tint[1]) * shade),
				B: channel(float64(cfg.Tint[2]) * shade),
				A: channel(a),
			})
		}
	}
	return img
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(1, v)) * 255)
}

// CreateTextureFromImage uploads an RGBA image as a clamped, linearly
// filtered 2D texture and returns its id.
func CreateTextureFromImage(img *image.RGBA) (uint32, error) {
	if img.Stride != img.Rect.Size().X*4 {
		return 0, fmt.Errorf("unsupported stride %d", img.Stride)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Size().X), int32(img.Rect.Size().Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return textureID, nil
}
