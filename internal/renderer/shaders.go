package renderer

import (
	"strings"

	"Seascape/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

// IsValid reports whether both stages compiled. A link failure still counts
// as valid: the program stays bound and draws are visually inert rather
// than fatal.
func (shader *Shader) IsValid() bool {
	return shader.isCompiled
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

// Compile builds both stages and links them into the active program.
// A stage that fails to compile is deleted and the shader left unusable;
// nothing is linked and nothing crashes.
func (shader *Shader) Compile() {
	vert, ok := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if !ok {
		return
	}
	frag, ok := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if !ok {
		gl.DeleteShader(vert)
		return
	}
	shader.program = GenShaderProgram(vert, frag)
	shader.isCompiled = true
	shader.Use()
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
		shader.isCompiled = false
	}
}

// GenShader compiles one stage, logging the driver's info log on failure.
func GenShader(source string, shaderType uint32) (uint32, bool) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("type", shaderType), zap.String("log", log))
		gl.DeleteShader(shader)
		return 0, false
	}
	return shader, true
}

// GenShaderProgram links two compiled stages. Link failure is logged and the
// broken program returned anyway; uniform lookups against it resolve to -1
// and their writes are skipped.
func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}

// Uniform and attribute names the programs expose.
const (
	UniformTime       = "time"
	UniformResolution = "resolution"
	UniformSpeed      = "speed"
	UniformRise       = "rise"
	UniformOffset     = "offset"
	UniformSampler    = "layerTexture"
	AttribPosition    = "position"
	AttribTexCoord    = "texCoord"
)

var oceanVertexShaderSource = `#version 330 core

in vec2 position;

// Vertical reveal, in percent of the viewport height. 1% = 0.02 NDC.
uniform float rise;

void main() {
    gl_Position = vec4(position.x, position.y - rise * 0.02, 0.0, 1.0);
}
` + "\x00"

var oceanFragmentShaderSource = `#version 330 core

uniform float time;
uniform vec2 resolution;
uniform float speed;

out vec4 fragColor;

float hash(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}

float vnoise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    vec2 u = f * f * (3.0 - 2.0 * f);
    return mix(mix(hash(i),                  hash(i + vec2(1.0, 0.0)), u.x),
               mix(hash(i + vec2(0.0, 1.0)), hash(i + vec2(1.0, 1.0)), u.x), u.y);
}

float fbm(vec2 p) {
    float v = 0.0;
    float a = 0.5;
    for (int i = 0; i < 5; i++) {
        v += a * vnoise(p);
        p *= 2.03;
        a *= 0.5;
    }
    return v;
}

void main() {
    vec2 uv = gl_FragCoord.xy / resolution;

    // Scrolling agitates the water: speed accelerates the noise field.
    float t = time * (0.18 + speed * 0.6);

    vec2 p = vec2(uv.x * 4.0, uv.y * 2.0);
    float swell = fbm(p + vec2(t * 0.4, t * 0.15));
    float detail = fbm(p * 3.0 - vec2(t * 0.7, 0.0));
    float crest = smoothstep(0.55, 0.95, swell * 0.7 + detail * 0.45);

    vec3 deep = vec3(0.02, 0.09, 0.18);
    vec3 shallow = vec3(0.10, 0.32, 0.46);
    vec3 color = mix(deep, shallow, swell);
    color += crest * vec3(0.25, 0.30, 0.32) * (0.4 + speed * 0.6);
    color *= 0.85 + 0.15 * uv.y;

    fragColor = vec4(color, 1.0);
}
` + "\x00"

var layerVertexShaderSource = `#version 330 core

in vec2 position;
in vec2 texCoord;

// Parallax displacement in NDC.
uniform vec2 offset;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = texCoord;
    gl_Position = vec4(position + offset, 0.0, 1.0);
}
` + "\x00"

var layerFragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;

uniform sampler2D layerTexture;

out vec4 fragColor;

void main() {
    fragColor = texture(layerTexture, fragTexCoord);
}
` + "\x00"

func InitOceanShader() Shader {
	return Shader{
		vertexSource:   oceanVertexShaderSource,
		fragmentSource: oceanFragmentShaderSource,
	}
}

func InitLayerShader() Shader {
	return Shader{
		vertexSource:   layerVertexShaderSource,
		fragmentSource: layerFragmentShaderSource,
	}
}
