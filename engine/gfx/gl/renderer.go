package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grui/engine/assets"
	"github.com/hubastard/grui/engine/core"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/scene"
	"github.com/hubastard/grui/engine/text"
	"go.uber.org/zap"
)

const defaultMaxQuads = 4096

// RendererGL batches solid and glyph quads into one vertex buffer and draws
// them with a single program. It implements core.Renderer and ui.Renderer.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	atlas   uint32
	uVP     int32
	uAtlas  int32

	font   *text.Font
	camera *scene.ScreenCamera
	batch  *batch
	stats  Statistics
	log    *zap.Logger
}

// NewRendererGL needs a current GL context. A nil font falls back to the
// built-in bitmap face.
func NewRendererGL(win core.Window, cfg core.Config, font *text.Font) (*RendererGL, error) {
	if font == nil {
		font = text.Default()
	}
	r := &RendererGL{
		win:    win,
		font:   font,
		camera: scene.NewScreenCamera(cfg.Width, cfg.Height),
		batch:  newBatch(defaultMaxQuads),
		log:    logging.Named("gl"),
	}
	if w, h := win.FramebufferSize(); w > 0 && h > 0 {
		r.camera.SetViewportPixels(w, h)
	}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = loadProgram("ui.vert", "ui.frag")
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.uAtlas = gl.GetUniformLocation(r.program, gl.Str("uAtlas\x00"))

	r.vao, r.vbo, r.ebo = newQuadBuffers(r.batch.max)

	r.uploadAtlas()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.log.Info("renderer ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("atlas", r.font.Atlas.Bounds().Dx()))
	return nil
}

func (r *RendererGL) uploadAtlas() {
	w, h, pix := assets.RGBA8(r.font.Atlas)
	gl.GenTextures(1, &r.atlas)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *RendererGL) Shutdown() {
	if r.atlas != 0 {
		gl.DeleteTextures(1, &r.atlas)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.font.Close()
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	r.camera.SetViewportPixels(w, h)
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Camera is the pixel-space camera used for every draw.
func (r *RendererGL) Camera() *scene.ScreenCamera { return r.camera }

// Stats returns the previous frame's statistics.
func (r *RendererGL) Stats() Statistics { return r.stats }

func (r *RendererGL) BeginFrame() {
	r.stats = Statistics{}
	r.batch.reset()
}

func (r *RendererGL) EndFrame() { r.flush() }

// DrawQuad draws a solid quad centered at (cx, cy).
func (r *RendererGL) DrawQuad(cx, cy, w, h float32, color [4]float32, rotation float32) {
	if r.batch.full() {
		r.flush()
	}
	r.batch.push(cx, cy, w, h, color, rotation, false, 0, 0, 1, 1)
	r.stats.QuadCount++
}

// DrawText lays s out with its top-left corner at (x, y).
func (r *RendererGL) DrawText(x, y float32, s string, size float32, color [4]float32) {
	for _, q := range r.font.Layout(x, y, s, size) {
		if r.batch.full() {
			r.flush()
		}
		r.batch.push(q.X+q.W*0.5, q.Y+q.H*0.5, q.W, q.H, color, 0, true, q.U0, q.V0, q.U1, q.V1)
		r.stats.QuadCount++
	}
}

func (r *RendererGL) Measure(s string, size float32) (float32, float32) {
	return r.font.Measure(s, size)
}

func (r *RendererGL) flush() {
	if r.batch.empty() {
		return
	}
	vp := r.camera.VP()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)
	gl.Uniform1i(r.uAtlas, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.batch.verts)*4, gl.Ptr(r.batch.verts))
	gl.DrawElements(gl.TRIANGLES, int32(r.batch.quads*indsPerQuad), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.stats.DrawCalls++
	r.batch.reset()
}
