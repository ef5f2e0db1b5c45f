package starfield

import (
	"fmt"

	"starfolio.dev/internal/models"
)

// Wire message types
const (
	MessageScene  = "scene"
	MessageFrame  = "frame"
	MessageResize = "resize"
)

// FrameWriter sends JSON messages to a client. *websocket.Conn satisfies it.
type FrameWriter interface {
	WriteJSON(v interface{}) error
}

// Message is one starfield message on the wire
type Message struct {
	Type     string                `json:"type"`
	Seq      uint64                `json:"seq,omitempty"`
	Scene    *models.SceneSnapshot `json:"scene,omitempty"`
	Rotation *models.Vec3          `json:"rotation,omitempty"`
	Camera   *models.CameraState   `json:"camera,omitempty"`
	Viewport *models.Viewport      `json:"viewport,omitempty"`
}

// WireBackend renders by streaming scene state to a remote client, which
// draws it locally. The first Render sends the full scene; later renders send
// the rotation, plus camera and viewport whenever they change.
type WireBackend struct {
	w            FrameWriter
	rotationStep float64
	cloud        *PointCloud
	viewport     models.Viewport
	sentViewport models.Viewport
	sentAspect   float64
	seq          uint64
}

// NewWireBackend creates a backend writing to w
func NewWireBackend(w FrameWriter, rotationStep float64) *WireBackend {
	return &WireBackend{w: w, rotationStep: rotationStep}
}

// Upload keeps the cloud until the scene message is sent
func (b *WireBackend) Upload(cloud *PointCloud) error {
	if cloud == nil {
		return fmt.Errorf("nil point cloud")
	}
	b.cloud = cloud
	return nil
}

// SetSize records the surface size for the next message
func (b *WireBackend) SetSize(vp models.Viewport) error {
	b.viewport = vp
	return nil
}

// Render writes a scene or frame message
func (b *WireBackend) Render(scene *Scene, cam *Camera) error {
	b.seq++

	if b.seq == 1 {
		vp := b.viewport
		b.sentViewport = vp
		b.sentAspect = cam.Aspect
		return b.w.WriteJSON(Message{
			Type:     MessageScene,
			Seq:      b.seq,
			Scene:    Snapshot(scene, cam, b.rotationStep),
			Viewport: &vp,
		})
	}

	rotation := scene.Rotation
	msg := Message{Type: MessageFrame, Seq: b.seq, Rotation: &rotation}
	if cam.Aspect != b.sentAspect {
		state := cam.State()
		msg.Camera = &state
		b.sentAspect = cam.Aspect
	}
	if b.viewport != b.sentViewport {
		vp := b.viewport
		msg.Viewport = &vp
		b.sentViewport = vp
	}
	return b.w.WriteJSON(msg)
}

// Sent returns the number of messages written
func (b *WireBackend) Sent() uint64 {
	return b.seq
}
