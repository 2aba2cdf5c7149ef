package main

import (
	"context"
	"image"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/juweissenberg/mandelview"
	"github.com/juweissenberg/mandelview/render"
)

const (
	// Canvas size until the browser reports its real dimensions.
	defaultWidth  = 960
	defaultHeight = 540

	// previewScale is the downsampling factor for frames rendered while a
	// drag or pinch is still in progress.
	previewScale = 4
)

// sessionConfig is the per-server state shared by all sessions.
type sessionConfig struct {
	pool     *render.Pool
	maxRange float64
	start    *mandelview.Region
}

// session owns one websocket viewer: its ViewState, its controller and the
// frame push loop. Input events arrive as JSON, frames leave as binary RGBA
// messages.
type session struct {
	conn *websocket.Conn
	pool *render.Pool
	ctrl *mandelview.Controller

	w, h        int
	lastPreview bool
}

func newSession(c *websocket.Conn, cfg sessionConfig) *session {
	view := mandelview.NewViewState()
	view.MaxRange = cfg.maxRange
	view.SetAspect(defaultWidth, defaultHeight)
	if cfg.start != nil {
		view.GoTo(*cfg.start)
	}
	return &session{
		conn: c,
		pool: cfg.pool,
		ctrl: mandelview.NewController(view),
		w:    defaultWidth,
		h:    defaultHeight,
	}
}

func (s *session) run(ctx context.Context) {
	defer s.conn.Close(websocket.StatusInternalError, "session ended")

	err := s.loop(ctx)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		s.conn.Close(websocket.StatusNormalClosure, "")
	default:
		log.Printf("session: %v", err)
	}
}

func (s *session) loop(ctx context.Context) error {
	// First frame goes out before any input arrives.
	if err := s.sendFrame(ctx, false); err != nil {
		return err
	}

	events := make(chan mandelview.Event)
	errs := make(chan error, 1)
	go func() {
		for {
			var ev mandelview.Event
			if err := wsjson.Read(ctx, s.conn, &ev); err != nil {
				errs <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return err
		case ev := <-events:
			changed := s.apply(ev)
			// Frames are the expensive part, so drain queued input and
			// render the coalesced result once.
		drain:
			for {
				select {
				case ev = <-events:
					changed = s.apply(ev) || changed
				default:
					break drain
				}
			}

			gesture := s.ctrl.State() != mandelview.StateIdle
			switch {
			case changed:
				if err := s.sendFrame(ctx, gesture); err != nil {
					return err
				}
			case !gesture && s.lastPreview:
				// Gesture just settled on a preview; replace it with a
				// full-detail frame.
				if err := s.sendFrame(ctx, false); err != nil {
					return err
				}
			}
		}
	}
}

// apply feeds one event into the controller and reports whether the view
// changed. Resizes always count as a change, since the frame buffer
// dimensions change even when the aspect ratio does not.
func (s *session) apply(ev mandelview.Event) bool {
	if ev.Op == mandelview.OpResize && ev.W > 0 && ev.H > 0 {
		s.w, s.h = ev.W, ev.H
		s.ctrl.Resize(ev.W, ev.H)
		return true
	}
	changed, err := mandelview.Apply(s.ctrl, ev)
	if err != nil {
		log.Printf("event: %v", err)
		return false
	}
	return changed
}

func (s *session) sendFrame(ctx context.Context, preview bool) error {
	view := *s.ctrl.View

	var (
		img *image.RGBA
		err error
	)
	if preview {
		img, err = s.pool.Preview(ctx, view, s.w, s.h, previewScale)
	} else {
		img, err = s.pool.Frame(ctx, view, s.w, s.h)
	}
	if err != nil {
		return err
	}

	if err := s.conn.Write(ctx, websocket.MessageBinary, mandelview.EncodeFrame(img)); err != nil {
		return err
	}
	s.lastPreview = preview
	return nil
}
