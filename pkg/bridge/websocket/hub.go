package websocket

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/trommel.go/pkg/bridge"
	fx "github.com/robotalks/trommel.go/pkg/framework"
)

// DefaultPath is where a Hub serves websocket connections.
const DefaultPath = "/events"

// Hub broadcasts event packets to all connected websocket clients. When
// a Poster is set, commands sent by clients are posted to it.
type Hub struct {
	Addr   string
	Path   string
	Poster fx.MessagePoster

	conns    map[*ReadWriter]struct{}
	lock     sync.RWMutex
	listener net.Listener
}

// NewHub creates a Hub listening on addr.
func NewHub(addr string) *Hub {
	return &Hub{Addr: addr, Path: DefaultPath, conns: make(map[*ReadWriter]struct{})}
}

// Handler returns the websocket handler.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.conns)
}

// WritePacket implements PacketWriter. Clients failing to receive are
// disconnected.
func (h *Hub) WritePacket(pkt []byte) error {
	h.lock.RLock()
	conns := make([]*ReadWriter, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.lock.RUnlock()
	for _, conn := range conns {
		if err := conn.WritePacket(pkt); err != nil {
			glog.Warningf("websocket %s: %v", (*websocket.Conn)(conn).Request().RemoteAddr, err)
			h.remove(conn)
			conn.Close()
		}
	}
	return nil
}

func (h *Hub) serve(c *websocket.Conn) {
	c.PayloadType = websocket.BinaryFrame
	conn := New(c)
	h.lock.Lock()
	if h.conns == nil {
		h.conns = make(map[*ReadWriter]struct{})
	}
	h.conns[conn] = struct{}{}
	h.lock.Unlock()
	glog.Infof("websocket %s connected", c.Request().RemoteAddr)
	defer h.remove(conn)

	var poster fx.MessagePoster = discardPoster{}
	if h.Poster != nil {
		poster = h.Poster
	}
	// returns when the client disconnects
	bridge.NewCommandPipe(conn, poster).Run(context.Background())
	glog.Infof("websocket %s disconnected", c.Request().RemoteAddr)
}

func (h *Hub) remove(conn *ReadWriter) {
	h.lock.Lock()
	delete(h.conns, conn)
	h.lock.Unlock()
}

// Listen binds Addr. It is called by Run when not called before.
func (h *Hub) Listen() error {
	ln, err := net.Listen("tcp", h.Addr)
	if err != nil {
		return err
	}
	h.listener = ln
	return nil
}

// ListenAddr returns the bound address.
func (h *Hub) ListenAddr() net.Addr {
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// Run implements Runnable.
func (h *Hub) Run(ctx context.Context) error {
	if h.listener == nil {
		if err := h.Listen(); err != nil {
			return err
		}
	}
	if h.Path == "" {
		h.Path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(h.Path, h.Handler())
	server := &http.Server{Handler: mux}
	glog.Infof("websocket hub on %s%s", h.listener.Addr(), h.Path)
	err := fx.RunWithContextCancel(ctx, func() { server.Close() }, func() error {
		return server.Serve(h.listener)
	})
	h.lock.Lock()
	for conn := range h.conns {
		conn.Close()
	}
	h.lock.Unlock()
	if err == context.Canceled || err == http.ErrServerClosed {
		return nil
	}
	return err
}

type discardPoster struct{}

func (discardPoster) PostMessage(fx.Message) {}
