package testutils

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// TestHttpServer is a mock origin listening on a free local port.
type TestHttpServer struct {
	*http.ServeMux

	port int

	mu       sync.Mutex
	requests []*http.Request
}

func NewTestHttpServer() *TestHttpServer {
	mux := http.NewServeMux()
	return &TestHttpServer{ServeMux: mux}
}

// Returns the port the server is listening on.
func (s *TestHttpServer) Start(t *testing.T) int {
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot start test server: %v", err)
	}
	s.port = port

	srvAddr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := http.Server{
		Addr:    srvAddr,
		Handler: http.HandlerFunc(s.record),
	}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("cannot start test server: %v", err)
		}
	}()

	waitForServer(t, srvAddr)
	return port
}

// URL returns an absolute address of path on the started server.
func (s *TestHttpServer) URL(path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", s.port, path)
}

func (s *TestHttpServer) ServeImage(path, contentType string, data []byte) {
	s.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	})
}

func (s *TestHttpServer) ServeStatus(path string, code int) {
	s.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		w.Write([]byte(http.StatusText(code)))
	})
}

// ServeRedirectChain makes path redirect hops times before landing on target.
func (s *TestHttpServer) ServeRedirectChain(path string, hops int, target string) {
	for i := 0; i < hops; i++ {
		from := fmt.Sprintf("%s/%d", path, i)
		if i == 0 {
			from = path
		}

		to := fmt.Sprintf("%s/%d", path, i+1)
		if i == hops-1 {
			to = target
		}

		s.HandleFunc(from, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, to, http.StatusFound)
		})
	}
}

// Requests returns every request received so far.
func (s *TestHttpServer) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func (s *TestHttpServer) record(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	s.mu.Unlock()

	s.ServeMux.ServeHTTP(w, r)
}

func waitForServer(t *testing.T, url string) {
	backoff := 50 * time.Millisecond

	for i := 0; i < 10; i++ {
		conn, err := net.DialTimeout("tcp", url, 1*time.Second)
		if err != nil {
			time.Sleep(backoff)
			continue
		}
		err = conn.Close()
		if err != nil {
			t.Fatal(err)
		}
		return
	}

	t.Fatalf("server on URL %s not up after 10 attempts", url)
}
