package test_helper

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// APIServer is a stand in for the maclookup.app api that records the
// escaped path of the last request it received
type APIServer struct {
	*httptest.Server
	mux      sync.Mutex
	lastPath string
}

// NewAPIServer returns a started APIServer responding to every request
// with the given status and body. Callers must Close it.
func NewAPIServer(status int, body string) *APIServer {
	s := &APIServer{}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mux.Lock()
		s.lastPath = r.URL.EscapedPath()
		s.mux.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))

	return s
}

// Endpoint returns the base url to configure a vendor repo with
func (s *APIServer) Endpoint() string {
	return s.URL + "/v2/macs/"
}

// LastPath returns the escaped path of the most recent request
func (s *APIServer) LastPath() string {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.lastPath
}
