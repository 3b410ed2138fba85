package client

import (
	"net/http"
	"sync/atomic"
)

func countGets(h http.Handler, n *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			n.Add(1)
		}
		h.ServeHTTP(w, r)
	})
}
