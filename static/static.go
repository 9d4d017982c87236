// Package static holds the browser client served at the root of the HTTP
// server.
package static

import (
	"embed"
	"net/http"
)

//go:embed index.html pong.js
var files embed.FS

// Handler serves the embedded client.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}
