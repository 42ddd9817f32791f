// Package web serve a página de anotação usada pela equipe.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var index []byte

// Index trata GET /
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(index)
}
