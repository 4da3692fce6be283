package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/fwojciec/startpage/app"
)

//go:embed static/*
var staticFS embed.FS

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	// escaped marks text that app.Render has already HTML-escaped.
	"escaped": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(staticFS, "static/index.html"))

type indexData struct {
	View app.View
	// Theme is the stored preference; empty leaves the choice to the page's
	// prefers-color-scheme media query until the session resolves it.
	Theme string
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := s.controller.State(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{
		View:  app.Render(state),
		Theme: string(state.Settings.Theme),
	}); err != nil {
		s.logger.Error("render index", "err", err)
	}
}
