package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/app"
)

// MaxImportSize caps request bodies accepted by the API.
const MaxImportSize = 4 << 20

func (s *Server) view(ctx context.Context, prefersDark bool) (app.View, error) {
	state, err := s.controller.State(ctx)
	if err != nil {
		return app.View{}, err
	}
	state.PrefersDark = prefersDark
	return app.Render(state), nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.view(r.Context(), r.URL.Query().Get("dark") == "1")
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleSearch redirects to the query's destination on the requested engine,
// or on the selected engine when none is given. Empty queries return home.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	engine := r.URL.Query().Get("engine")
	if engine == "" {
		settings, err := s.settings.Settings(r.Context())
		if err != nil {
			writeError(w, r, s.logger, err)
			return
		}
		engine = settings.SelectedEngine
	}

	u, ok := s.dispatcher.URL(engine, r.URL.Query().Get("q"))
	if !ok {
		u = "/"
	}
	http.Redirect(w, r, u, http.StatusFound)
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bookmarks.Bookmarks())
}

func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	var b startpage.Bookmark
	if err := decodeBody(r, &b); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.bookmarks.AddBookmark(r.Context(), b); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.bookmarksChanged(r.Context())
	writeJSON(w, http.StatusCreated, s.bookmarks.Bookmarks())
}

func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	var b startpage.Bookmark
	if err := decodeBody(r, &b); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.bookmarks.UpdateBookmark(r.Context(), index, b); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.bookmarksChanged(r.Context())
	writeJSON(w, http.StatusOK, s.bookmarks.Bookmarks())
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.bookmarks.DeleteBookmark(r.Context(), index); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.bookmarksChanged(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleImport replaces the bookmarks with the request body. The format is
// taken from the name query parameter's extension and defaults to JSON.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := requireContentType(r, importTypes...); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportSize))
	if err != nil {
		writeError(w, r, s.logger, startpage.Errorf(startpage.EINVALID, "request body too large"))
		return
	}
	bookmarks, err := s.controller.Decode(r.URL.Query().Get("name"), data)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.bookmarks.ImportBookmarks(r.Context(), bookmarks); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.bookmarksChanged(r.Context())
	writeJSON(w, http.StatusOK, s.bookmarks.Bookmarks())
}

// handleExport returns the bookmarks as a download. The ETag is a hash of
// the body, so unchanged lists answer If-None-Match with 304.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var (
		data []byte
		err  error
		name = app.ExportName
		mime = "application/json"
	)
	switch format := startpage.Format(r.URL.Query().Get("format")); format {
	case "", startpage.FormatJSON:
		data, err = s.bookmarks.ExportBookmarks(r.Context())
	default:
		enc, ok := s.encoders[format]
		if !ok {
			writeError(w, r, s.logger, startpage.Errorf(startpage.EINVALID, "unsupported export format %q", format))
			return
		}
		name, mime = exportFile(format)
		data, err = enc(s.bookmarks.Bookmarks())
	}
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(data))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(data)
}

// exportFile returns the download name and content type for format.
func exportFile(format startpage.Format) (name, mime string) {
	switch format {
	case startpage.FormatNetscape:
		return "bookmarks.html", "text/html; charset=utf-8"
	case startpage.FormatXBEL:
		return "bookmarks.xbel", "application/xml"
	default:
		return "bookmarks." + string(format), "application/octet-stream"
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Settings(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req startpage.Settings
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.settings.SaveDisplay(r.Context(), req.Theme, req.TimeFormat); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.BroadcastView(r.Context())
	s.handleGetSettings(w, r)
}

func (s *Server) handleSelectEngine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Engine string `json:"engine"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := s.settings.SelectEngine(r.Context(), req.Engine, true); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.BroadcastView(r.Context())
	s.handleGetSettings(w, r)
}

func (s *Server) bookmarksChanged(ctx context.Context) {
	s.controller.BookmarksChanged()
	s.BroadcastView(ctx)
}

// importTypes are the media types accepted by the import endpoint. Form and
// text/plain bodies are excluded so other sites cannot post without a
// preflight.
var importTypes = []string{
	"application/json",
	"application/xml",
	"text/xml",
	"text/html",
	"application/octet-stream",
}

// requireContentType returns EINVALID unless the request media type is one
// of allowed.
func requireContentType(r *http.Request, allowed ...string) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil {
		for _, a := range allowed {
			if mediaType == a {
				return nil
			}
		}
	}
	return startpage.Errorf(startpage.EINVALID, "unsupported content type %q", r.Header.Get("Content-Type"))
}

func decodeBody(r *http.Request, v any) error {
	if err := requireContentType(r, "application/json"); err != nil {
		return err
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxImportSize)).Decode(v); err != nil {
		return startpage.Errorf(startpage.EINVALID, "invalid JSON body")
	}
	return nil
}

func pathIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, startpage.Errorf(startpage.EINVALID, "invalid index %q", r.PathValue("index"))
	}
	return index, nil
}
