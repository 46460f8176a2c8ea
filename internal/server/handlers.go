package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MalithGihan/taxnotice-service/internal/account"
	"github.com/MalithGihan/taxnotice-service/internal/apperr"
	"github.com/MalithGihan/taxnotice-service/internal/ingest"
)

const (
	uploadField  = "notice_pdf"
	maxJSONBytes = 1 << 20
)

type pingResp struct {
	OK        bool   `json:"ok"`
	Provider  string `json:"provider"`
	Reachable bool   `json:"reachable"`
	Note      string `json:"note,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": serviceName})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.opts.PingTimeout)
	defer cancel()

	out := pingResp{OK: true, Provider: s.opts.Provider}
	if err := s.opts.Pipeline.Ping(ctx); err != nil {
		out.Note = err.Error()
	} else {
		out.Reachable = true
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req account.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	u, err := s.opts.Accounts.Register(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": u})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req account.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	u, err := s.opts.Accounts.Login(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": u})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil {
		s.writeError(w, r, errBadUpload(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, fh, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) {
		s.writeError(w, r, errNoFile)
		return
	}
	if err != nil {
		s.writeError(w, r, errBadUpload(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.writeError(w, r, errBadUpload(err))
		return
	}
	if ingest.DetectType(fh.Filename, data[:min(len(data), 8)]) != "pdf" {
		s.writeError(w, r, errNotPDF)
		return
	}

	sum, err := s.opts.Pipeline.Run(r.Context(), data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "summary": sum})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err := dec.Decode(v); err != nil {
		return apperr.New(http.StatusBadRequest, "Missing required fields.", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
