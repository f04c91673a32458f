package server

import (
	"encoding/json"
	"net/http"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

const statusSuccess = "success"

type executeRequest struct {
	Command string `json:"command"`
}

type writeFilesRequest struct {
	Files []entities.FileSpec `json:"files"`
}

type gitAuthRequest struct {
	Token string `json:"token"`
}

type gitCloneRequest struct {
	RepoURL string `json:"repo_url"`
	Token   string `json:"token"`
}

type gitCloneResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

type gitOperationRequest struct {
	Operation string `json:"operation"`
	Path      string `json:"path"`
	Message   string `json:"message"`
	Token     string `json:"token"`
}

type gitOperationResponse struct {
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
}

type chatRequest struct {
	Messages []entities.ChatMessage `json:"messages"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	result, err := s.deps.Exec.Execute(r.Context(), req.Command)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWriteFiles(w http.ResponseWriter, r *http.Request) {
	var req writeFilesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.deps.WriteFiles.Execute(r.Context(), req.Files))
}

func (s *Server) handleAuthorize(w http.ResponseWriter, _ *http.Request) {
	url, err := s.deps.GitHubAuth.AuthorizeURL()
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleGitAuth(w http.ResponseWriter, r *http.Request) {
	var req gitAuthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	if err := s.deps.SetCredential.Execute(req.Token); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": statusSuccess})
}

func (s *Server) handleGitClone(w http.ResponseWriter, r *http.Request) {
	var req gitCloneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	result, err := s.deps.Clone.Execute(r.Context(), commands.CloneOptions{URL: req.RepoURL, Token: req.Token})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gitCloneResponse{Status: statusSuccess, Path: result.Path})
}

func (s *Server) handleGitOperation(w http.ResponseWriter, r *http.Request) {
	var req gitOperationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	result, err := s.deps.Sync.Execute(r.Context(), commands.SyncOptions{
		Path:      req.Path,
		Operation: req.Operation,
		Message:   req.Message,
		Token:     req.Token,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gitOperationResponse{Status: statusSuccess, Output: result.Output})
}

func (s *Server) handleListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := s.deps.ListRepositories.Execute(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, repos)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	completion, err := s.deps.Chat.Execute(r.Context(), req.Messages)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, json.RawMessage(completion))
}
