package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aipim/aipim"
	"github.com/aipim/aipim/providers/ai"
)

// server exposes the client library over a small JSON API. One handler, one
// route: POST /v1/messages.
type server struct {
	defaultModel string
	baseURL      string
	logger       *slog.Logger
}

// messageRequest is the inbound JSON body. Model is optional and falls back
// to the server's configured default.
type messageRequest struct {
	Model  string         `json:"model,omitempty"`
	Text   string         `json:"text"`
	Images []imagePayload `json:"images,omitempty"`
}

type imagePayload struct {
	Data     []byte `json:"data,omitempty"` // Base64 in JSON, decoded by encoding/json
	URI      string `json:"uri,omitempty"`
	MimeType string `json:"mime_type"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func newServer(defaultModel, baseURL string, logger *slog.Logger) *server {
	return &server{defaultModel: defaultModel, baseURL: baseURL, logger: logger}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/messages", s.handleMessages)
	return s.logRequests(mux)
}

// logRequests emits one structured log line per request.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *server) handleMessages(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	var opts []aipim.Option
	if s.baseURL != "" {
		opts = append(opts, aipim.WithBaseURL(s.baseURL))
	}
	opts = append(opts, aipim.WithLogger(s.logger))

	client, err := aipim.New(model, opts...)
	if err != nil {
		s.writeError(w, statusForError(err), errorResponse{Error: err.Error(), Kind: string(ai.KindOf(err))})
		return
	}

	builder := client.Message()
	if req.Text != "" {
		builder.Text(req.Text)
	}
	for _, image := range req.Images {
		if image.URI != "" {
			builder.ImageURI(image.URI, image.MimeType)
		} else {
			builder.Image(image.Data, image.MimeType)
		}
	}

	response, err := builder.Send(r.Context())
	if err != nil {
		s.writeError(w, statusForError(err), errorResponse{Error: err.Error(), Kind: string(ai.KindOf(err))})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode error response", "error", err)
	}
}

// statusForError maps the pipeline's error taxonomy onto HTTP statuses.
// Caller mistakes are 4xx; upstream provider trouble is 502.
func statusForError(err error) int {
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) {
		return http.StatusInternalServerError
	}

	switch aiErr.Kind {
	case ai.ErrorKindUnknownModel, ai.ErrorKindUnsupportedContent, ai.ErrorKindEmptyMessage, ai.ErrorKindBuilderReused:
		return http.StatusBadRequest
	case ai.ErrorKindConfiguration:
		return http.StatusInternalServerError
	case ai.ErrorKindNetwork, ai.ErrorKindParse:
		return http.StatusBadGateway
	case ai.ErrorKindCancelled:
		// Client went away; the status is moot but 499 matches convention.
		return 499
	default:
		return http.StatusInternalServerError
	}
}
