package handlers

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/datefmt-service/internal/app/formatter"
	"github.com/preston-bernstein/datefmt-service/internal/domain"
	"github.com/preston-bernstein/datefmt-service/internal/logging"
	"github.com/preston-bernstein/datefmt-service/internal/timeutil"
)

const maxBodyBytes = 1 << 20

// Format renders one date (GET or single POST) or a batch (POST with items).
func (h *Handler) Format(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		q := r.URL.Query()
		h.formatOne(w, r, domain.FormatRequest{Date: q.Get("date"), Pattern: q.Get("pattern")})
	case nethttp.MethodPost:
		h.formatPost(w, r)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) formatPost(w nethttp.ResponseWriter, r *nethttp.Request) {
	body, err := io.ReadAll(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, nethttp.StatusRequestEntityTooLarge, "request body too large", h.logger)
		return
	}

	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if len(probe.Items) == 0 {
		var req domain.FormatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid JSON body", h.logger)
			return
		}
		h.formatOne(w, r, req)
		return
	}

	var batch domain.BatchRequest
	if err := json.Unmarshal(body, &batch); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid batch body", h.logger)
		return
	}
	resp, err := h.svc.FormatBatch(batch)
	if err != nil {
		h.writeFormatError(w, r, err)
		return
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "formatted batch", logging.FieldCount, len(resp.Results))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) formatOne(w nethttp.ResponseWriter, r *nethttp.Request, req domain.FormatRequest) {
	res, err := h.svc.Format(req)
	if err != nil {
		h.writeFormatError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// Tokens previews how a pattern is scanned.
func (h *Handler) Tokens(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	resp, err := h.svc.Tokens(r.URL.Query().Get("pattern"))
	if err != nil {
		h.writeFormatError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) writeFormatError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, timeutil.ErrInvalidDate):
		logging.Warn(logger, "rejected date", "error", err)
		writeError(w, r, nethttp.StatusBadRequest, "invalid date (expected YYYY-MM-DD or RFC 3339)", h.logger)
	case errors.Is(err, formatter.ErrBatchTooLarge):
		writeError(w, r, nethttp.StatusRequestEntityTooLarge, err.Error(), h.logger)
	default:
		if pErr, ok := formatter.AsPatternError(err); ok {
			writeError(w, r, nethttp.StatusBadRequest, pErr.Error(), h.logger)
			return
		}
		logging.Error(logger, "format failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "format failed", h.logger)
	}
}
