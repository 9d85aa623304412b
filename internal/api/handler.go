package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/majority/internal/input"
	"github.com/dmitrymomot/majority/internal/vote"
	"github.com/dmitrymomot/majority/pkg/logger"
	"github.com/dmitrymomot/majority/pkg/majority"
)

// FindRequest is the body of POST /v1/majority.
// A missing or null "items" is the absent collection; [] is the empty one.
type FindRequest struct {
	Items     json.RawMessage `json:"items"`
	Validate  *bool           `json:"validate,omitempty"`
	Fold      bool            `json:"fold,omitempty"`
	Normalize bool            `json:"normalize,omitempty"`
}

// FindResult is the data of a successful response.
type FindResult struct {
	Majority json.RawMessage `json:"majority"`
	Stats    vote.Stats      `json:"stats"`
}

type handler struct {
	log          *slog.Logger
	maxBodyBytes int64
	validate     bool
}

func (h *handler) find(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var req FindRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeRequestTooLarge, err.Error())
			return
		}
		h.log.DebugContext(ctx, "rejected request body", logger.Error(err))
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	var items []string
	if len(req.Items) > 0 {
		decoded, err := input.DecodeJSON(req.Items)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidItems, err.Error())
			return
		}
		items = decoded
	}

	opts := vote.Options{Validate: h.validate, Fold: req.Fold, Normalize: req.Normalize}
	if req.Validate != nil {
		opts.Validate = *req.Validate
	}

	rep, err := vote.Run(items, opts)
	if err != nil {
		kind := majority.KindOf(err)
		h.log.InfoContext(ctx, "majority request failed",
			logger.Kind(kind.String()),
			slog.Int("items", len(items)),
			slog.Duration("duration", time.Since(start)),
		)
		switch kind {
		case majority.KindNullInput, majority.KindEmptyInput:
			writeError(w, http.StatusBadRequest, kind.String(), err.Error())
		case majority.KindNoMajority:
			writeError(w, http.StatusUnprocessableEntity, kind.String(), err.Error())
		default:
			h.log.ErrorContext(ctx, "unexpected vote error", logger.Error(err))
			writeError(w, http.StatusInternalServerError, codeInternal, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	h.log.InfoContext(ctx, "majority request handled",
		logger.Vote(rep.Stats.Total, rep.Stats.Threshold, rep.Stats.Scanned, rep.Stats.Occurrences, rep.Stats.EarlyStop, rep.Stats.Validated),
		slog.Duration("duration", time.Since(start)),
	)
	writeJSON(w, http.StatusOK, Response{Data: FindResult{
		Majority: json.RawMessage(rep.Value),
		Stats:    rep.Stats,
	}})
}
