// Package server exposes the affordability engine over a small HTTP API.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/format"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/numeric"
)

type handler struct {
	engine  *affordability.Engine
	logger  *zap.Logger
	maxBody int64
	version string
}

// NewHandler constructs the HTTP handler that serves the estimate API.
func NewHandler(engine *affordability.Engine, logger *zap.Logger, maxBody int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBody <= 0 {
		maxBody = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{engine: engine, logger: logger, maxBody: maxBody, version: trimmedVersion}

	mux := http.NewServeMux()

	// Affordability estimate endpoint
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// estimateRequest accepts cost fields as strings or numbers; scraped
// values arrive in either shape.
type estimateRequest struct {
	Price      any `json:"price"`
	Levies     any `json:"levies"`
	RatesTaxes any `json:"rates_taxes"`
}

type estimateResponse struct {
	affordability.Estimate
	Formatted formattedTotals `json:"formatted"`
}

type formattedTotals struct {
	Price        string `json:"price"`
	OnceOffTotal string `json:"once_off_total"`
	MonthlyTotal string `json:"monthly_total"`
	BondPayment  string `json:"bond_payment"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	var req estimateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err := decoder.Decode(&req); err != nil {
		h.logger.Debug("rejecting malformed estimate request",
			zap.String("op", "server.handleEstimate"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Malformed cost values degrade to zero rather than erroring; an
	// estimate is always produced.
	price := numeric.Amount(req.Price)
	levies := numeric.Amount(req.Levies)
	ratesTaxes := numeric.Amount(req.RatesTaxes)

	estimate := h.engine.EstimateCosts(price, levies, ratesTaxes)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		Estimate: estimate,
		Formatted: formattedTotals{
			Price:        format.Rand(estimate.Price),
			OnceOffTotal: format.Rand(estimate.OnceOff.Total),
			MonthlyTotal: format.Rand(estimate.Monthly.Total),
			BondPayment:  format.Rand(estimate.Monthly.BondPayment),
		},
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
