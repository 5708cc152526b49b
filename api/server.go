// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"agency-quote/adapters/workflow"
	"agency-quote/core/booking"
	"agency-quote/core/quote"
	"agency-quote/core/types"
	"agency-quote/internal/errors"
)

// Server is the API server
type Server struct {
	engine   *quote.Engine
	workflow *workflow.Adapter
	mux      *http.ServeMux
	version  string
}

// NewServer creates a new API server.
// The workflow adapter may be nil; submission is then unavailable.
func NewServer(version string, engine *quote.Engine, wf *workflow.Adapter) *Server {
	s := &Server{
		engine:   engine,
		workflow: wf,
		mux:      http.NewServeMux(),
		version:  version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote/website", s.handleWebsiteQuote)
	s.mux.HandleFunc("POST /quote/marketing", s.handleMarketingQuote)
	s.mux.HandleFunc("POST /quote/submit", s.handleSubmit)

	// Supporting endpoints
	s.mux.HandleFunc("GET /booking/slots", s.handleSlots)
	s.mux.HandleFunc("GET /packs", s.handlePacks)
	s.mux.HandleFunc("GET /ratecard", s.handleRateCard)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleWebsiteQuote handles POST /quote/website
func (s *Server) handleWebsiteQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req WebsiteQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateWebsiteRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result := s.engine.WebsiteQuote(websiteConfigFrom(&req))
	s.writeQuote(w, &req, result, start)
}

// handleMarketingQuote handles POST /quote/marketing
func (s *Server) handleMarketingQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MarketingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateMarketingRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result := s.engine.MarketingQuote(marketingConfigFrom(&req))
	s.writeQuote(w, &req, result, start)
}

// handleSubmit handles POST /quote/submit
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if s.workflow == nil {
		s.writeError(w, "NOT_CONFIGURED", "quote submission is not configured", http.StatusServiceUnavailable)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, description, err := s.buildForSubmit(&req)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	if !result.Valid {
		s.writeError(w, "INVALID_QUOTE", "configuration does not produce a purchasable quote", http.StatusUnprocessableEntity)
		return
	}
	if result.ManualQuoteRequired {
		s.writeError(w, "MANUAL_QUOTE", "selected volume requires a manual estimate", http.StatusUnprocessableEntity)
		return
	}
	if req.Installments && !result.InstallmentEligible {
		s.writeError(w, "NOT_ELIGIBLE", "total exceeds the installment limit", http.StatusUnprocessableEntity)
		return
	}

	quoteID := uuid.NewString()
	payload := &workflow.Payload{
		Intent:       "generate_payment_link",
		QuoteID:      quoteID,
		Amount:       result.RoundedTotal().StringFixed(result.Currency.MinorUnits()),
		Currency:     result.Currency,
		Description:  description,
		Installments: req.Installments,
		Timestamp:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()
	if err := s.workflow.Submit(ctx, payload); err != nil {
		s.writeError(w, "SUBMISSION_ERROR", err.Error(), http.StatusBadGateway)
		return
	}

	s.writeJSON(w, &SubmitResponse{
		RequestID: uuid.NewString(),
		QuoteID:   quoteID,
		Status:    "submitted",
		Quote:     quoteDTO(result),
	}, http.StatusOK)
}

func (s *Server) buildForSubmit(req *SubmitRequest) (*types.QuoteResult, string, error) {
	switch req.Kind {
	case "website":
		if req.Website == nil {
			return nil, "", errors.Input("website configuration missing")
		}
		if err := validateWebsiteRequest(req.Website); err != nil {
			return nil, "", err
		}
		cfg := websiteConfigFrom(req.Website)
		description := fmt.Sprintf("Website creation (%s, %d pages)", cfg.SiteKind, cfg.PageCount)
		return s.engine.WebsiteQuote(cfg), description, nil

	case "marketing":
		if req.Marketing == nil {
			return nil, "", errors.Input("marketing configuration missing")
		}
		if err := validateMarketingRequest(req.Marketing); err != nil {
			return nil, "", err
		}
		cfg := marketingConfigFrom(req.Marketing)
		description := fmt.Sprintf("Monthly marketing plan (gmb %d, social %d, blog %d)",
			cfg.GmbPostsPerMonth, cfg.SocialPostsPerMonth, cfg.BlogArticlesPerMonth)
		return s.engine.MarketingQuote(cfg), description, nil

	default:
		return nil, "", errors.Input("kind must be website or marketing")
	}
}

// handleSlots handles GET /booking/slots?date=YYYY-MM-DD
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	slots := booking.SlotsForDate(date, rng)

	resp := &SlotsResponse{Date: dateStr, Slots: make([]string, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, slot.String())
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handlePacks handles GET /packs
func (s *Server) handlePacks(w http.ResponseWriter, r *http.Request) {
	type packEntry struct {
		quote.Pack
		Quote *QuoteDTO `json:"quote"`
	}
	entries := make([]packEntry, 0, 3)
	for _, p := range quote.Packs() {
		entries = append(entries, packEntry{
			Pack:  p,
			Quote: quoteDTO(s.engine.MarketingQuote(p.Config)),
		})
	}
	s.writeJSON(w, entries, http.StatusOK)
}

// handleRateCard handles GET /ratecard
func (s *Server) handleRateCard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.engine.Rates(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "agency-quote",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeQuote(w http.ResponseWriter, req interface{}, result *types.QuoteResult, start time.Time) {
	s.writeJSON(w, &QuoteResponse{
		RequestID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Quote:     quoteDTO(result),
		Metadata: ResponseMetadata{
			InputHash:     computeInputHash(req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, &ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Message: message,
	}, status)
}

// computeInputHash produces a deterministic hash of a request so identical
// configs can be correlated across recomputes
func computeInputHash(req interface{}) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
