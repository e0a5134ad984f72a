// Package server exposes the projection calculator, the scenario simulator
// and the station catalogue over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/internal/scenario"
	"github.com/iwvelando/parcel-projection/internal/store"
	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgMissingParameters = "Missing required parameters"

// Options are the collaborators of the HTTP handler. A nil Calculator uses
// the default calibration and a nil Store is an in-memory store seeded with
// the built-in stations.
type Options struct {
	Calculator  *projection.Calculator
	Store       store.Store
	MaxBodySize int64
	Version     string
}

type handler struct {
	logger      *zap.Logger
	calc        *projection.Calculator
	store       store.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler serving the JSON API.
func NewHandler(logger *zap.Logger, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	calc := opts.Calculator
	if calc == nil {
		var err error
		calc, err = projection.NewCalculator(logger, projection.DefaultParams())
		if err != nil {
			return nil, err
		}
	}

	st := opts.Store
	if st == nil {
		mem, err := store.NewMemoryStore(logger, store.DefaultStations())
		if err != nil {
			return nil, fmt.Errorf("failed to seed station store: %w", err)
		}
		st = mem
	}

	h := &handler{
		logger:      logger,
		calc:        calc,
		store:       st,
		maxBodySize: opts.MaxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Projection calculator
	mux.HandleFunc("POST /api/financial-projection", h.handleProjection)
	mux.HandleFunc("POST /api/financial-projection/schedule", h.handleSchedule)

	// Scenario simulator
	mux.HandleFunc("POST /api/scenario-simulation", h.handleSimulation)
	mux.HandleFunc("GET /api/scenarios", h.handleScenarios)

	// Station catalogue and contact form
	mux.HandleFunc("GET /api/stations", h.handleListStations)
	mux.HandleFunc("GET /api/stations/{id}", h.handleGetStation)
	mux.HandleFunc("POST /api/contact", h.handleCreateContact)
	mux.HandleFunc("GET /api/contacts", h.handleListContacts)

	mux.HandleFunc("GET /api/version", h.handleVersion)

	return withRequestID(logger, mux), nil
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"

	in, mode, ok := h.decodeProjection(w, r, op)
	if !ok {
		return
	}

	result, err := h.calc.Calculate(in, mode)
	if err != nil {
		h.respondProjectionError(w, r, err, op)
		return
	}

	h.logger.Info("projection computed",
		zap.String("op", op),
		zap.String("requestID", RequestID(r.Context())),
		zap.Int("parcelCount", in.ParcelCount),
		zap.String("irrMode", string(result.IRRMode)),
		zap.Int("warnings", len(result.Warnings)),
	)

	h.writeJSON(w, http.StatusOK, newProjectionResponse(result))
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"

	in, _, ok := h.decodeProjection(w, r, op)
	if !ok {
		return
	}

	sched, err := h.calc.Schedule(in)
	if err != nil {
		h.respondProjectionError(w, r, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, sched)
}

// decodeProjection reads a projection request. The IRR mode may come from the
// body or from the irr query parameter; the body wins.
func (h *handler) decodeProjection(w http.ResponseWriter, r *http.Request, op string) (projection.Input, projection.IRRMode, bool) {
	var req projectionRequest
	if !h.decodeBody(w, r, &req, op) {
		return projection.Input{}, "", false
	}

	in, err := req.toInput()
	if err != nil {
		h.respondProjectionError(w, r, err, op)
		return projection.Input{}, "", false
	}

	rawMode := req.IRRMode
	if rawMode == "" {
		rawMode = r.URL.Query().Get("irr")
	}
	mode, err := projection.ParseIRRMode(rawMode)
	if err != nil {
		h.respondProjectionError(w, r, &fieldError{field: fieldIRRMode, reason: err.Error()}, op)
		return projection.Input{}, "", false
	}
	return in, mode, true
}

func (h *handler) respondProjectionError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var fieldErr *fieldError
	var inputErr *projection.InvalidInputError
	switch {
	case errors.As(err, &fieldErr):
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: msgMissingParameters,
			Field:   fieldErr.field,
			Error:   err.Error(),
		}, op)
	case errors.As(err, &inputErr):
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: msgMissingParameters,
			Field:   wireField(inputErr.Field),
			Error:   err.Error(),
		}, op)
	case errors.Is(err, projection.ErrDivergentPayback):
		h.respondErrorWithOp(w, r, http.StatusUnprocessableEntity, errorResponse{
			Message: "Projection has no payback period",
			Error:   err.Error(),
		}, op)
	case errors.Is(err, projection.ErrOutOfRange):
		h.respondErrorWithOp(w, r, http.StatusUnprocessableEntity, errorResponse{
			Message: "Projection is out of range",
			Error:   err.Error(),
		}, op)
	default:
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
			Message: "Error calculating financial projection",
			Error:   err.Error(),
		}, op)
	}
}

func (h *handler) handleSimulation(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulation"

	var req simulationRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	if req.Investment == "" {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: msgMissingParameters,
			Field:   "investment",
		}, op)
		return
	}
	investment, err := decimal.NewFromString(req.Investment.String())
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: msgMissingParameters,
			Field:   "investment",
			Error:   err.Error(),
		}, op)
		return
	}

	sim, err := scenario.Simulate(req.Project, req.Scenario, investment)
	if err != nil {
		resp := errorResponse{Message: msgMissingParameters, Error: err.Error()}
		switch {
		case errors.Is(err, scenario.ErrUnknownProject):
			resp.Field = "project"
		case errors.Is(err, scenario.ErrUnknownScenario):
			resp.Field = "scenario"
		case errors.Is(err, scenario.ErrInvalidAmount):
			resp.Field = "investment"
		default:
			h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
				Message: "Error running simulation",
				Error:   err.Error(),
			}, op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, resp, op)
		return
	}

	h.writeJSON(w, http.StatusOK, newSimulationResponse(sim))
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects":  scenario.Projects(),
		"scenarios": scenario.Scenarios(),
	})
}

func (h *handler) handleListStations(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleListStations"

	stations, err := h.store.ListStations(r.Context())
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
			Message: "Error fetching stations",
			Error:   err.Error(),
		}, op)
		return
	}
	h.writeJSON(w, http.StatusOK, stations)
}

func (h *handler) handleGetStation(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleGetStation"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: "Invalid station id",
			Field:   "id",
		}, op)
		return
	}

	station, err := h.store.GetStation(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondErrorWithOp(w, r, http.StatusNotFound, errorResponse{
				Message: "Station not found",
			}, op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
			Message: "Error fetching station",
			Error:   err.Error(),
		}, op)
		return
	}
	h.writeJSON(w, http.StatusOK, station)
}

func (h *handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCreateContact"

	var req store.InsertContact
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	contact, err := h.store.CreateContact(r.Context(), req)
	if err != nil {
		var validationErr *store.ValidationError
		if errors.As(err, &validationErr) {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
				Message: "Invalid contact data",
				Field:   validationErr.Field,
				Error:   err.Error(),
			}, op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
			Message: "Error saving contact",
			Error:   err.Error(),
		}, op)
		return
	}
	h.writeJSON(w, http.StatusCreated, contact)
}

func (h *handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleListContacts"

	contacts, err := h.store.ListContacts(r.Context())
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, errorResponse{
			Message: "Error fetching contacts",
			Error:   err.Error(),
		}, op)
		return
	}
	h.writeJSON(w, http.StatusOK, contacts)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeBody decodes a JSON body into dst, writing the error response itself
// when decoding fails.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge, errorResponse{
				Message: fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize),
			}, op)
			return false
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
				Message: msgMissingParameters,
				Field:   typeErr.Field,
				Error:   err.Error(),
			}, op)
			return false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
			Error:   err.Error(),
		}, op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, payload errorResponse, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("requestID", RequestID(r.Context())),
		zap.Int("status", status),
		zap.String("message", payload.Message),
	}
	if payload.Error != "" {
		fields = append(fields, zap.String("error", payload.Error))
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Warn("request rejected", fields...)
	}

	h.writeJSON(w, status, payload)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
