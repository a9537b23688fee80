package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/fiber"
	"github.com/navaneethred/opticfibresimulation/internal/logging"
	"github.com/navaneethred/opticfibresimulation/internal/loss"
	"github.com/navaneethred/opticfibresimulation/internal/sweep"
)

// fiberResponse describes one preset in the /api/v1/fibers listing.
type fiberResponse struct {
	Name               string  `json:"name"`
	AttenuationDBPerKm float64 `json:"attenuation_db_per_km"`
	BaseBendLossDB     float64 `json:"base_bend_loss_db"`
	IdealBendRadiusCm  float64 `json:"ideal_bend_radius_cm"`
	Description        string  `json:"description"`
}

// breakdownResponse is the itemized loss block of a compute response.
type breakdownResponse struct {
	LengthLossDB      float64 `json:"length_loss_db"`
	BendLossPerTurnDB float64 `json:"bend_loss_per_turn_db"`
	TurnsLossDB       float64 `json:"turns_loss_db"`
	TotalLossDB       float64 `json:"total_loss_db"`
	OutputCurrentUA   float64 `json:"output_current_ua"`
}

// computeResponse is the body of a successful /api/v1/compute call.
type computeResponse struct {
	Fiber           string            `json:"fiber"`
	Mode            string            `json:"mode"`
	LossDB          float64           `json:"loss_db"`
	OutputCurrentUA float64           `json:"output_current_ua"`
	Breakdown       breakdownResponse `json:"breakdown"`
}

// sweepPointResponse is one sample of a sweep response.
type sweepPointResponse struct {
	X      float64 `json:"x"`
	LossDB float64 `json:"loss_db"`
}

// sweepResponse is the body of a successful /api/v1/sweep call.
type sweepResponse struct {
	Fiber  string               `json:"fiber"`
	Mode   string               `json:"mode"`
	Points []sweepPointResponse `json:"points"`
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response failed", err)
	}
}

// writeError maps err to an HTTP status and serves it as JSON. Validation
// problems are the client's fault; unknown fibers are a 404; anything else
// is a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	recordSpanError(r, err)

	status := http.StatusInternalServerError
	switch {
	case apperrors.IsUnknownFiberType(err):
		status = http.StatusNotFound
	case apperrors.IsInvalidParameter(err):
		status = http.StatusBadRequest
	default:
		var ve apperrors.ValidationError
		if asValidation(err, &ve) {
			status = http.StatusBadRequest
		}
	}

	s.logger.Debug("request failed",
		logging.String("path", r.URL.Path),
		logging.Int("status", status),
		logging.Err(err))
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func asValidation(err error, target *apperrors.ValidationError) bool {
	ve, ok := err.(apperrors.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

// requireGet rejects non-GET methods. Returns false when the request was
// already answered.
func (s *Server) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return false
	}
	return true
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFibers lists the supported fiber presets.
func (s *Server) handleFibers(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	presets := fiber.All()
	resp := make([]fiberResponse, 0, len(presets))
	for _, ft := range presets {
		resp = append(resp, fiberResponse{
			Name:               ft.Name,
			AttenuationDBPerKm: ft.AttenuationDBPerKm,
			BaseBendLossDB:     ft.BaseBendLossDB,
			IdealBendRadiusCm:  ft.IdealBendRadiusCm,
			Description:        ft.Description,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// parseRequest assembles a loss.Request and mode from query parameters.
// Unset parameters keep sensible defaults so a minimal query works.
func (s *Server) parseRequest(r *http.Request) (loss.Mode, loss.Request, error) {
	q := r.URL.Query()

	ft, err := fiber.Get(q.Get("fiber"))
	if err != nil {
		return 0, loss.Request{}, err
	}

	modeName := q.Get("mode")
	if modeName == "" {
		modeName = "length"
	}
	mode, err := loss.ParseMode(modeName)
	if err != nil {
		return 0, loss.Request{}, apperrors.ValidationError{Field: "mode", Message: err.Error()}
	}

	model := loss.ModelEmpirical
	if name := q.Get("model"); name != "" {
		model, err = loss.ParseBendModel(name)
		if err != nil {
			return 0, loss.Request{}, apperrors.ValidationError{Field: "model", Message: err.Error()}
		}
	}

	req := loss.Request{
		Fiber:        ft,
		TemperatureC: 25,
		BendRadiusCm: ft.IdealBendRadiusCm,
		Model:        model,
	}

	floatParams := []struct {
		key string
		dst *float64
	}{
		{"length", &req.LengthKm},
		{"temp", &req.TemperatureC},
		{"radius", &req.BendRadiusCm},
		{"angle", &req.BendAngleDeg},
		{"current", &req.InputCurrentUA},
	}
	for _, p := range floatParams {
		if raw := q.Get(p.key); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, loss.Request{}, apperrors.ValidationError{
					Field:   p.key,
					Message: fmt.Sprintf("not a number: %q", raw),
				}
			}
			*p.dst = v
		}
	}
	if raw := q.Get("turns"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, loss.Request{}, apperrors.ValidationError{
				Field:   "turns",
				Message: fmt.Sprintf("not an integer: %q", raw),
			}
		}
		req.Turns = v
	}

	return mode, req, nil
}

// handleCompute evaluates a single point and returns the result with its
// itemized breakdown.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	mode, req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := loss.Compute(mode, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	bd, err := loss.ComputeBreakdown(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, computeResponse{
		Fiber:           req.Fiber.Name,
		Mode:            mode.String(),
		LossDB:          res.LossDB,
		OutputCurrentUA: res.OutputCurrentUA,
		Breakdown: breakdownResponse{
			LengthLossDB:      bd.LengthLossDB,
			BendLossPerTurnDB: bd.BendLossPerTurnDB,
			TurnsLossDB:       bd.TurnsLossDB,
			TotalLossDB:       bd.TotalLossDB,
			OutputCurrentUA:   bd.OutputCurrentUA,
		},
	})
}

// handleSweep evaluates a swept curve. The sample count is capped by the
// security configuration.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	mode, req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	rng := sweep.Range{Samples: sweep.DefaultSamples}
	rangeParams := []struct {
		key string
		dst *float64
	}{
		{"from", &rng.From},
		{"to", &rng.To},
	}
	for _, p := range rangeParams {
		raw := q.Get(p.key)
		if raw == "" {
			s.writeError(w, r, apperrors.ValidationError{Field: p.key, Message: "required"})
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, r, apperrors.ValidationError{
				Field:   p.key,
				Message: fmt.Sprintf("not a number: %q", raw),
			})
			return
		}
		*p.dst = v
	}
	if raw := q.Get("samples"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, apperrors.ValidationError{
				Field:   "samples",
				Message: fmt.Sprintf("not an integer: %q", raw),
			})
			return
		}
		rng.Samples = v
	}
	if rng.Samples > s.security.MaxSweepSamples {
		s.writeError(w, r, apperrors.ValidationError{
			Field:   "samples",
			Message: fmt.Sprintf("exceeds the maximum of %d", s.security.MaxSweepSamples),
		})
		return
	}

	var series *sweep.Series
	if q.Get("total") == "true" {
		series, err = sweep.BuildTotal(mode, req, rng)
	} else {
		series, err = sweep.Build(mode, req, rng)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Turns sweeps derive their point count from the range span, not the
	// samples parameter, so the cap must apply to the built series too.
	if series.Len() > s.security.MaxSweepSamples {
		s.writeError(w, r, apperrors.ValidationError{
			Field:   "to",
			Message: fmt.Sprintf("range yields %d points, exceeding the maximum of %d", series.Len(), s.security.MaxSweepSamples),
		})
		return
	}

	points := series.Points()
	resp := sweepResponse{
		Fiber:  req.Fiber.Name,
		Mode:   mode.String(),
		Points: make([]sweepPointResponse, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, sweepPointResponse{X: p.X, LossDB: p.LossDB})
	}
	s.writeJSON(w, http.StatusOK, resp)
}
