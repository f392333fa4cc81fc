package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/stakelabs/staking-ledger/internal/types"
)

// SenderAccountHeader carries the caller identity, supplied by the fronting
// host gateway. The service trusts its host for identity the way the
// embedded module trusted its chain.
const SenderAccountHeader = "X-Sender-Account"

type response struct {
	Data any `json:"data"`
}

type errorResponse struct {
	ErrorCode types.ErrorCode `json:"error_code"`
	Message   string          `json:"message"`
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	var params types.StakeRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, r, types.NewError(http.StatusBadRequest, types.ParseParams, err))
		return
	}

	receipt, err := s.service.Stake(r.Context(), sender(r), &params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResponse(w, r, receipt)
}

func (s *Server) handleUnstake(w http.ResponseWriter, r *http.Request) {
	var params types.UnstakeRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, r, types.NewError(http.StatusBadRequest, types.ParseParams, err))
		return
	}

	receipt, err := s.service.Unstake(r.Context(), sender(r), &params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResponse(w, r, receipt)
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var params types.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, r, types.NewError(http.StatusBadRequest, types.ParseParams, err))
		return
	}

	receipt, err := s.service.Claim(r.Context(), sender(r), &params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResponse(w, r, receipt)
}

func (s *Server) handleGetStake(w http.ResponseWriter, r *http.Request) {
	owner := types.AccountAddress(chi.URLParam(r, "owner"))
	writeResponse(w, r, s.service.GetStake(owner))
}

func (s *Server) handleGetTransitions(w http.ResponseWriter, r *http.Request) {
	owner := types.AccountAddress(chi.URLParam(r, "owner"))
	transitions, err := s.service.GetTransitions(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResponse(w, r, transitions)
}

func (s *Server) handleGetTransition(w http.ResponseWriter, r *http.Request) {
	transition, err := s.service.GetTransition(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResponse(w, r, transition)
}

func (s *Server) handleGetTotals(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, s.service.GetTotals())
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		writeError(w, r, types.NewError(http.StatusServiceUnavailable, types.InternalServiceError, err))
		return
	}
	writeResponse(w, r, "ok")
}

func sender(r *http.Request) types.AccountAddress {
	return types.AccountAddress(r.Header.Get(SenderAccountHeader))
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Data: data}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var typed *types.Error
	if !errors.As(err, &typed) {
		typed = types.NewInternalServiceError(err)
	}

	log.Ctx(r.Context()).Warn().Err(typed.Err).
		Str("errorCode", typed.ErrorCode.String()).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(typed.StatusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		ErrorCode: typed.ErrorCode,
		Message:   typed.Error(),
	}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode error response")
	}
}
