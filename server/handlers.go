package server

import (
	"errors"
	"fmt"
	"net/http"

	"cosmossdk.io/math"
	"github.com/gorilla/mux"

	"github.com/GPTx-global/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

type roundConsulsResponse struct {
	Round   types.Bytes32   `json:"round"`
	Consuls []types.Bytes32 `json:"consuls"`
}

type roundMutatedResponse struct {
	Round   types.Bytes32 `json:"round"`
	Mutated bool          `json:"mutated"`
}

type nebulaResponse struct {
	Nebula string `json:"nebula"`
}

type swapStatusResponse struct {
	SwapID ibporttypes.SwapID        `json:"swap_id"`
	Status ibporttypes.RequestStatus `json:"status"`
}

type balanceResponse struct {
	Address string    `json:"address"`
	Balance math.Uint `json:"balance"`
}

func wordVar(r *http.Request, name string) (types.Bytes32, error) {
	w, err := types.ParseBytes32(mux.Vars(r)[name])
	if err != nil {
		return types.Bytes32{}, badRequest("%s: %s", name, err)
	}
	return w, nil
}

func swapIDVar(r *http.Request) (ibporttypes.SwapID, error) {
	id, err := ibporttypes.ParseSwapID(mux.Vars(r)["id"])
	if err != nil {
		return ibporttypes.SwapID{}, badRequest("id: %s", err)
	}
	return id, nil
}

func (s *Server) handleConsuls(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.q.Consuls())
}

func (s *Server) handleConsulsByRound(w http.ResponseWriter, r *http.Request) {
	round, err := wordVar(r, "round")
	if err != nil {
		s.writeError(w, err)
		return
	}
	consuls := s.q.ConsulsByRound(round)
	if consuls == nil {
		consuls = []types.Bytes32{}
	}
	s.writeJSON(w, http.StatusOK, roundConsulsResponse{Round: round, Consuls: consuls})
}

func (s *Server) handleOracles(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.q.Oracles())
}

func (s *Server) handleRoundMutated(w http.ResponseWriter, r *http.Request) {
	round, err := wordVar(r, "round")
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, roundMutatedResponse{Round: round, Mutated: s.q.IsRoundMutated(round)})
}

func (s *Server) handleSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := wordVar(r, "id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	sub, err := s.q.Subscription(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleNebula(w http.ResponseWriter, _ *http.Request) {
	var resp nebulaResponse
	if nebula := s.q.Nebula(); !nebula.Empty() {
		resp.Nebula = nebula.String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSwapStatus(w http.ResponseWriter, r *http.Request) {
	id, err := swapIDVar(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, swapStatusResponse{SwapID: id, Status: s.q.SwapStatus(id)})
}

func (s *Server) handleUnwrapRequest(w http.ResponseWriter, r *http.Request) {
	id, err := swapIDVar(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	req, err := s.q.UnwrapRequest(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleSupply(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.q.Supply())
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := types.ParseAccount(mux.Vars(r)["address"])
	if err != nil {
		s.writeError(w, badRequest("address: %s", err))
		return
	}
	s.writeJSON(w, http.StatusOK, balanceResponse{Address: addr.String(), Balance: s.q.Balance(addr)})
}
