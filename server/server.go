// Package server exposes the bridge state over a read-only JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
)

const (
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
)

// Querier is the read side of the application.
type Querier interface {
	Consuls() app.ConsulsInfo
	ConsulsByRound(round types.Bytes32) []types.Bytes32
	Oracles() app.OraclesInfo
	IsRoundMutated(round types.Bytes32) bool
	Subscription(id types.Bytes32) (nebulatypes.Subscription, error)
	SwapStatus(id ibporttypes.SwapID) ibporttypes.RequestStatus
	UnwrapRequest(id ibporttypes.SwapID) (ibporttypes.UnwrapRequest, error)
	Nebula() sdk.AccAddress
	Balance(addr sdk.AccAddress) math.Uint
	Supply() app.SupplyInfo
}

var _ Querier = (*app.GravityApp)(nil)

type Server struct {
	logger log.Logger
	q      Querier
	router *mux.Router
	srv    *http.Server
}

// New builds the router. Requests from allowedOrigins pass the CORS check.
func New(logger log.Logger, q Querier, allowedOrigins []string) *Server {
	s := &Server{
		logger: logger.With("module", "server"),
		q:      q,
		router: mux.NewRouter(),
	}
	s.registerRoutes()

	s.srv = &http.Server{
		Handler: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}).Handler(s.router),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
	s.logger.Info("API created", "allowed_origins", strings.Join(allowedOrigins, ","))
	return s
}

func (s *Server) registerRoutes() {
	r := s.router.Methods(http.MethodGet).Subrouter()

	r.HandleFunc("/gravity/consuls", s.handleConsuls)
	r.HandleFunc("/gravity/consuls/{round}", s.handleConsulsByRound)
	r.HandleFunc("/nebula/oracles", s.handleOracles)
	r.HandleFunc("/nebula/rounds/{round}", s.handleRoundMutated)
	r.HandleFunc("/nebula/subscriptions/{id}", s.handleSubscription)
	r.HandleFunc("/ibport/nebula", s.handleNebula)
	r.HandleFunc("/ibport/swaps/{id}/status", s.handleSwapStatus)
	r.HandleFunc("/ibport/swaps/{id}/unwrap", s.handleUnwrapRequest)
	r.HandleFunc("/token/supply", s.handleSupply)
	r.HandleFunc("/token/balances/{address}", s.handleBalance)
}

// Handler returns the CORS wrapped router.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Serve blocks serving on listener until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("serving API", "address", listener.Addr().String())
	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	_ = s.srv.Close()
	return err
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, nebulatypes.ErrSubscriptionNotFound), errors.Is(err, ibporttypes.ErrNotFound):
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
