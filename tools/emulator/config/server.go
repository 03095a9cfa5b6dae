package config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/raywall/glue-catalog-toolkit/protocol"
	"github.com/raywall/glue-catalog-toolkit/tools/emulator/types"
	"github.com/rs/zerolog/log"
)

// ServerConfig para cada servidor/porta
type ServerConfig struct {
	Port   int           `json:"port"`
	Routes []RouteConfig `json:"routes"`
}

// Router registra um handler por operação, selecionado pelo header
// X-Amz-Target.
func (s *ServerConfig) Router() *mux.Router {
	byOperation := make(map[string][]RouteConfig)
	var order []string
	for _, route := range s.Routes {
		if _, seen := byOperation[route.Operation]; !seen {
			order = append(order, route.Operation)
		}
		byOperation[route.Operation] = append(byOperation[route.Operation], route)
	}

	router := mux.NewRouter()
	for _, op := range order {
		router.HandleFunc("/", NewHandler(byOperation[op])).
			Methods(http.MethodPost).
			Headers("X-Amz-Target", protocol.Target(op))
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendResponse(w, types.ServiceError(400, "UnknownOperationException",
			fmt.Sprintf("operação não emulada: %s", r.Header.Get("X-Amz-Target"))))
	})
	router.MethodNotAllowedHandler = router.NotFoundHandler
	return router
}

// Start sobe o servidor e bloqueia até o contexto ser cancelado.
func (s *ServerConfig) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Int("port", s.Port).Int("routes", len(s.Routes)).Msg("Iniciando emulador do Glue")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("erro no servidor porta %d: %w", s.Port, err)
	}
	return nil
}
