package api

import (
	"net/http"

	"github.com/regulaai/regula/internal/config"
	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	protected := sessions.Require(runtime.Sessions, runtime.Logger)

	routes.Register(
		mux,
		domain.Auth.Routes(),
		domain.Contracts.Handler(cfg.API.MaxUploadSizeBytes()).Routes().Wrap(protected),
		domain.Analysis.Handler().Routes().Wrap(protected),
		domain.Assistant.Handler().Routes().Wrap(protected),
	)
}
