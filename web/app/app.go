// Package app serves the browser views: login, contract upload, the risk
// dashboard, the assistant chatbot, and the contract improver. All views
// except login require a live session and redirect to login without one.
package app

import (
	"embed"
	"net/http"

	"github.com/regulaai/regula/internal/sessions"
	"github.com/regulaai/regula/pkg/module"
	"github.com/regulaai/regula/pkg/web"
)

//go:embed layouts/*.html
var layoutFS embed.FS

//go:embed views/*.html
var viewFS embed.FS

//go:embed static/*
var staticFS embed.FS

const layout = "main"

var (
	loginView = web.ViewDef{
		Route:    "/login",
		Template: "login.html",
		Title:    "Regula | Sign In",
		Bundle:   "login",
	}

	views = []web.ViewDef{
		{Route: "/", Template: "upload.html", Title: "Regula | Upload Contract", Bundle: "upload"},
		{Route: "/dashboard", Template: "dashboard.html", Title: "Regula | Risk Dashboard", Bundle: "dashboard"},
		{Route: "/chatbot", Template: "chatbot.html", Title: "Regula | AI Chatbot", Bundle: "chatbot"},
		{Route: "/improve", Template: "improve.html", Title: "Regula | Improve Contract", Bundle: "improve"},
	}
)

// NewModule creates the view module mounted at basePath.
func NewModule(basePath string, store *sessions.Store) (*module.Module, error) {
	all := append([]web.ViewDef{loginView}, views...)
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "layouts/*.html", "views", basePath, all)
	if err != nil {
		return nil, err
	}

	protect := sessions.RequireView(store, basePath+loginView.Route)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+loginView.Route, ts.PageHandler(layout, loginView))
	for _, v := range views {
		pattern := "GET " + v.Route
		if v.Route == "/" {
			pattern = "GET /{$}"
		}
		mux.Handle(pattern, protect(ts.PageHandler(layout, v)))
	}
	mux.Handle("GET /static/", web.DistServer(staticFS, "static", "/static/"))

	return module.New(basePath, mux), nil
}
