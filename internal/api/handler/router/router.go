// Package router embrulha o httprouter com registro declarativo de rotas
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/media-trends-api/pkg/apiErrors"
)

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

type Router struct {
	router *httprouter.Router
}

// New monta o router com todas as rotas dos grupos informados.
// Respostas de rota inexistente e de método errado saem em JSON,
// no mesmo formato de erro do restante da API.
func New(groups ...[]Route) Router {
	hr := httprouter.New()

	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", nil)
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado para esta rota", nil)
	})

	router := Router{router: hr}
	for _, group := range groups {
		router.addRoutes(group...)
	}

	return router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) addRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, route.Handler)
	}
}
