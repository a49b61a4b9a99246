// Package gateway serves the single action-multiplexed endpoint the client
// talks to: one URL, the operation selected by the "action" query parameter.
package gateway

import (
	"encoding/json"
	"net/http"

	"supplydesk/internal/contract"
	"supplydesk/internal/logger"
	"supplydesk/internal/order"
	"supplydesk/internal/product"
	"supplydesk/internal/user"
	"supplydesk/internal/utils"

	"go.uber.org/zap"
)

type routeKey struct {
	method string
	action contract.Action
}

type Handler struct {
	users    user.Service
	products product.Service
	orders   order.Service
	routes   map[routeKey]http.HandlerFunc

	// authRequired turns off anonymous access to everything except login
	// and the product list. It is set whenever a signing secret exists.
	authRequired bool
}

func NewHandler(users user.Service, products product.Service, orders order.Service, authRequired bool) *Handler {
	h := &Handler{
		users:        users,
		products:     products,
		orders:       orders,
		authRequired: authRequired,
	}

	h.routes = make(map[routeKey]http.HandlerFunc)
	h.handle(http.MethodPost, contract.ActionLogin, h.Login)
	h.handle(http.MethodGet, contract.ActionProducts, h.ListProducts)
	h.handle(http.MethodPost, contract.ActionCreateProduct, h.requireAdmin(h.CreateProduct))
	h.handle(http.MethodPut, contract.ActionUpdateProduct, h.requireAdmin(h.UpdateProduct))
	h.handle(http.MethodGet, contract.ActionOrders, h.requireUser(h.ListOrders))
	h.handle(http.MethodPost, contract.ActionCreateOrder, h.requireUser(h.CreateOrder))
	h.handle(http.MethodPut, contract.ActionUpdateOrder, h.requireAdmin(h.UpdateOrder))
	return h
}

func (h *Handler) handle(method string, action contract.Action, fn http.HandlerFunc) {
	h.routes[routeKey{method, action}] = fn
}

// ServeHTTP dispatches on (method, action). Anything unrecognised is a 404.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := contract.Action(r.URL.Query().Get(contract.ActionParam))
	fn, ok := h.routes[routeKey{r.Method, action}]
	if !ok {
		logger.FromCtx(r.Context()).Debug("no route",
			zap.String("method", r.Method),
			zap.String("action", string(action)),
		)
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	fn(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	utils.WriteJSON(w, status, v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	utils.WriteJSONError(w, msg, status)
}

const maxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
