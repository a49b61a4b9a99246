package gateway

import (
	"net/http"

	"supplydesk/internal/contract"
	"supplydesk/internal/logger"
	"supplydesk/internal/middleware"
	"supplydesk/internal/order"
	"supplydesk/internal/product"
	"supplydesk/internal/user"
	"supplydesk/internal/utils"

	"go.uber.org/zap"
)

// fail logs server-side failures and writes the mapped error response.
func fail(w http.ResponseWriter, r *http.Request, method string, err error) {
	status, msg := mapError(err)
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("method", method),
	)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Info("request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeError(w, status, msg)
}

// requireUser rejects anonymous callers when authentication is enforced.
// In open mode every request passes.
func (h *Handler) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.ClaimsFromContext(r.Context()); !ok && h.authRequired {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		next(w, r)
	}
}

// requireAdmin additionally rejects authenticated non-admin callers.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Role != user.RoleAdmin {
			writeError(w, http.StatusForbidden, msgForbidden)
			return
		}
		next(w, r)
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req contract.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		fail(w, r, "Login", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.LoginResponse{
		User: contract.User{
			ID:       u.ID,
			Username: u.Username,
			IsAdmin:  u.IsAdmin,
		},
		Token: token,
	})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetList(r.Context())
	if err != nil {
		fail(w, r, "ListProducts", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.ProductsResponse{
		Products: product.MapProductsToResponse(products),
	})
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	p, err := h.products.Create(r.Context(), product.MapCreateRequest(req))
	if err != nil {
		fail(w, r, "CreateProduct", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.ProductResponse{Product: product.MapProductToResponse(p)})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	p, err := h.products.Update(r.Context(), product.MapUpdateRequest(req))
	if err != nil {
		fail(w, r, "UpdateProduct", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.ProductResponse{Product: product.MapProductToResponse(p)})
}

// ListOrders returns every order, or one user's orders when user_id is given.
// Authenticated employees only ever see their own.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if raw := r.URL.Query().Get(contract.UserIDParam); raw != "" {
		id, ok := utils.ParseInt64(raw)
		if !ok || id <= 0 {
			writeError(w, http.StatusBadRequest, msgInvalidUserID)
			return
		}
		userID = &id
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Role != user.RoleAdmin {
		own := claims.UserID
		userID = &own
	}

	orders, err := h.orders.GetOrders(r.Context(), userID)
	if err != nil {
		fail(w, r, "ListOrders", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.OrdersResponse{Orders: order.MapOrdersToResponse(orders)})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateOrderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Role != user.RoleAdmin && claims.UserID != req.UserID {
		writeError(w, http.StatusForbidden, msgForbidden)
		return
	}

	orderID, err := h.orders.CreateOrder(r.Context(), order.MapCreateRequest(req))
	if err != nil {
		fail(w, r, "CreateOrder", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.CreateOrderResponse{OrderID: orderID})
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateOrderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		fail(w, r, "UpdateOrder", err)
		return
	}

	if err := h.orders.UpdateOrderStatus(r.Context(), req.OrderID, status); err != nil {
		fail(w, r, "UpdateOrder", err)
		return
	}

	writeJSON(w, http.StatusOK, contract.UpdateOrderResponse{Success: true})
}
