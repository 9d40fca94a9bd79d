package rest

import (
	"encoding/json"
	"net/http"

	"github.com/kdtech/site-backend/internal/domain"
	"github.com/kdtech/site-backend/internal/service/order"
)

func (rt *Router) serveOrders(w http.ResponseWriter, r *http.Request, rest []string) {
	switch len(rest) {
	case 0:
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		rt.createOrder(w, r)
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		rt.getOrder(w, r, rest[0])
	default:
		notFoundRoute(w)
	}
}

type orderItemRequest struct {
	ItemType        domain.ItemType `json:"item_type"`
	ItemID          int64           `json:"item_id"`
	ItemName        string          `json:"item_name"`
	ItemDescription *string         `json:"item_description"`
	Quantity        int             `json:"quantity"`
	UnitPrice       float64         `json:"unit_price"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   *string            `json:"customer_phone"`
	CompanyName     *string            `json:"company_name"`
	BillingAddress  *string            `json:"billing_address"`
	ShippingAddress *string            `json:"shipping_address"`
	OrderType       string             `json:"order_type"`
	PaymentMethod   *string            `json:"payment_method"`
	Notes           *string            `json:"notes"`
	Items           []orderItemRequest `json:"items"`
}

func (rt *Router) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	items := make([]order.OrderItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, order.OrderItemInput{
			ItemType:        line.ItemType,
			ItemID:          line.ItemID,
			ItemName:        line.ItemName,
			ItemDescription: line.ItemDescription,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
		})
	}

	created, err := rt.orders.CreateOrder(r.Context(), order.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CompanyName:     req.CompanyName,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		OrderType:       req.OrderType,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Items:           items,
	})
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "order created", created)
}

func (rt *Router) getOrder(w http.ResponseWriter, r *http.Request, ref string) {
	id, slug := parseRef(ref)
	if slug != "" {
		notFoundRoute(w)
		return
	}

	o, err := rt.orders.GetOrder(r.Context(), id)
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, "order retrieved", o)
}
