package rest

import (
	"encoding/json"
	"net/http"

	"github.com/kdtech/site-backend/internal/service/intake"
)

func (rt *Router) serveQuotes(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) > 0 {
		notFoundRoute(w)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	rt.createQuote(w, r)
}

type createQuoteRequest struct {
	CustomerName       string   `json:"customer_name"`
	CustomerEmail      string   `json:"customer_email"`
	CustomerPhone      *string  `json:"customer_phone"`
	CompanyName        *string  `json:"company_name"`
	ServiceType        string   `json:"service_type"`
	ProjectDescription string   `json:"project_description"`
	Requirements       []string `json:"requirements"`
	BudgetRange        *string  `json:"budget_range"`
	Timeline           *string  `json:"timeline"`
}

func (rt *Router) createQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	quote, err := rt.intake.CreateQuote(r.Context(), intake.CreateQuoteInput{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		CompanyName:        req.CompanyName,
		ServiceType:        req.ServiceType,
		ProjectDescription: req.ProjectDescription,
		Requirements:       req.Requirements,
		BudgetRange:        req.BudgetRange,
		Timeline:           req.Timeline,
	})
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "quote request received", quote)
}
