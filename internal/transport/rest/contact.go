package rest

import (
	"encoding/json"
	"net/http"

	"github.com/kdtech/site-backend/internal/service/intake"
)

func (rt *Router) serveContact(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) > 0 {
		notFoundRoute(w)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	rt.createContact(w, r)
}

type createContactRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	MessageType string  `json:"message_type"`
}

func (rt *Router) createContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	input := intake.CreateContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Subject:     req.Subject,
		Message:     req.Message,
		MessageType: req.MessageType,
	}
	if ip := clientIP(r); ip != "" {
		input.IPAddress = &ip
	}
	if ua := r.UserAgent(); ua != "" {
		input.UserAgent = &ua
	}

	msg, err := rt.intake.CreateContact(r.Context(), input)
	if err != nil {
		handleError(w, r, rt.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "message received", msg)
}
