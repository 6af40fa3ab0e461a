package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/payments"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	Broker CheckoutBroker
	Logger *zap.SugaredLogger
}

type CheckoutBroker interface {
	CreateUpgradeSession(ctx context.Context, email string) (*payments.CheckoutSession, error)
}

type CheckoutSessionReq struct {
	Email *string `json:"email"`
}

func (c *CheckoutSessionReq) validate() []*CustomError {
	email := &Validator{value: c.Email, location: "body", field: "email"}
	emailErr := func() *CustomError {
		err := email.Required()
		if err != nil {
			return err
		}
		err = email.Empty()
		if err != nil {
			return err
		}
		return email.Email()
	}()

	return mergeErrors(emailErr)
}

// CreateCheckoutSession brokers the upgrade payment. The provider error text
// is passed through so the client can render it.
func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CheckoutSessionReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sess, err := h.Broker.CreateUpgradeSession(ctx, *req.Email)
	if err != nil {
		h.Logger.Errorf("checkout session creation failed: %v", err)
		WriteResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, sess, http.StatusOK)
}
