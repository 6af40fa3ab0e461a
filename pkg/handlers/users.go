package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/user"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type UserHandler struct {
	Repo   UsersRepo
	Logger *zap.SugaredLogger
}

type UsersRepo interface {
	GetOrCreate(ctx context.Context, email, name, image string) (*user.User, bool, error)
	Upgrade(ctx context.Context, email string) error
}

type RegisterUserReq struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type UserResponse struct {
	User    *user.User `json:"user"`
	Created bool       `json:"created"`
}

func (u *RegisterUserReq) validate() []*CustomError {
	email := &Validator{value: u.Email, location: "body", field: "email"}
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

// ResolveOrCreate returns the existing user for the email or creates a
// free-tier one. The created flag tells the two cases apart.
func (h *UserHandler) ResolveOrCreate(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req RegisterUserReq
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

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	image := ""
	if req.Image != nil {
		image = *req.Image
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	u, created, err := h.Repo.GetOrCreate(ctx, *req.Email, name, image)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	WriteJSON(w, &UserResponse{User: u, Created: created}, status)
}

// Upgrade flips the membership tier to premium. The client calls this after
// it lands on the success redirect of the checkout flow; there is no
// server-side payment verification. A missing user is a no-op.
func (h *UserHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := h.Repo.Upgrade(ctx, email)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "Membership upgraded successfully", http.StatusOK)
}
