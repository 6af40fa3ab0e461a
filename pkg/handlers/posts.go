package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/membership"
	"github.com/ahasanshaker/forum-server/pkg/posts"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	PostsRepo PostsRepo
	Policy    PostPolicy
	Fanout    Announcer
	Logger    *zap.SugaredLogger
}

type PostsRepo interface {
	GetAll(context.Context) ([]*posts.Post, error)
	GetByID(context.Context, interface{}) (*posts.Post, error)
	Add(context.Context, *posts.Post) (interface{}, error)
	Update(ctx context.Context, id interface{}, fields map[string]interface{}) (bool, error)
	Delete(context.Context, interface{}) (bool, error)
	IncrementVote(ctx context.Context, id interface{}, direction posts.VoteDirection) error
	AddComment(ctx context.Context, id interface{}, authorName, authorImage, text string) (*posts.Comment, error)

	ParseID(string) (interface{}, error)
}

type PostPolicy interface {
	AuthorizePost(ctx context.Context, email, name, image string) (*membership.Decision, error)
}

type Announcer interface {
	AnnounceNewPost(ctx context.Context, authorEmail, authorName, title string) (int, error)
}

type CreatePostReq struct {
	AuthorEmail *string `json:"authorEmail"`
	AuthorName  *string `json:"authorName"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
}

func (p *CreatePostReq) validate() []*CustomError {
	email := &Validator{value: p.AuthorEmail, location: "body", field: "authorEmail"}
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

	title := &Validator{value: p.Title, location: "body", field: "title"}
	titleErr := func() *CustomError {
		err := title.Required()
		if err != nil {
			return err
		}
		err = title.Empty()
		if err != nil {
			return err
		}
		err = title.MaxLength(100)
		if err != nil {
			return err
		}
		return title.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
	}()

	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		return content.Empty()
	}()

	return mergeErrors(emailErr, titleErr, contentErr)
}

func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := h.PostsRepo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if result == nil {
		result = []*posts.Post{}
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if post == nil {
		WriteResponse(w, "Post not found", http.StatusNotFound)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

// Create runs the gated pipeline: authorize (which resolves or creates the
// author), insert the post, then fan out notifications. A fan-out failure is
// logged and does not undo the insert.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
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

	authorName := ""
	if req.AuthorName != nil {
		authorName = *req.AuthorName
	}
	if authorName == "" {
		authorName = membership.DefaultAuthorName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	decision, err := h.Policy.AuthorizePost(ctx, *req.AuthorEmail, authorName, "")
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !decision.Allowed {
		WriteJSON(w, &RejectionResponse{Message: decision.Message, Reason: decision.Reason}, http.StatusForbidden)
		return
	}

	// the post keeps the name the request supplied, which may differ from the
	// name the user registered with
	post := &posts.Post{
		AuthorEmail: *req.AuthorEmail,
		AuthorName:  authorName,
		Title:       *req.Title,
		Content:     *req.Content,
	}

	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post.ID = id

	count, err := h.Fanout.AnnounceNewPost(ctx, post.AuthorEmail, post.AuthorName, post.Title)
	if err != nil {
		// the post is already committed, so only log
		h.Logger.Errorf("notification fan-out failed for post %v: %v", post.ID, err)
	} else if count > 0 {
		h.Logger.Infof("notified %d users about post %v", count, post.ID)
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var fields map[string]interface{}
	err = json.Unmarshal(body, &fields)
	if err != nil || len(fields) == 0 {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	// any field may be overwritten except the identifier
	delete(fields, "id")
	delete(fields, "_id")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ok, err := h.PostsRepo.Update(ctx, id, fields)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "Post not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "Post updated successfully", http.StatusOK)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ok, err := h.PostsRepo.Delete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "Post not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "Post deleted successfully", http.StatusOK)
}

func (h *PostHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, posts.Up, "Upvoted successfully")
}

func (h *PostHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, posts.Down, "Downvoted successfully")
}

func (h *PostHandler) vote(w http.ResponseWriter, r *http.Request, direction posts.VoteDirection, ack string) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = h.PostsRepo.IncrementVote(ctx, id, direction)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, ack, http.StatusOK)
}
