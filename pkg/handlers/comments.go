package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/posts"

	"github.com/gorilla/mux"
)

type AddCommentReq struct {
	AuthorName  *string `json:"authorName"`
	AuthorImage *string `json:"authorImage"`
	Text        *string `json:"text"`
}

type AddCommentResponse struct {
	Message string         `json:"message"`
	Comment *posts.Comment `json:"comment"`
}

func (c *AddCommentReq) validate() []*CustomError {
	text := &Validator{value: c.Text, location: "body", field: "text"}
	textErr := func() *CustomError {
		err := text.Required()
		if err != nil {
			return err
		}
		return text.Empty()
	}()

	name := &Validator{value: c.AuthorName, location: "body", field: "authorName"}
	nameErr := func() *CustomError {
		err := name.Required()
		if err != nil {
			return err
		}
		return name.Empty()
	}()

	return mergeErrors(nameErr, textErr)
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
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

	var req AddCommentReq
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

	authorImage := ""
	if req.AuthorImage != nil {
		authorImage = *req.AuthorImage
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	comment, err := h.PostsRepo.AddComment(ctx, id, *req.AuthorName, authorImage, *req.Text)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteJSON(w, &AddCommentResponse{Message: "Comment added successfully", Comment: comment}, http.StatusCreated)
}
