package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahasanshaker/forum-server/pkg/membership"
	"github.com/ahasanshaker/forum-server/pkg/posts"
	"github.com/ahasanshaker/forum-server/pkg/user"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var postIDs = []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

var testPostData = []*posts.Post{
	{
		ID:          postIDs[1],
		AuthorEmail: "b@example.com",
		AuthorName:  "b",
		Title:       "second post",
		Content:     "newer",
		Comments:    []*posts.Comment{},
		Time:        "2/2/2026, 10:00:00 AM",
	},
	{
		ID:          postIDs[0],
		AuthorEmail: "a@example.com",
		AuthorName:  "a",
		Title:       "first post",
		Content:     "older",
		Comments:    []*posts.Comment{},
		Time:        "1/1/2026, 9:00:00 AM",
	},
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestPostsGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

	mockRepo.EXPECT().GetAll(gomock.Any()).Return(testPostData, nil)

	r := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	h.GetAll(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, but was %d", w.Code)
	}

	var result []*posts.Post
	body, _ := ioutil.ReadAll(w.Result().Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 posts, but was %d", len(result))
	}
	if result[0].Title != "second post" || result[1].Title != "first post" {
		t.Errorf("newest-first order broken: %s, %s", result[0].Title, result[1].Title)
	}
}

func TestPostsGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

	id := postIDs[0]
	mockRepo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/posts/"+id.Hex(), nil)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()
	h.GetByID(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, but was %d", w.Code)
	}
}

func TestPostsGetByIDBadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

	mockRepo.EXPECT().ParseID("oops").Return(nil, errors.New("bad hex"))

	r := httptest.NewRequest(http.MethodGet, "/posts/oops", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "oops"})
	w := httptest.NewRecorder()
	h.GetByID(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, but was %d", w.Code)
	}
}

func TestPostsCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	mockPolicy := NewMockPostPolicy(ctrl)
	mockAnnouncer := NewMockAnnouncer(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Policy: mockPolicy, Fanout: mockAnnouncer, Logger: testLogger()}

	newID := primitive.NewObjectID()
	author := &user.User{Email: "a@example.com", Name: "a", Membership: user.Free}

	mockPolicy.EXPECT().AuthorizePost(gomock.Any(), "a@example.com", "a", "").
		Return(&membership.Decision{Allowed: true, User: author}, nil)
	mockRepo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(&posts.Post{})).
		Return(newID, nil)
	mockAnnouncer.EXPECT().AnnounceNewPost(gomock.Any(), "a@example.com", "a", "test title").
		Return(2, nil)

	reqBody, _ := json.Marshal(map[string]string{
		"authorEmail": "a@example.com",
		"authorName":  "a",
		"title":       "test title",
		"content":     "test content",
	})
	r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, but was %d, body %s", w.Code, w.Body.String())
	}

	var created posts.Post
	body, _ := ioutil.ReadAll(w.Result().Body)
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.ID != newID.Hex() {
		t.Errorf("expected id %s, but was %v", newID.Hex(), created.ID)
	}
	if created.Title != "test title" {
		t.Errorf("unexpected title: %s", created.Title)
	}
}

type createAuthorNameCase struct {
	name         string
	reqName      string
	userName     string
	expectedName string
}

var createAuthorNameCases = []createAuthorNameCase{
	{
		name:         "RequestNameWinsOverDirectoryName",
		reqName:      "Bob",
		userName:     "",
		expectedName: "Bob",
	},
	{
		name:         "EmptyNameDefaults",
		reqName:      "",
		userName:     "a",
		expectedName: membership.DefaultAuthorName,
	},
}

func TestPostsCreateAuthorName(t *testing.T) {
	for i, c := range createAuthorNameCases {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockPostsRepo(ctrl)
		mockPolicy := NewMockPostPolicy(ctrl)
		mockAnnouncer := NewMockAnnouncer(ctrl)
		h := &PostHandler{PostsRepo: mockRepo, Policy: mockPolicy, Fanout: mockAnnouncer, Logger: testLogger()}

		newID := primitive.NewObjectID()
		author := &user.User{Email: "x@example.com", Name: c.userName, Membership: user.Free}

		var added *posts.Post
		mockPolicy.EXPECT().AuthorizePost(gomock.Any(), "x@example.com", c.expectedName, "").
			Return(&membership.Decision{Allowed: true, User: author}, nil)
		mockRepo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(&posts.Post{})).
			Do(func(_ context.Context, p *posts.Post) { added = p }).
			Return(newID, nil)
		mockAnnouncer.EXPECT().AnnounceNewPost(gomock.Any(), "x@example.com", c.expectedName, "test title").
			Return(0, nil)

		reqBody, _ := json.Marshal(map[string]string{
			"authorEmail": "x@example.com",
			"authorName":  c.reqName,
			"title":       "test title",
			"content":     "test content",
		})
		r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(reqBody))
		w := httptest.NewRecorder()
		h.Create(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("test #%d %s fail, expected status 201, but was %d, body %s", i, c.name, w.Code, w.Body.String())
		}
		if added == nil || added.AuthorName != c.expectedName {
			t.Errorf("test #%d %s fail, expected stored authorName %q, but was %v", i, c.name, c.expectedName, added)
		}

		var created posts.Post
		body, _ := ioutil.ReadAll(w.Result().Body)
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("test #%d %s fail, bad response body: %v", i, c.name, err)
		}
		if created.AuthorName != c.expectedName {
			t.Errorf("test #%d %s fail, expected authorName %q, but was %q", i, c.name, c.expectedName, created.AuthorName)
		}
	}
}

func TestPostsCreateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	mockPolicy := NewMockPostPolicy(ctrl)
	mockAnnouncer := NewMockAnnouncer(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Policy: mockPolicy, Fanout: mockAnnouncer, Logger: testLogger()}

	author := &user.User{Email: "a@example.com", Name: "a", Membership: user.Free}
	mockPolicy.EXPECT().AuthorizePost(gomock.Any(), "a@example.com", "a", "").
		Return(&membership.Decision{
			Allowed: false,
			Reason:  membership.ReasonPostLimitExceeded,
			Message: "free members can create up to 5 posts, upgrade to premium to keep posting",
			User:    author,
		}, nil)

	reqBody, _ := json.Marshal(map[string]string{
		"authorEmail": "a@example.com",
		"authorName":  "a",
		"title":       "one post too many",
		"content":     "test content",
	})
	r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, but was %d", w.Code)
	}

	var resp RejectionResponse
	body, _ := ioutil.ReadAll(w.Result().Body)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Reason != membership.ReasonPostLimitExceeded {
		t.Errorf("expected reason %q, but was %q", membership.ReasonPostLimitExceeded, resp.Reason)
	}
	if resp.Message == "" {
		t.Errorf("rejection must carry a message")
	}
}

func TestPostsCreateFanoutFailureKeepsPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	mockPolicy := NewMockPostPolicy(ctrl)
	mockAnnouncer := NewMockAnnouncer(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Policy: mockPolicy, Fanout: mockAnnouncer, Logger: testLogger()}

	newID := primitive.NewObjectID()
	author := &user.User{Email: "a@example.com", Name: "a", Membership: user.Premium}

	mockPolicy.EXPECT().AuthorizePost(gomock.Any(), "a@example.com", "a", "").
		Return(&membership.Decision{Allowed: true, User: author}, nil)
	mockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(newID, nil)
	mockAnnouncer.EXPECT().AnnounceNewPost(gomock.Any(), "a@example.com", "a", "test title").
		Return(0, errors.New("notifications store down"))

	reqBody, _ := json.Marshal(map[string]string{
		"authorEmail": "a@example.com",
		"authorName":  "a",
		"title":       "test title",
		"content":     "test content",
	})
	r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusCreated {
		t.Errorf("fan-out failure must not fail the request, expected 201, but was %d", w.Code)
	}
}

func TestPostsCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

	reqBody, _ := json.Marshal(map[string]string{
		"authorName": "a",
		"content":    "no email, no title",
	})
	r := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, but was %d", w.Code)
	}

	var resp ErrorsResponse
	body, _ := ioutil.ReadAll(w.Result().Body)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected 2 validation errors, but was %d", len(resp.Errors))
	}
}

func TestPostsUpdate(t *testing.T) {
	cases := []struct {
		name   string
		found  bool
		status int
	}{
		{name: "UpdateHappyCase", found: true, status: http.StatusOK},
		{name: "UpdateNotFound", found: false, status: http.StatusNotFound},
	}

	for i, c := range cases {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockPostsRepo(ctrl)
		h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

		id := primitive.NewObjectID()
		mockRepo.EXPECT().ParseID(id.Hex()).Return(id, nil)
		mockRepo.EXPECT().Update(gomock.Any(), id, gomock.Eq(map[string]interface{}{"title": "changed"})).
			Return(c.found, nil)

		reqBody, _ := json.Marshal(map[string]interface{}{"title": "changed", "id": "ignored"})
		r := httptest.NewRequest(http.MethodPut, "/posts/"+id.Hex(), bytes.NewReader(reqBody))
		r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
		w := httptest.NewRecorder()
		h.Update(w, r)

		if w.Code != c.status {
			t.Errorf("test #%d %s fail, expected status %d, but was %d", i, c.name, c.status, w.Code)
		}
	}
}

func TestPostsDelete(t *testing.T) {
	cases := []struct {
		name   string
		found  bool
		status int
	}{
		{name: "DeleteHappyCase", found: true, status: http.StatusOK},
		{name: "DeleteNotFound", found: false, status: http.StatusNotFound},
	}

	for i, c := range cases {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockPostsRepo(ctrl)
		h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

		id := primitive.NewObjectID()
		mockRepo.EXPECT().ParseID(id.Hex()).Return(id, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(c.found, nil)

		r := httptest.NewRequest(http.MethodDelete, "/posts/"+id.Hex(), nil)
		r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
		w := httptest.NewRecorder()
		h.Delete(w, r)

		if w.Code != c.status {
			t.Errorf("test #%d %s fail, expected status %d, but was %d", i, c.name, c.status, w.Code)
		}
	}
}

func TestPostsVote(t *testing.T) {
	cases := []struct {
		name      string
		direction posts.VoteDirection
		call      func(h *PostHandler, w http.ResponseWriter, r *http.Request)
	}{
		{name: "Upvote", direction: posts.Up, call: func(h *PostHandler, w http.ResponseWriter, r *http.Request) { h.Upvote(w, r) }},
		{name: "Downvote", direction: posts.Down, call: func(h *PostHandler, w http.ResponseWriter, r *http.Request) { h.Downvote(w, r) }},
	}

	for i, c := range cases {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockPostsRepo(ctrl)
		h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

		id := primitive.NewObjectID()
		mockRepo.EXPECT().ParseID(id.Hex()).Return(id, nil)
		mockRepo.EXPECT().IncrementVote(gomock.Any(), id, c.direction).Return(nil)

		r := httptest.NewRequest(http.MethodPut, "/posts/"+id.Hex()+"/"+c.name, nil)
		r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
		w := httptest.NewRecorder()
		c.call(h, w, r)

		if w.Code != http.StatusOK {
			t.Errorf("test #%d %s fail, expected status 200, but was %d", i, c.name, w.Code)
		}
	}
}

func TestPostsAddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockPostsRepo(ctrl)
	h := &PostHandler{PostsRepo: mockRepo, Logger: testLogger()}

	id := primitive.NewObjectID()
	comment := &posts.Comment{ID: primitive.NewObjectID(), AuthorName: "a", AuthorImage: "a.png", Text: "nice", Time: "1/1/2026, 9:00:00 AM"}

	mockRepo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	mockRepo.EXPECT().AddComment(gomock.Any(), id, "a", "a.png", "nice").Return(comment, nil)

	reqBody, _ := json.Marshal(map[string]string{
		"authorName":  "a",
		"authorImage": "a.png",
		"text":        "nice",
	})
	r := httptest.NewRequest(http.MethodPut, "/posts/"+id.Hex()+"/comment", bytes.NewReader(reqBody))
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()
	h.AddComment(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, but was %d", w.Code)
	}

	var resp AddCommentResponse
	body, _ := ioutil.ReadAll(w.Result().Body)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Comment == nil || resp.Comment.Text != "nice" {
		t.Errorf("response must carry the created comment, got %v", resp.Comment)
	}
}
