package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/ahasanshaker/forum-server/pkg/user"

	gomock "github.com/golang/mock/gomock"
)

type authorizeCase struct {
	name          string
	membership    user.Membership
	postCount     int64
	countExpected bool
	allowed       bool
	reason        string
}

var authorizeCases = []authorizeCase{
	{
		name:          "FreeUnderLimit",
		membership:    user.Free,
		postCount:     0,
		countExpected: true,
		allowed:       true,
	},
	{
		name:          "FreeOneBelowLimit",
		membership:    user.Free,
		postCount:     FreePostLimit - 1,
		countExpected: true,
		allowed:       true,
	},
	{
		name:          "FreeAtLimit",
		membership:    user.Free,
		postCount:     FreePostLimit,
		countExpected: true,
		allowed:       false,
		reason:        ReasonPostLimitExceeded,
	},
	{
		name:          "FreeOverLimit",
		membership:    user.Free,
		postCount:     FreePostLimit + 3,
		countExpected: true,
		allowed:       false,
		reason:        ReasonPostLimitExceeded,
	},
	{
		name:          "PremiumNeverRejected",
		membership:    user.Premium,
		postCount:     100,
		countExpected: false,
		allowed:       true,
	},
}

func TestAuthorizePost(t *testing.T) {
	for i, c := range authorizeCases {
		ctrl := gomock.NewController(t)
		mockUsers := NewMockUsersRepo(ctrl)
		mockPosts := NewMockPostsRepo(ctrl)
		policy := &Policy{Users: mockUsers, Posts: mockPosts}

		ctx := context.Background()
		u := &user.User{Email: "a@example.com", Name: "a", Membership: c.membership}

		mockUsers.EXPECT().GetOrCreate(ctx, "a@example.com", "a", "a.png").
			Return(u, false, nil)
		if c.countExpected {
			mockPosts.EXPECT().CountByAuthor(ctx, "a@example.com").Return(c.postCount, nil)
		}

		decision, err := policy.AuthorizePost(ctx, "a@example.com", "a", "a.png")
		if err != nil {
			t.Errorf("test #%d %s fail, unexpected error: %v", i, c.name, err)
			continue
		}

		if decision.Allowed != c.allowed {
			t.Errorf("test #%d %s fail, expected allowed=%v, but was %v", i, c.name, c.allowed, decision.Allowed)
		}
		if decision.Reason != c.reason {
			t.Errorf("test #%d %s fail, expected reason %q, but was %q", i, c.name, c.reason, decision.Reason)
		}
		if !decision.Allowed && decision.Message == "" {
			t.Errorf("test #%d %s fail, rejection must carry a message", i, c.name)
		}
		if decision.User != u {
			t.Errorf("test #%d %s fail, decision must carry the resolved user", i, c.name)
		}

		ctrl.Finish()
	}
}

func TestAuthorizePostDefaultsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsers := NewMockUsersRepo(ctrl)
	mockPosts := NewMockPostsRepo(ctrl)
	policy := &Policy{Users: mockUsers, Posts: mockPosts}

	ctx := context.Background()
	u := &user.User{Email: "new@example.com", Name: "Anonymous", Membership: user.Free}

	mockUsers.EXPECT().GetOrCreate(ctx, "new@example.com", "Anonymous", "").
		Return(u, true, nil)
	mockPosts.EXPECT().CountByAuthor(ctx, "new@example.com").Return(int64(0), nil)

	decision, err := policy.AuthorizePost(ctx, "new@example.com", "", "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Errorf("first post must be allowed")
	}
	if !decision.UserCreated {
		t.Errorf("decision must report the implicit user creation")
	}
}

func TestAuthorizePostUserRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsers := NewMockUsersRepo(ctrl)
	mockPosts := NewMockPostsRepo(ctrl)
	policy := &Policy{Users: mockUsers, Posts: mockPosts}

	ctx := context.Background()
	repoErr := errors.New("store unavailable")

	mockUsers.EXPECT().GetOrCreate(ctx, "a@example.com", "a", "").
		Return(nil, false, repoErr)

	_, err := policy.AuthorizePost(ctx, "a@example.com", "a", "")
	if err != repoErr {
		t.Errorf("expected error: %v, but was %v", repoErr, err)
	}
}
