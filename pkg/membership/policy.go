package membership

import (
	"context"
	"fmt"

	"github.com/ahasanshaker/forum-server/pkg/user"
)

// FreePostLimit is the number of posts a free-tier user may create before an
// upgrade is required.
const FreePostLimit = 5

const ReasonPostLimitExceeded = "post-limit-exceeded"

// DefaultAuthorName stands in when a request carries no author name.
const DefaultAuthorName = "Anonymous"

type UsersRepo interface {
	GetOrCreate(ctx context.Context, email, name, image string) (*user.User, bool, error)
}

type PostsRepo interface {
	CountByAuthor(ctx context.Context, email string) (int64, error)
}

type Policy struct {
	Users UsersRepo
	Posts PostsRepo
}

// Decision is the outcome of an authorization check. A rejection is a normal
// result, not an error.
type Decision struct {
	Allowed     bool
	Reason      string
	Message     string
	User        *user.User
	UserCreated bool
}

// AuthorizePost resolves the author (creating a free-tier user on first
// reference), counts the author's existing posts and applies the free-tier
// limit. The count happens strictly before any post is created by the caller.
func (p *Policy) AuthorizePost(ctx context.Context, email, name, image string) (*Decision, error) {
	if name == "" {
		name = DefaultAuthorName
	}

	u, created, err := p.Users.GetOrCreate(ctx, email, name, image)
	if err != nil {
		return nil, err
	}

	if u.Membership == user.Premium {
		return &Decision{Allowed: true, User: u, UserCreated: created}, nil
	}

	count, err := p.Posts.CountByAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	if count >= FreePostLimit {
		return &Decision{
			Allowed:     false,
			Reason:      ReasonPostLimitExceeded,
			Message:     fmt.Sprintf("free members can create up to %d posts, upgrade to premium to keep posting", FreePostLimit),
			User:        u,
			UserCreated: created,
		}, nil
	}

	return &Decision{Allowed: true, User: u, UserCreated: created}, nil
}
