package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/user"
)

type UsersRepo interface {
	GetAll(ctx context.Context) ([]*user.User, error)
}

type Repo interface {
	AddBatch(ctx context.Context, batch []*Notification) error
}

// Fanout announces new posts to every user except the author. It runs
// synchronously inside the create-post request, so its cost grows with the
// user count.
type Fanout struct {
	Users         UsersRepo
	Notifications Repo
}

// AnnounceNewPost writes one unread notification per existing user other than
// the author, as a single batch. It returns the number of notifications
// written.
func (f *Fanout) AnnounceNewPost(ctx context.Context, authorEmail, authorName, title string) (int, error) {
	users, err := f.Users.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	message := fmt.Sprintf("%s published a new post: %s", authorName, title)

	batch := make([]*Notification, 0, len(users))
	for _, u := range users {
		if u.Email == authorEmail {
			continue
		}

		batch = append(batch, &Notification{
			UserEmail: u.Email,
			Type:      TypeNewPost,
			Message:   message,
			Read:      false,
			CreatedAt: now,
		})
	}

	if len(batch) == 0 {
		return 0, nil
	}

	err = f.Notifications.AddBatch(ctx, batch)
	if err != nil {
		return 0, err
	}

	return len(batch), nil
}
