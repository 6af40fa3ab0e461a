package posts

// TimeLayout mirrors the locale-style timestamps the frontend renders as-is.
const TimeLayout = "1/2/2006, 3:04:05 PM"

type VoteDirection string

const (
	Up   VoteDirection = "up"
	Down               = "down"
)

func (d VoteDirection) Field() string {
	if d == Up {
		return "upVote"
	}
	return "downVote"
}

type Post struct {
	ID          interface{} `bson:"_id,omitempty" json:"id"`
	AuthorEmail string      `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string      `bson:"authorName" json:"authorName"`
	Title       string      `bson:"title" json:"title"`
	Content     string      `bson:"content" json:"content"`
	UpVote      int64       `bson:"upVote" json:"upVote"`
	DownVote    int64       `bson:"downVote" json:"downVote"`
	Comments    []*Comment  `bson:"comments" json:"comments"`
	Time        string      `bson:"time" json:"time"`
}

type Comment struct {
	ID          interface{} `bson:"id" json:"id"`
	AuthorName  string      `bson:"authorName" json:"authorName"`
	AuthorImage string      `bson:"authorImage" json:"authorImage"`
	Text        string      `bson:"text" json:"text"`
	Time        string      `bson:"time" json:"time"`
}
