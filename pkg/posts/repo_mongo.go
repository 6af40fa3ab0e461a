package posts

import (
	"context"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewPostsRepoMongo(db *mongo.Database) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("posts")}}
}

// GetAll returns posts newest first, relying on the monotonic _id order.
func (r *PostsRepoMongo) GetAll(ctx context.Context) ([]*Post, error) {
	cur, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Post
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Post, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": id})

	p := &Post{}
	err := res.Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	p.UpVote = 0
	p.DownVote = 0
	p.Comments = []*Comment{}
	p.Time = time.Now().Format(TimeLayout)

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// Update applies an unconstrained field merge. The caller is responsible for
// stripping the id field.
func (r *PostsRepoMongo) Update(ctx context.Context, id interface{}, fields map[string]interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$set", Value: bson.M(fields)},
		})
	if err != nil {
		return false, err
	}

	if res.GetMatchedCount() == 0 {
		return false, nil
	}

	return true, nil
}

func (r *PostsRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	if res.GetDeletedCount() == 0 {
		return false, nil
	}

	return true, nil
}

func (r *PostsRepoMongo) IncrementVote(ctx context.Context, id interface{}, direction VoteDirection) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: direction.Field(), Value: 1}}},
		})

	return err
}

func (r *PostsRepoMongo) AddComment(ctx context.Context, id interface{}, authorName, authorImage, text string) (*Comment, error) {
	comment := &Comment{
		ID:          primitive.NewObjectID(),
		AuthorName:  authorName,
		AuthorImage: authorImage,
		Text:        text,
		Time:        time.Now().Format(TimeLayout),
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}},
		})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *PostsRepoMongo) CountByAuthor(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"authorEmail": email})
}

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
