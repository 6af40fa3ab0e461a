package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ahasanshaker/forum-server/pkg/handlers"
	"github.com/ahasanshaker/forum-server/pkg/membership"
	"github.com/ahasanshaker/forum-server/pkg/middleware"
	"github.com/ahasanshaker/forum-server/pkg/notifications"
	"github.com/ahasanshaker/forum-server/pkg/payments"
	"github.com/ahasanshaker/forum-server/pkg/posts"
	"github.com/ahasanshaker/forum-server/pkg/user"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	app := &Application{
		MongoConnectionString: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:           getenv("MONGO_DB", "forumDB"),
		ServerAddr:            ":" + getenv("PORT", "3000"),
		StripeSecretKey:       os.Getenv("STRIPE_SECRET_KEY"),
		ClientURL:             getenv("CLIENT_URL", "http://localhost:5173"),
	}

	app.Run()
}

type Application struct {
	MongoConnectionString string
	MongoDBName           string
	ServerAddr            string
	StripeSecretKey       string
	ClientURL             string

	HTTPServer *http.Server
}

func (a *Application) Run() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := posts.NewMongoClient(ctx, a.MongoConnectionString)
	if err != nil {
		panic(err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		panic(err)
	}

	db := client.Database(a.MongoDBName)

	// resolve-or-create relies on this index to settle create races
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic(err)
	}

	postsRepo := posts.NewPostsRepoMongo(db)
	usersRepo := user.NewUsersRepoMongo(db)
	notificationsRepo := notifications.NewNotificationsRepoMongo(db)

	policy := &membership.Policy{Users: usersRepo, Posts: postsRepo}
	fanout := &notifications.Fanout{Users: usersRepo, Notifications: notificationsRepo}
	broker := payments.NewBroker(a.StripeSecretKey, a.ClientURL)

	postsHandler := &handlers.PostHandler{
		PostsRepo: postsRepo,
		Policy:    policy,
		Fanout:    fanout,
		Logger:    logger,
	}
	usersHandler := &handlers.UserHandler{Repo: usersRepo, Logger: logger}
	notificationsHandler := &handlers.NotificationHandler{Repo: notificationsRepo, Logger: logger}
	paymentsHandler := &handlers.PaymentHandler{Broker: broker, Logger: logger}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "Forum backend is running", http.StatusOK)
	}).Methods(http.MethodGet)

	r.HandleFunc("/posts", postsHandler.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/posts", postsHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", postsHandler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", postsHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id}", postsHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id}/upvote", postsHandler.Upvote).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id}/downvote", postsHandler.Downvote).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id}/comment", postsHandler.AddComment).Methods(http.MethodPut)

	r.HandleFunc("/users", usersHandler.ResolveOrCreate).Methods(http.MethodPost)
	r.HandleFunc("/users/{email}/upgrade", usersHandler.Upgrade).Methods(http.MethodPut)

	r.HandleFunc("/create-checkout-session", paymentsHandler.CreateCheckoutSession).Methods(http.MethodPost)

	r.HandleFunc("/notifications/{email}", notificationsHandler.GetForUser).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{email}/read", notificationsHandler.MarkAllRead).Methods(http.MethodPut)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})

	h := middleware.CORS(r)
	h = middleware.Log(logger, h)
	h = middleware.Recover(logger, h)

	srv := &http.Server{
		Handler:      h,
		Addr:         a.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
