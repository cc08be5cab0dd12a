package repository

import (
	"context"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoApplicationRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoApplicationRepo(db *mongo.Client, dbName string) *MongoApplicationRepo {
	return &MongoApplicationRepo{DB: db, DBName: dbName}
}

func (r *MongoApplicationRepo) applications() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection("applications")
}

func (r *MongoApplicationRepo) CreateApplication(app *models.Application) error {
	if app.ID == "" {
		app.ID = primitive.NewObjectID().Hex()
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	_, err := r.applications().InsertOne(context.Background(), app)
	return err
}

func (r *MongoApplicationRepo) GetAllApplications() ([]*models.Application, error) {
	apps, err := r.find(bson.M{})
	if err != nil {
		return nil, err
	}
	r.populate(apps, true)
	return apps, nil
}

func (r *MongoApplicationRepo) GetApplicationsByUser(userID string) ([]*models.Application, error) {
	apps, err := r.find(bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	r.populate(apps, false)
	return apps, nil
}

func (r *MongoApplicationRepo) find(filter bson.M) ([]*models.Application, error) {
	ctx := context.Background()
	cur, err := r.applications().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []*models.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// populate resolves Post (and optionally User) references per application.
// Dangling references decode to nil and are left that way.
func (r *MongoApplicationRepo) populate(apps []*models.Application, withUser bool) {
	ctx := context.Background()
	db := r.DB.Database(r.DBName)

	for _, app := range apps {
		post := &models.Post{}
		if err := db.Collection("posts").
			FindOne(ctx, bson.M{"_id": app.PostID}).Decode(post); err == nil {
			app.Post = post
		}
		if !withUser {
			continue
		}
		user := &models.User{}
		if err := db.Collection("users").
			FindOne(ctx, bson.M{"_id": app.UserID}).Decode(user); err == nil {
			app.User = user
		}
	}
}

func (r *MongoApplicationRepo) UpdateStatus(id, status string) error {
	res, err := r.applications().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoApplicationRepo) DeleteApplication(id string) error {
	res, err := r.applications().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
