package repository

import (
	"context"
	"time"

	"github.com/yltimon/Yosemite-Voluteer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPostRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoPostRepo(db *mongo.Client, dbName string) *MongoPostRepo {
	return &MongoPostRepo{DB: db, DBName: dbName}
}

func (r *MongoPostRepo) posts() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection("posts")
}

func (r *MongoPostRepo) CreatePost(post *models.Post) error {
	if post.ID == "" {
		post.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := r.posts().InsertOne(context.Background(), post)
	return err
}

func (r *MongoPostRepo) GetPostByID(id string) (*models.Post, error) {
	post := &models.Post{}
	err := r.posts().FindOne(context.Background(), bson.M{"_id": id}).Decode(post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (r *MongoPostRepo) GetAllPosts() ([]*models.Post, error) {
	ctx := context.Background()
	cur, err := r.posts().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []*models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepo) UpdatePost(id, title, description string) error {
	res, err := r.posts().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":       title,
			"description": description,
			"updatedAt":   time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPostRepo) DeletePost(id string) error {
	res, err := r.posts().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
