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

type MongoUserRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoUserRepo(db *mongo.Client, dbName string) *MongoUserRepo {
	return &MongoUserRepo{DB: db, DBName: dbName}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection("users")
}

// EnsureIndexes creates the unique index backing email uniqueness.
func (r *MongoUserRepo) EnsureIndexes() error {
	_, err := r.users().Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(context.Background(), bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(context.Background(), bson.M{"_id": id}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetAllUsers() ([]*models.User, error) {
	ctx := context.Background()
	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepo) DeleteUser(id string) error {
	res, err := r.users().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
