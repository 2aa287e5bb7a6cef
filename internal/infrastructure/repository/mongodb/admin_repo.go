package mongodb

import (
	"context"
	"time"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoAdminRepository struct {
	collection *mongo.Collection
}

func NewMongoAdminRepository(collection *mongo.Collection) *MongoAdminRepository {
	return &MongoAdminRepository{collection: collection}
}

var _ contract.IAdminRepository = (*MongoAdminRepository)(nil)

func (r *MongoAdminRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	_, err := r.collection.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Admin already exists")
	}
	return err
}

func (r *MongoAdminRepository) GetAdminByID(ctx context.Context, id string) (*entity.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAdminRepository) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAdminRepository) findOne(ctx context.Context, filter bson.M) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.collection.FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("admin not found")
		}
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) UpdateAdmin(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	admin.UpdatedAt = time.Now()
	filter := bson.M{"_id": admin.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": admin})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("admin not found")
	}
	var updated entity.Admin
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoAdminRepository) UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("admin not found")
	}
	return nil
}
