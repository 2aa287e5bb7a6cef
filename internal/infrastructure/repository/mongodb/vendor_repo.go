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

type MongoVendorRepository struct {
	collection *mongo.Collection
}

func NewMongoVendorRepository(collection *mongo.Collection) *MongoVendorRepository {
	return &MongoVendorRepository{collection: collection}
}

var _ contract.IVendorRepository = (*MongoVendorRepository)(nil)

func (r *MongoVendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.collection.InsertOne(ctx, vendor)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Vendor already exists")
	}
	return err
}

func (r *MongoVendorRepository) GetVendorByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoVendorRepository) GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoVendorRepository) GetVendorByPhone(ctx context.Context, phone, countryCode string) (*entity.Vendor, error) {
	return r.findOne(ctx, bson.M{"phone": phone, "country_code": countryCode})
}

func (r *MongoVendorRepository) findOne(ctx context.Context, filter bson.M) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.collection.FindOne(ctx, filter).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("vendor not found")
		}
		return nil, err
	}
	return &vendor, nil
}

// UpdateVendor replaces the stored document, including the embedded
// reviews and their derived aggregates, and returns the updated vendor.
func (r *MongoVendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) (*entity.Vendor, error) {
	vendor.UpdatedAt = time.Now()
	filter := bson.M{"_id": vendor.ID}
	update := bson.M{"$set": vendor}
	if vendor.OTP == "" {
		update["$unset"] = bson.M{"otp": "", "otp_expires_at": ""}
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("vendor not found")
	}
	var updated entity.Vendor
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
