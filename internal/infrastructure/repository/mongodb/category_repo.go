package mongodb

import (
	"context"
	"time"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(collection *mongo.Collection) *MongoCategoryRepository {
	return &MongoCategoryRepository{collection: collection}
}

var _ contract.ICategoryRepository = (*MongoCategoryRepository)(nil)

func (r *MongoCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("Category already exists")
	}
	return err
}

func (r *MongoCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCategoryRepository) findOne(ctx context.Context, filter bson.M) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("category not found")
		}
		return nil, err
	}
	return &category, nil
}

func (r *MongoCategoryRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	category.UpdatedAt = time.Now()
	filter := bson.M{"_id": category.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": category})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("category not found")
	}
	var updated entity.Category
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category and returns the deleted record,
// matching the public contract of the delete endpoint.
func (r *MongoCategoryRepository) DeleteCategory(ctx context.Context, id string) (*entity.Category, error) {
	var deleted entity.Category
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("category not found")
		}
		return nil, err
	}
	return &deleted, nil
}
