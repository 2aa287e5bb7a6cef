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

// MongoContentRepository persists policies, FAQs and contact info in
// separate collections of the same database.
type MongoContentRepository struct {
	policies *mongo.Collection
	faqs     *mongo.Collection
	contacts *mongo.Collection
}

func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{
		policies: db.Collection("policies"),
		faqs:     db.Collection("faqs"),
		contacts: db.Collection("contacts"),
	}
}

var _ contract.IContentRepository = (*MongoContentRepository)(nil)

// SavePolicy upserts by type. The stored image survives when the new
// policy carries none.
func (r *MongoContentRepository) SavePolicy(ctx context.Context, policy *entity.Policy) (*entity.Policy, error) {
	filter := bson.M{"type": policy.Type}
	set := bson.M{
		"type":       policy.Type,
		"content":    policy.Content,
		"updated_at": time.Now(),
	}
	if policy.Image != "" {
		set["image"] = policy.Image
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": policy.ID, "created_at": policy.CreatedAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.Policy
	if err := r.policies.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MongoContentRepository) GetPolicyByType(ctx context.Context, policyType string) (*entity.Policy, error) {
	var policy entity.Policy
	err := r.policies.FindOne(ctx, bson.M{"type": policyType}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("policy not found")
		}
		return nil, err
	}
	return &policy, nil
}

func (r *MongoContentRepository) CreateFAQ(ctx context.Context, faq *entity.FAQ) error {
	_, err := r.faqs.InsertOne(ctx, faq)
	return err
}

func (r *MongoContentRepository) UpdateFAQ(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error) {
	faq.UpdatedAt = time.Now()
	filter := bson.M{"_id": faq.ID}
	result, err := r.faqs.UpdateOne(ctx, filter, bson.M{"$set": faq})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("faq not found")
	}
	var updated entity.FAQ
	if err := r.faqs.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoContentRepository) GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := r.faqs.FindOne(ctx, bson.M{"_id": id}).Decode(&faq)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("faq not found")
		}
		return nil, err
	}
	return &faq, nil
}

func (r *MongoContentRepository) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.faqs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []entity.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// GetContact fetches the single contact record.
func (r *MongoContentRepository) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	var contact entity.ContactInfo
	err := r.contacts.FindOne(ctx, bson.M{}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("contact info not found")
		}
		return nil, err
	}
	return &contact, nil
}

func (r *MongoContentRepository) CreateContact(ctx context.Context, contact *entity.ContactInfo) error {
	_, err := r.contacts.InsertOne(ctx, contact)
	return err
}

func (r *MongoContentRepository) UpdateContact(ctx context.Context, contact *entity.ContactInfo) (*entity.ContactInfo, error) {
	filter := bson.M{"_id": contact.ID}
	set := bson.M{
		"office_location": contact.OfficeLocation,
		"email":           contact.Email,
		"phone":           contact.Phone,
		"updated_at":      time.Now(),
	}
	result, err := r.contacts.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("contact info not found")
	}
	var updated entity.ContactInfo
	if err := r.contacts.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
