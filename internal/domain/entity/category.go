package entity

import (
	"time"
)

// Category groups vendors by the kind of service they offer.
type Category struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"categoryName"`
	Image     string    `bson:"image,omitempty" json:"categoryImage,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
