package entity

import (
	"time"
)

// Policy types recognized by the static content surface.
const (
	PolicyTypePrivacy = "privacy"
	PolicyTypeTerms   = "terms"
)

// Policy is a static content page, unique per type.
type Policy struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Content   string    `bson:"content" json:"content"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FAQ is a question/answer entry managed by admins.
type FAQ struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ContactInfo is the single contact-us record for the site.
type ContactInfo struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	OfficeLocation string    `bson:"office_location" json:"officeLocation"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
