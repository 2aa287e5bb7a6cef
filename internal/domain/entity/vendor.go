package entity

import (
	"math"
	"time"
)

// Review is authored by a user against a vendor. Reviews are embedded
// in the vendor document.
type Review struct {
	UserID    string    `bson:"user_id" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Vendor represents a service-provider account.
type Vendor struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	Name            string `bson:"name,omitempty" json:"vendorName,omitempty"`
	Email           string `bson:"email,omitempty" json:"vendorEmail,omitempty"`
	PasswordHash    string `bson:"password_hash,omitempty" json:"-"`
	PhoneCredential `bson:",inline"`

	Introduction     string   `bson:"introduction,omitempty" json:"vendorIntroduction,omitempty"`
	Bio              string   `bson:"bio,omitempty" json:"vendorBio,omitempty"`
	WorkExperience   string   `bson:"work_experience,omitempty" json:"vendorWorkExperience,omitempty"`
	ProfileImage     string   `bson:"profile_image,omitempty" json:"vendorProfileImage,omitempty"`
	ReferenceLetter  string   `bson:"reference_letter,omitempty" json:"vendorReferenceLetter,omitempty"`
	IdentityDocument string   `bson:"identity_document,omitempty" json:"vendorIdentityDocument,omitempty"`
	Latitude         float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude        float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	DOB              string   `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender           string   `bson:"gender,omitempty" json:"gender,omitempty"`
	CategoryID       string   `bson:"category_id,omitempty" json:"categoryId,omitempty"`
	Languages        []string `bson:"languages,omitempty" json:"languages,omitempty"`
	AvailabilityType string   `bson:"availability_type,omitempty" json:"availabilityType,omitempty"`

	Reviews       []Review `bson:"reviews,omitempty" json:"reviews,omitempty"`
	AverageRating float64  `bson:"average_rating" json:"averageRating"`
	TotalReviews  int      `bson:"total_reviews" json:"totalReviews"`

	IsVerified   bool      `bson:"is_verified" json:"isVerified"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	IsRegistered bool      `bson:"is_registered" json:"isRegistered"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// VendorProfile carries the profile fields supplied on registration.
type VendorProfile struct {
	Name             string
	Introduction     string
	Bio              string
	WorkExperience   string
	ProfileImage     string
	ReferenceLetter  string
	IdentityDocument string
	Latitude         float64
	Longitude        float64
	DOB              string
	Gender           string
	CategoryID       string
	Languages        []string
	AvailabilityType string
}

// CompleteRegistration stamps the profile onto a verified phone stub.
func (v *Vendor) CompleteRegistration(p VendorProfile) {
	v.Name = p.Name
	v.Introduction = p.Introduction
	v.Bio = p.Bio
	v.WorkExperience = p.WorkExperience
	if p.ProfileImage != "" {
		v.ProfileImage = p.ProfileImage
	}
	if p.ReferenceLetter != "" {
		v.ReferenceLetter = p.ReferenceLetter
	}
	if p.IdentityDocument != "" {
		v.IdentityDocument = p.IdentityDocument
	}
	v.Latitude = p.Latitude
	v.Longitude = p.Longitude
	v.DOB = p.DOB
	v.Gender = p.Gender
	v.CategoryID = p.CategoryID
	v.Languages = p.Languages
	v.AvailabilityType = p.AvailabilityType
	v.IsRegistered = true
}

// AddReview appends a review and recomputes the derived aggregates so
// they always stay consistent with the embedded collection.
func (v *Vendor) AddReview(r Review) {
	v.Reviews = append(v.Reviews, r)
	v.recomputeRating()
}

func (v *Vendor) recomputeRating() {
	v.TotalReviews = len(v.Reviews)
	if v.TotalReviews == 0 {
		v.AverageRating = 0
		return
	}
	sum := 0
	for _, r := range v.Reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(v.TotalReviews)
	v.AverageRating = math.Round(avg*10) / 10
}
