package entity

import (
	"time"
)

// User represents an end-user account. A user is created either fully
// formed through the email path or as a phone stub that is completed
// once its OTP is verified.
type User struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	Name            string `bson:"name,omitempty" json:"name,omitempty"`
	Email           string `bson:"email,omitempty" json:"userEmail,omitempty"`
	PasswordHash    string `bson:"password_hash,omitempty" json:"-"`
	Location        string `bson:"location,omitempty" json:"location,omitempty"`
	Language        string `bson:"language,omitempty" json:"language,omitempty"`
	ProfileImage    string `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	PhoneCredential `bson:",inline"`
	IsRegistered    bool      `bson:"is_registered" json:"isRegistered"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserProfile carries the profile fields supplied when a phone
// registration completes.
type UserProfile struct {
	Name         string
	Location     string
	Language     string
	ProfileImage string
}

// CompleteRegistration stamps the profile onto a verified phone stub.
func (u *User) CompleteRegistration(p UserProfile) {
	u.Name = p.Name
	u.Location = p.Location
	u.Language = p.Language
	if p.ProfileImage != "" {
		u.ProfileImage = p.ProfileImage
	}
	u.IsRegistered = true
}
