package dto

// RegisterUserRequest is the tagged body for POST /registerUser. Type
// selects the registration path; LoginType is the OTP purpose on the
// phone path.
type RegisterUserRequest struct {
	Type        string `json:"type" form:"type" binding:"required,oneof=email phone"`
	Name        string `json:"name" form:"name"`
	Email       string `json:"userEmail" form:"userEmail"`
	Password    string `json:"password" form:"password"`
	Phone       string `json:"phone" form:"phone"`
	CountryCode string `json:"countryCode" form:"countryCode"`
	Location    string `json:"location" form:"location"`
	Language    string `json:"language" form:"language"`
	LoginType   string `json:"loginType" form:"loginType"`
}

// VerifyUserOTPRequest is the body for POST /verifyOtp.
type VerifyUserOTPRequest struct {
	Phone       string `json:"phone" form:"phone" binding:"required"`
	CountryCode string `json:"countryCode" form:"countryCode" binding:"required"`
	OTP         string `json:"otp" form:"otp" binding:"required"`
	Type        string `json:"type" form:"type" binding:"required,oneof=register login"`
	Name        string `json:"name" form:"name"`
	Location    string `json:"location" form:"location"`
	Language    string `json:"language" form:"language"`
}

// LoginUserRequest is the body for POST /loginUser.
type LoginUserRequest struct {
	Email    string `json:"userEmail" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterVendorRequest is the tagged body for POST /registerVendor.
type RegisterVendorRequest struct {
	Type             string   `json:"type" form:"type" binding:"required,oneof=email phone"`
	LoginType        string   `json:"loginType" form:"loginType"`
	Name             string   `json:"vendorName" form:"vendorName"`
	Email            string   `json:"vendorEmail" form:"vendorEmail"`
	Password         string   `json:"vendorPassword" form:"vendorPassword"`
	Phone            string   `json:"vendorPhone" form:"vendorPhone"`
	CountryCode      string   `json:"vendorCountryCode" form:"vendorCountryCode"`
	Introduction     string   `json:"vendorIntroduction" form:"vendorIntroduction"`
	Bio              string   `json:"vendorBio" form:"vendorBio"`
	WorkExperience   string   `json:"vendorWorkExperience" form:"vendorWorkExperience"`
	Latitude         float64  `json:"latitude" form:"latitude"`
	Longitude        float64  `json:"longitude" form:"longitude"`
	DOB              string   `json:"dob" form:"dob"`
	Gender           string   `json:"gender" form:"gender"`
	CategoryID       string   `json:"categoryId" form:"categoryId"`
	Languages        []string `json:"languages" form:"languages"`
	AvailabilityType string   `json:"availabilityType" form:"availabilityType"`
}

// VerifyVendorOTPRequest is the body for POST /vendorVerifyOtp.
type VerifyVendorOTPRequest struct {
	Phone            string   `json:"vendorPhone" form:"vendorPhone" binding:"required"`
	CountryCode      string   `json:"vendorCountryCode" form:"vendorCountryCode" binding:"required"`
	OTP              string   `json:"vendorOtp" form:"vendorOtp" binding:"required"`
	LoginType        string   `json:"loginType" form:"loginType" binding:"required,oneof=register login"`
	Name             string   `json:"vendorName" form:"vendorName"`
	Introduction     string   `json:"vendorIntroduction" form:"vendorIntroduction"`
	Bio              string   `json:"vendorBio" form:"vendorBio"`
	WorkExperience   string   `json:"vendorWorkExperience" form:"vendorWorkExperience"`
	Latitude         float64  `json:"latitude" form:"latitude"`
	Longitude        float64  `json:"longitude" form:"longitude"`
	DOB              string   `json:"dob" form:"dob"`
	Gender           string   `json:"gender" form:"gender"`
	CategoryID       string   `json:"categoryId" form:"categoryId"`
	Languages        []string `json:"languages" form:"languages"`
	AvailabilityType string   `json:"availabilityType" form:"availabilityType"`
}

// LoginVendorRequest is the body for POST /loginVendor.
type LoginVendorRequest struct {
	Email    string `json:"vendorEmail" binding:"required"`
	Password string `json:"vendorPassword" binding:"required"`
}

// AddVendorReviewRequest is the body for POST /addVendorReview.
type AddVendorReviewRequest struct {
	VendorID string `json:"vendorId" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// AdminSignupRequest is the body for POST /adminSignup.
type AdminSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest is the body for POST /loginAdmin.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateAdminRequest is the body for POST /updateAdminDetail.
type UpdateAdminRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ResetAdminPasswordRequest is the body for POST /resetAdminPassword.
type ResetAdminPasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// PolicyRequest is the body for POST /policyUpdate.
type PolicyRequest struct {
	Type    string `json:"type" form:"type" binding:"required"`
	Content string `json:"content" form:"content" binding:"required"`
}

// AddFAQRequest is the body for POST /addFAQ.
type AddFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// UpdateFAQRequest is the body for POST /updateFAQ.
type UpdateFAQRequest struct {
	ID       string `json:"id" binding:"required"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive *bool  `json:"isActive"`
}

// ContactRequest is the body for POST /addOrUpdateContactUs. ID is
// set when updating the existing record.
type ContactRequest struct {
	ID             string `json:"id"`
	OfficeLocation string `json:"officeLocation" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
}

// AddCategoryRequest is the body for POST /addCategory.
type AddCategoryRequest struct {
	Name string `json:"categoryName" form:"categoryName" binding:"required"`
}

// UpdateCategoryRequest is the body for POST /updateCategory.
type UpdateCategoryRequest struct {
	CategoryID string `json:"categoryId" form:"categoryId" binding:"required"`
	Name       string `json:"categoryName" form:"categoryName"`
}
