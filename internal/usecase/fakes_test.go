package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// In-memory fakes shared by the usecase tests. They keep entities in
// maps keyed by ID and mirror the repository NotFound/Conflict
// behavior of the real mongo implementations.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if user.Email != "" && u.Email == user.Email {
			return apperror.Conflict("duplicate key")
		}
		if user.Phone != "" && u.Phone == user.Phone && u.CountryCode == user.CountryCode {
			return apperror.Conflict("duplicate key")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *fakeUserRepo) GetUserByPhone(ctx context.Context, phone, countryCode string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone == phone && u.CountryCode == countryCode {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperror.NotFound("user not found")
	}
	clone := *user
	r.users[user.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, filter contract.UserListFilter) ([]entity.User, int64, error) {
	var matched []entity.User
	for _, u := range r.users {
		if filter.Registered != nil && u.IsRegistered != *filter.Registered {
			continue
		}
		if filter.Search != "" && !strings.Contains(u.Name, filter.Search) && !strings.Contains(u.Email, filter.Search) {
			continue
		}
		matched = append(matched, *u)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []entity.User{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[string]*entity.Vendor{}}
}

func (r *fakeVendorRepo) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	for _, v := range r.vendors {
		if vendor.Email != "" && v.Email == vendor.Email {
			return apperror.Conflict("duplicate key")
		}
	}
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	return nil
}

func (r *fakeVendorRepo) GetVendorByID(ctx context.Context, id string) (*entity.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, apperror.NotFound("vendor not found")
	}
	clone := *v
	return &clone, nil
}

func (r *fakeVendorRepo) GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.Email == email {
			clone := *v
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("vendor not found")
}

func (r *fakeVendorRepo) GetVendorByPhone(ctx context.Context, phone, countryCode string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.Phone == phone && v.CountryCode == countryCode {
			clone := *v
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("vendor not found")
}

func (r *fakeVendorRepo) UpdateVendor(ctx context.Context, vendor *entity.Vendor) (*entity.Vendor, error) {
	if _, ok := r.vendors[vendor.ID]; !ok {
		return nil, apperror.NotFound("vendor not found")
	}
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	out := clone
	return &out, nil
}

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return apperror.Conflict("duplicate key")
		}
	}
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *fakeAdminRepo) GetAdminByID(ctx context.Context, id string) (*entity.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, apperror.NotFound("admin not found")
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("admin not found")
}

func (r *fakeAdminRepo) UpdateAdmin(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	if _, ok := r.admins[admin.ID]; !ok {
		return nil, apperror.NotFound("admin not found")
	}
	clone := *admin
	r.admins[admin.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeAdminRepo) UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error {
	a, ok := r.admins[id]
	if !ok {
		return apperror.NotFound("admin not found")
	}
	a.PasswordHash = hashedPassword
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return apperror.Conflict("duplicate key")
		}
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, apperror.NotFound("category not found")
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCategoryRepo) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("category not found")
}

func (r *fakeCategoryRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return nil, apperror.NotFound("category not found")
	}
	clone := *category
	r.categories[category.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeCategoryRepo) DeleteCategory(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, apperror.NotFound("category not found")
	}
	delete(r.categories, id)
	return c, nil
}

type fakeContentRepo struct {
	policies map[string]*entity.Policy
	faqs     map[string]*entity.FAQ
	contact  *entity.ContactInfo
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		policies: map[string]*entity.Policy{},
		faqs:     map[string]*entity.FAQ{},
	}
}

func (r *fakeContentRepo) SavePolicy(ctx context.Context, policy *entity.Policy) (*entity.Policy, error) {
	stored, ok := r.policies[policy.Type]
	if ok {
		stored.Content = policy.Content
		if policy.Image != "" {
			stored.Image = policy.Image
		}
		stored.UpdatedAt = time.Now()
		clone := *stored
		return &clone, nil
	}
	clone := *policy
	r.policies[policy.Type] = &clone
	out := clone
	return &out, nil
}

func (r *fakeContentRepo) GetPolicyByType(ctx context.Context, policyType string) (*entity.Policy, error) {
	p, ok := r.policies[policyType]
	if !ok {
		return nil, apperror.NotFound("policy not found")
	}
	clone := *p
	return &clone, nil
}

func (r *fakeContentRepo) CreateFAQ(ctx context.Context, faq *entity.FAQ) error {
	clone := *faq
	r.faqs[faq.ID] = &clone
	return nil
}

func (r *fakeContentRepo) UpdateFAQ(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error) {
	if _, ok := r.faqs[faq.ID]; !ok {
		return nil, apperror.NotFound("faq not found")
	}
	clone := *faq
	r.faqs[faq.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeContentRepo) GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error) {
	f, ok := r.faqs[id]
	if !ok {
		return nil, apperror.NotFound("faq not found")
	}
	clone := *f
	return &clone, nil
}

func (r *fakeContentRepo) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	out := make([]entity.FAQ, 0, len(r.faqs))
	for _, f := range r.faqs {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeContentRepo) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	if r.contact == nil {
		return nil, apperror.NotFound("contact not found")
	}
	clone := *r.contact
	return &clone, nil
}

func (r *fakeContentRepo) CreateContact(ctx context.Context, contact *entity.ContactInfo) error {
	clone := *contact
	r.contact = &clone
	return nil
}

func (r *fakeContentRepo) UpdateContact(ctx context.Context, contact *entity.ContactInfo) (*entity.ContactInfo, error) {
	if r.contact == nil || r.contact.ID != contact.ID {
		return nil, apperror.NotFound("contact not found")
	}
	clone := *contact
	r.contact = &clone
	out := clone
	return &out, nil
}

// fakeHasher produces reversible digests so tests can assert that
// plaintext never reaches the repository.
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(accountID string) (string, error) {
	return "token-" + accountID, nil
}

func (fakeTokenService) VerifyToken(token string) (string, error) {
	return strings.TrimPrefix(token, "token-"), nil
}

// fakeOTPGenerator hands out codes from a fixed sequence.
type fakeOTPGenerator struct {
	codes []string
	next  int
}

func (g *fakeOTPGenerator) Generate() (string, error) {
	if g.next >= len(g.codes) {
		return "9999", nil
	}
	code := g.codes[g.next]
	g.next++
	return code, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetTokenExpiry() time.Duration { return time.Hour }
func (fakeConfig) GetOTPTTL() time.Duration      { return 10 * time.Minute }
func (fakeConfig) GetBcryptCost() int            { return 4 }
func (fakeConfig) IsProduction() bool            { return false }

// fakeValidator applies the same surface rules as the real one.
type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("Invalid email address")
	}
	return nil
}

func (fakeValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters long")
	}
	return nil
}

func (fakeValidator) ValidatePhone(phone, countryCode string) error {
	if phone == "" || countryCode == "" {
		return errors.New("Invalid phone number")
	}
	return nil
}
