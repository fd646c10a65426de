package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staybook-backend/models"
	"staybook-backend/utils"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Country   string
	City      string
}

// GoogleIdentity is the trusted assertion from a Google sign-in. Only Email is
// mandatory; the name fields are best-effort.
type GoogleIdentity struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// Register validates input and creates the user. Checks run in a fixed order
// and the first unmet condition wins: missing field, password length, digit,
// special character, then duplicate email.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	required := []struct{ name, value string }{
		{"email", in.Email},
		{"password", in.Password},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"country", in.Country},
		{"city", in.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, invalid(f.name + " is required")
		}
	}

	if msg := utils.ValidatePassword(in.Password); msg != "" {
		return nil, invalid(msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:  in.Email,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Country:   in.Country,
		City:      in.City,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// LoginWithPassword authenticates by email and password. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) LoginWithPassword(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalid("email and password are required")
	}

	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// googleNames derives display names from the identity assertion. First name
// precedence: given name, first token of the full name, local part of the
// email. Last name: family name, remainder of the full name, empty.
func googleNames(id GoogleIdentity) (string, string) {
	first := id.GivenName
	if first == "" {
		if id.Name != "" {
			first = strings.SplitN(id.Name, " ", 2)[0]
		} else {
			first = strings.SplitN(id.Email, "@", 2)[0]
		}
	}

	last := id.FamilyName
	if last == "" {
		if parts := strings.SplitN(id.Name, " ", 2); len(parts) == 2 {
			last = parts[1]
		}
	}
	return first, last
}

// LoginWithGoogle finds or creates the user for a Google identity. Creation
// races on the same email are resolved by the unique index: a duplicate-key
// error means another request won, so the existing row is fetched instead.
func (s *UserService) LoginWithGoogle(ctx context.Context, id GoogleIdentity) (*models.User, error) {
	if strings.TrimSpace(id.Email) == "" {
		return nil, invalid("could not get email from google account")
	}

	firstName, lastName := googleNames(id)

	user := models.User{
		Username:  id.Email,
		Email:     id.Email,
		FirstName: firstName,
		LastName:  lastName,
		Country:   "Turkey",
		City:      "Istanbul",
	}
	err := s.DB.WithContext(ctx).Create(&user).Error
	if err == nil {
		return &user, nil
	}
	if !isDuplicateKey(err) {
		return nil, fmt.Errorf("create google user: %w", err)
	}

	var existing models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", id.Email).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("find google user: %w", err)
	}

	// Profile-completion fallback for users created before names were known.
	if strings.TrimSpace(existing.FirstName) == "" {
		updates := map[string]any{"first_name": firstName}
		if lastName != "" {
			updates["last_name"] = lastName
		}
		if err := s.DB.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("backfill google user names: %w", err)
		}
	}
	return &existing, nil
}

// SetPhoto records the stored photo path for an existing user. Photos are
// attached after creation so a rejected registration never references one.
func (s *UserService) SetPhoto(ctx context.Context, user *models.User, path string) error {
	user.Photo = path
	if err := s.DB.WithContext(ctx).Model(user).Update("photo", path).Error; err != nil {
		return fmt.Errorf("set user photo: %w", err)
	}
	return nil
}

// GetByID loads a user by primary key, typically from the session.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}
