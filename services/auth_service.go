package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"college-backend/models"
	"college-backend/utils"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Branch   string
}

// AuthService owns registration, login and token issuance.
//
// Registration rules follow the portal's policy: accounts are restricted to
// the college email domain, students must pick a branch, the first admin
// account must match the configured bootstrap email and any further admin
// accounts can only be created by an existing admin.
type AuthService struct {
	db          *gorm.DB
	catalog     *models.Catalog
	emailDomain string
	firstAdmin  string
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(db *gorm.DB, catalog *models.Catalog, emailDomain, firstAdminEmail, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:          db,
		catalog:     catalog,
		emailDomain: emailDomain,
		firstAdmin:  firstAdminEmail,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

func (s *AuthService) Register(in *RegisterInput, actor *models.User) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password", models.ErrMissingField)
	}
	if !strings.HasSuffix(email, "@"+s.emailDomain) {
		return nil, fmt.Errorf("%w: registration is restricted to @%s addresses", models.ErrValidation, s.emailDomain)
	}

	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}

	switch role {
	case models.RoleStudent:
		if in.Branch == "" {
			return nil, fmt.Errorf("%w: branch", models.ErrMissingField)
		}
		if !s.catalog.IsValidBranch(in.Branch) {
			return nil, fmt.Errorf("%w: branch %q", models.ErrInvalidEnum, in.Branch)
		}
	case models.RoleFaculty:
		if email != "faculty@"+s.emailDomain {
			return nil, models.ErrForbidden
		}
	case models.RoleAdmin:
		var adminCount int64
		if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
			return nil, fmt.Errorf("count admins: %w", err)
		}
		if adminCount == 0 {
			if s.firstAdmin == "" || email != strings.ToLower(s.firstAdmin) {
				return nil, models.ErrForbidden
			}
		} else if actor == nil || !actor.IsAdmin() {
			return nil, models.ErrForbidden
		}
	default:
		return nil, fmt.Errorf("%w: role %q", models.ErrInvalidEnum, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if role == models.RoleStudent {
		user.Branch = in.Branch
	}

	if err := s.db.Create(user).Error; err != nil {
		var mysqlErr *mysqldrv.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil, models.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	return user, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password", models.ErrMissingField)
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(&user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &user, token, nil
}

func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
