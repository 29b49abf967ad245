package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moviweb/internal/domain"
	"moviweb/internal/pkg/validator"
	"moviweb/internal/repository"
)

type jwtService interface {
	GenerateToken(actorID int64, role string) (string, error)
}

type Service struct {
	users  *repository.UserRepository
	admins *repository.AdminRepository
	jwt    jwtService
}

type LoginResult struct {
	Profile ProfileResponse
	Token   string
}

func NewService(users *repository.UserRepository, admins *repository.AdminRepository, jwt jwtService) *Service {
	return &Service{users: users, admins: admins, jwt: jwt}
}

// RegisterUser creates a user account. The email must be unique across
// both the user and admin tables, since a single login endpoint serves
// both roles.
func (s *Service) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Gender:       req.Gender,
		AdminID:      req.AdminID,
	}
	if fields := validator.Validate(user); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*domain.Admin, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}
	if fields := validator.Validate(admin); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return admin, nil
}

// Login authenticates against the admin table first, then the user
// table, and issues a role-stamped token for whichever matched. A
// password mismatch on an admin account does not fall through to the
// user table.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		if !checkPassword(admin.PasswordHash, req.Password) {
			return nil, ErrInvalidCredentials
		}
		token, err := s.jwt.GenerateToken(admin.ID, string(domain.RoleAdmin))
		if err != nil {
			return nil, err
		}
		return &LoginResult{Profile: adminProfile(admin), Token: token}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !checkPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(domain.RoleUser))
	if err != nil {
		return nil, err
	}
	return &LoginResult{Profile: userProfile(user), Token: token}, nil
}

// Profile loads the acting identity's profile from whichever table the
// role points at.
func (s *Service) Profile(ctx context.Context, actor domain.Actor) (ProfileResponse, error) {
	if actor.IsAdmin() {
		admin, err := s.admins.GetByID(ctx, actor.ID)
		if err != nil {
			return ProfileResponse{}, err
		}
		return adminProfile(admin), nil
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return ProfileResponse{}, err
	}
	return userProfile(user), nil
}

// UpdateProfile applies profile edits for a user account. A new
// password is re-hashed and the change timestamp recorded.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		now := time.Now()
		user.PasswordUpdatedAt = &now
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetProfilePicture stores the served path of an uploaded avatar.
func (s *Service) SetProfilePicture(ctx context.Context, userID int64, servedPath string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.ProfilePicture = servedPath
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
