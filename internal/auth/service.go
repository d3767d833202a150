package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/utils"
)

const maxPasswordBytes = 72

// MsgUnauthorized is the only message a failed credential check ever produces.
const MsgUnauthorized = "Unauthorized Access"

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

type Service interface {
	Register(ctx context.Context, in RegisterInput, ip string) (*User, error)
	Verify(ctx context.Context, username, password string) (*User, error)
	GetUserByID(ctx context.Context, userID uint) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	PromoteAdmin(ctx context.Context, principal User, targetID uint, ip string) (*User, error)
	PromoteByUsername(ctx context.Context, username string) (*User, error)

	IssueToken(principal User) (string, time.Duration, error)
	ParseToken(token string) (uint, error)
}

type service struct {
	repo      Repository
	audit     auditlog.Service
	publisher notification.Publisher

	accessSecret []byte
	accessTTL    time.Duration
	hashCost     int
	now          func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewService(r Repository, cfg *config.Config, audit auditlog.Service, publisher notification.Publisher) Service {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &service{
		repo:         r,
		audit:        audit,
		publisher:    publisher,
		accessSecret: []byte(cfg.TokenSecret()),
		accessTTL:    time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		hashCost:     cost,
		now:          time.Now,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// validate applies the format rules in order and reports the first failure.
func (in RegisterInput) validate() error {
	if !usernamePattern.MatchString(in.Username) {
		return utils.Validation("username may only contain letters, digits and underscores")
	}
	if utf8.RuneCountInString(in.FirstName) < 3 {
		return utils.Validation("first_name must be at least 3 characters")
	}
	if !emailPattern.MatchString(in.Email) {
		return utils.Validation("email is not correct")
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		return utils.Validation("password length must be at least 6")
	}
	// bcrypt only hashes the first 72 bytes and refuses longer input
	if len(in.Password) > maxPasswordBytes {
		return utils.Validation(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

func (s *service) Register(ctx context.Context, in RegisterInput, ip string) (*User, error) {
	if err := in.validate(); err != nil {
		s.audit.LogAction(ctx, nil, nil, "USER_REGISTER_FAILED", map[string]interface{}{
			"username": in.Username,
			"reason":   utils.MessageOf(err),
		}, ip, auditlog.StatusFailure)
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, utils.Conflict("username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.Internal("failed to register user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, utils.Internal("failed to register user", err)
	}

	user := &User{
		Username:  in.Username,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateUserError(ctx, in.Username)
		}
		return nil, utils.Internal("failed to register user", err)
	}

	// ✅ Side effects
	metrics.UsersRegistered.Inc()
	s.audit.LogAction(ctx, &user.ID, &user.ID, "USER_REGISTERED", map[string]interface{}{
		"username": user.Username,
		"is_admin": user.IsAdmin,
	}, ip, auditlog.StatusSuccess)
	notification.Emit(ctx, s.publisher, notification.Message{
		Type:    notification.TypeUserRegistered,
		ActorID: user.ID,
		UserID:  user.ID,
		Payload: map[string]interface{}{"username": user.Username},
	})

	if user.IsAdmin {
		metrics.AdminPromotions.WithLabelValues("bootstrap").Inc()
		log.Info().Str("username", user.Username).Msg("👑 first user registered as admin")
	}

	return user, nil
}

// duplicateUserError tells a username clash from an email clash after the unique index fired.
func (s *service) duplicateUserError(ctx context.Context, username string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return utils.Conflict("username already exists")
	}
	return utils.Conflict("email already registered")
}

// =============================
// Verify
// =============================

func (s *service) Verify(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("credential lookup failed")
		}
		// spend the same bcrypt time as a real comparison
		_ = bcrypt.CompareHashAndPassword(s.fallbackHash(), []byte(password))
		return nil, utils.Unauthenticated(MsgUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthenticated(MsgUnauthorized)
	}
	return user, nil
}

func (s *service) fallbackHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.hashCost)
	})
	return s.dummyHash
}

// =============================
// Lookups
// =============================

func (s *service) GetUserByID(ctx context.Context, userID uint) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("User not found")
	}
	if err != nil {
		return nil, utils.Internal("failed to load user", err)
	}
	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list users", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// =============================
// Admin promotion
// =============================

func (s *service) PromoteAdmin(ctx context.Context, principal User, targetID uint, ip string) (*User, error) {
	if err := RequireAdmin(principal); err != nil {
		s.audit.LogAction(ctx, &principal.ID, &targetID, "ADMIN_PROMOTE_DENIED", nil, ip, auditlog.StatusFailure)
		return nil, err
	}

	target, err := s.promote(ctx, targetID)
	if err != nil {
		return nil, err
	}

	metrics.AdminPromotions.WithLabelValues("api").Inc()
	log.Info().Msgf("%s made admin by %s", target.Username, principal.Username)
	s.audit.LogAction(ctx, &principal.ID, &target.ID, "ADMIN_PROMOTED", map[string]interface{}{
		"target": target.Username,
	}, ip, auditlog.StatusSuccess)
	notification.Emit(ctx, s.publisher, notification.Message{
		Type:    notification.TypeAdminPromoted,
		ActorID: principal.ID,
		UserID:  target.ID,
	})

	return target, nil
}

// PromoteByUsername grants admin without a principal. It backs the promote CLI command.
func (s *service) PromoteByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("User not found")
	}
	if err != nil {
		return nil, utils.Internal("failed to load user", err)
	}

	target, err := s.promote(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.AdminPromotions.WithLabelValues("cli").Inc()
	s.audit.LogAction(ctx, nil, &target.ID, "ADMIN_PROMOTED", map[string]interface{}{
		"target": target.Username,
		"via":    "cli",
	}, "", auditlog.StatusSuccess)

	return target, nil
}

func (s *service) promote(ctx context.Context, targetID uint) (*User, error) {
	if err := s.repo.SetAdmin(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("User not found")
		}
		return nil, utils.Internal("failed to promote user", err)
	}
	return s.GetUserByID(ctx, targetID)
}

// =============================
// Tokens
// =============================

func (s *service) IssueToken(principal User) (string, time.Duration, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(principal.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", 0, utils.Internal("failed to issue token", err)
	}
	return token, s.accessTTL, nil
}

// ParseToken validates a bearer token and returns the user id it was issued to.
func (s *service) ParseToken(tokenStr string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, utils.Unauthenticated(MsgUnauthorized)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, utils.Unauthenticated(MsgUnauthorized)
	}
	return uint(id), nil
}
