package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, username, email, passwordHash, bio, image *string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuthService handles registration, login and the current-user endpoints.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user and returns it with a fresh token. The
// self-follow row is inserted by the repository in the same transaction
// as the user row.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, "", ErrUserAlreadyExists
	}

	hashed, err := models.PasswordFromClearText(password, bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, hashed.Hash())
	if err != nil {
		// A concurrent sign-up can slip past the pre-check; the unique
		// index is the real gate.
		if repositories.IsUniqueViolation(err) {
			return nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	svc.publishUserRegistered(ctx, user)

	return user, token, nil
}

// Login authenticates a user by email and password and returns the user
// with a fresh token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		// Same outcome as a wrong password on purpose.
		return nil, "", ErrInvalidCredentials
	}

	if !models.PasswordFromHash(user.PasswordHash).Verify(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetCurrent returns the authenticated user.
func (svc *AuthService) GetCurrent(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update patches the authenticated user. Unset fields keep their
// previous value; a new password is re-hashed.
func (svc *AuthService) Update(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error) {
	var passwordHash *string
	if update.Password != nil {
		hashed, err := models.PasswordFromClearText(*update.Password, bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		h := hashed.Hash()
		passwordHash = &h
	}

	user, err := svc.writer.Update(ctx, userID, update.Username, update.Email, passwordHash, update.Bio, update.Image)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// publishUserRegistered publishes a sign-up event to Kafka.
func (svc *AuthService) publishUserRegistered(ctx context.Context, user *models.UserDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", user.UserID)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.UserID.String(),
		Username:  user.Username,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event", "user_id", user.UserID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event", "user_id", user.UserID, "error", err)
	} else {
		logger.Log.Infow("user event published", "user_id", user.UserID)
	}
}
