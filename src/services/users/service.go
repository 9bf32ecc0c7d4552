package users

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"Backend-ClassPulse/src/database"
	"Backend-ClassPulse/src/jobs"
	"Backend-ClassPulse/src/models"
	"Backend-ClassPulse/src/services/users/email"
	"Backend-ClassPulse/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrUserNotFound       = errors.New("user not found")
)

const queryTimeout = 5 * time.Second

// Register creates an account. Role defaults to Student; professors are the
// only ones who can run activities, the role gate sits in the middleware.
func Register(name, emailAddr, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleProfessor && role != models.RoleStudent {
		return nil, errors.New("role must be Professor or Student")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(emailAddr)),
		Password: string(hashed),
		Role:     role,
	}

	_, err = database.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email+password and returns the account.
func Authenticate(emailAddr, password string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(emailAddr))}).Decode(&user)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// RequestPasswordReset issues a one-time token and mails a reset link.
// Callers always report success so the endpoint cannot be used to probe
// which emails have accounts. The mail goes out through the Asynq worker;
// without Redis it is sent inline.
func RequestPasswordReset(emailAddr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(emailAddr))}).Decode(&user)
	if err != nil {
		return nil // unknown email: pretend success
	}

	token := uuid.NewString()
	if err := utils.StoreResetToken(token, user.ID.Hex()); err != nil {
		return err
	}

	if database.AsynqClient != nil {
		task, err := jobs.NewResetPasswordEmailTask(user.Email, user.Name, token)
		if err != nil {
			return err
		}
		if _, err := database.AsynqClient.Enqueue(task); err != nil {
			log.Println("⚠️ Failed to enqueue reset email, sending inline:", err)
			return email.SendResetPassword(user.Email, user.Name, token)
		}
		return nil
	}

	return email.SendResetPassword(user.Email, user.Name, token)
}

// ValidateResetToken checks a token without consuming it (the frontend
// calls this before showing the new-password form).
func ValidateResetToken(token string) error {
	userID, err := utils.LookupResetToken(token)
	if err != nil {
		return err
	}
	if userID == "" {
		return ErrInvalidResetToken
	}
	return nil
}

// ResetPassword sets a new password for the token's user and consumes the
// token so it cannot be replayed.
func ResetPassword(token, newPassword string) error {
	userID, err := utils.LookupResetToken(token)
	if err != nil {
		return err
	}
	if userID == "" {
		return ErrInvalidResetToken
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"password": string(hashed)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return utils.ConsumeResetToken(token)
}
