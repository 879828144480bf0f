package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"tauthy/auth"
	"tauthy/errors"
	"tauthy/repositories"
)

type IAuthService interface {
	Register(req RegisterInput) (Session, error)
	Login(username, password string) (Session, error)
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token    string
	UserID   string
	Username string
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         *auth.TokenIssuer
	log            *slog.Logger
}

func NewAuthService(repo repositories.IUserRepository, tokens *auth.TokenIssuer, log *slog.Logger) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens, log: log}
}

func (s *AuthService) Register(in RegisterInput) (Session, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	// validation runs before hashing, which is the expensive part
	if err := auth.ValidateRegister(auth.RegisterRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
	}); err != nil {
		return Session{}, err
	}

	hashedPassword, err := auth.HashPassword(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(repositories.NewUser{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return Session{}, err
	}
	s.log.Info("User registered", "user_id", userID, "username", in.Username)

	return s.session(userID, in.Username)
}

// Login never says whether the username or the password was wrong.
func (s *AuthService) Login(username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil {
		if !stderrors.Is(err, errors.ErrNotFound) {
			s.log.Error("User lookup failed", "username", username, "error", err)
		}
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	if auth.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(user.ID, password)
	}
	return s.session(user.ID, user.Username)
}

// upgradeHash moves a legacy bcrypt account to argon2id. Failure only costs the upgrade.
func (s *AuthService) upgradeHash(userID, password string) {
	hash, err := auth.HashPassword(password)
	if err == nil {
		err = s.userRepository.UpdatePasswordHash(userID, hash)
	}
	if err != nil {
		s.log.Warn("Password rehash failed", "user_id", userID, "error", err)
		return
	}
	s.log.Info("Password hash upgraded", "user_id", userID)
}

func (s *AuthService) session(userID, username string) (Session, error) {
	token, err := s.tokens.Issue(userID, username)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{Token: token, UserID: userID, Username: username}, nil
}
