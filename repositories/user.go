//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"time"

	"tauthy/errors"
	pb "tauthy/proto/tauthy/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type IUserRepository interface {
	CreateUser(user NewUser) (string, error)
	GetUserByUsername(username string) (User, error)
	GetUserByID(id string) (User, error)
	UpdatePasswordHash(id, hash string) error
}

// NewUser is what registration hands to storage. The password is already hashed.
type NewUser struct {
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
}

// User is the repository view of an account. Badger stores it as pb.User.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(username string) []byte { return []byte("user:" + username) }

func userIDKey(id string) []byte { return []byte("uid:" + id) }

// CreateUser stores the user under its username plus an id → username index.
// Both writes share one transaction, so a conflicting registration fails as a whole.
func (u *UserRepository) CreateUser(newUser NewUser) (string, error) {
	userPb := &pb.User{
		Id:           uuid.NewString(),
		FirstName:    newUser.FirstName,
		LastName:     newUser.LastName,
		Username:     newUser.Username,
		Email:        newUser.Email,
		PasswordHash: newUser.PasswordHash,
		CreatedAt:    timestamppb.Now(),
	}
	data, err := proto.Marshal(userPb)
	if err != nil {
		return "", fmt.Errorf("marshal user: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(userPb.Username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(userIDKey(userPb.Id), []byte(userPb.Username))
	})
	if stderrors.Is(err, badger.ErrConflict) {
		return "", errors.ErrUserAlreadyExists
	}
	if err != nil {
		return "", err
	}
	return userPb.Id, nil
}

func (u *UserRepository) GetUserByUsername(username string) (User, error) {
	var userPb pb.User
	err := u.db.View(func(txn *badger.Txn) error {
		return readUser(txn, username, &userPb)
	})
	if err != nil {
		return User{}, err
	}
	return toUserStruct(&userPb), nil
}

func (u *UserRepository) GetUserByID(id string) (User, error) {
	var userPb pb.User
	err := u.db.View(func(txn *badger.Txn) error {
		username, err := getValue(txn, userIDKey(id))
		if err != nil {
			return err
		}
		return readUser(txn, string(username), &userPb)
	})
	if err != nil {
		return User{}, err
	}
	return toUserStruct(&userPb), nil
}

func (u *UserRepository) UpdatePasswordHash(id, hash string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		username, err := getValue(txn, userIDKey(id))
		if err != nil {
			return err
		}
		var userPb pb.User
		if err := readUser(txn, string(username), &userPb); err != nil {
			return err
		}
		userPb.PasswordHash = hash
		data, err := proto.Marshal(&userPb)
		if err != nil {
			return err
		}
		return txn.Set(userKey(userPb.Username), data)
	})
}

func readUser(txn *badger.Txn, username string, userPb *pb.User) error {
	data, err := getValue(txn, userKey(username))
	if err != nil {
		return err
	}
	if err := proto.Unmarshal(data, userPb); err != nil {
		return fmt.Errorf("unmarshal user %s: %w", username, err)
	}
	return nil
}

func toUserStruct(pbUser *pb.User) User {
	return User{
		ID:           pbUser.Id,
		FirstName:    pbUser.FirstName,
		LastName:     pbUser.LastName,
		Username:     pbUser.Username,
		Email:        pbUser.Email,
		PasswordHash: pbUser.PasswordHash,
		CreatedAt:    pbUser.CreatedAt.AsTime(),
	}
}

// getValue copies the value out of the transaction and turns a missing key into ErrNotFound.
func getValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
