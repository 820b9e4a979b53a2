package service

import (
	"errors"

	"go-inventory-rfid/internal/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrStockOverflow      = errors.New("stock quantity would exceed the maximum")
	ErrInUse              = errors.New("record is still referenced")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrForbiddenRole      = errors.New("only an admin can register an admin")
)

// Publisher receives inventory events after they are committed.
type Publisher interface {
	Publish(eventType string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID   uint
	Username string
	Role     string
}
