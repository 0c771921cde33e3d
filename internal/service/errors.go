package service

import (
	"errors"
	"fmt"

	"github.com/vpriyankaa/sales-admin-sub000/internal/ws"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failure")
)

// Actor is the authenticated user performing a write. Its ID is stored in the
// audit columns and log rows.
type Actor struct {
	ID    string
	Name  string
	Email string
}

func (a Actor) eventUser() *ws.EventUser {
	return &ws.EventUser{ID: a.ID, Name: a.Name, Email: a.Email}
}

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// validateStruct runs the struct tag rules and folds every failure into one ErrValidation.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return validationErr("%s", validator.Summary(errs))
	}
	return nil
}

// wrapDB maps a repository error onto the service taxonomy. Errors that
// already carry a service sentinel pass through.
func wrapDB(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrPersistence):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFoundErr(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return validationErr("%s already exists", what)
	default:
		return fmt.Errorf("%w: %s: %v", ErrPersistence, what, err)
	}
}
