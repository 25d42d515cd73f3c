package sqldb

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// wrapErr turns a gorm failure into a domain error. Unique violations become
// ErrConflict; everything else is an opaque persistence failure.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(domain.ErrConflict, domain.NewPersistenceError(op, err))
	}
	return domain.NewPersistenceError(op, err)
}
