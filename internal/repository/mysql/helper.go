package mysql

import (
	"errors"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ER_DUP_ENTRY
const errDuplicateEntry = 1062

// IDGenerator returns the random part of a new record id.
type IDGenerator func() string

// UUIDGenerator is the IDGenerator used in production.
func UUIDGenerator() string {
	return uuid.NewString()
}

func newID(prefix string, gen IDGenerator) string {
	return prefix + "-" + gen()
}

// now is truncated to the column precision so that what is returned matches what is stored.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *driver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}
