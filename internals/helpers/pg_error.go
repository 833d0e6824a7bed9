package helper

import (
	"errors"
	"strings"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
// String fallback supaya kompatibel untuk lib/pq & pgx yang dibungkus.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
