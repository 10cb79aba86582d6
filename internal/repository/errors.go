package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation は PostgreSQL の unique_violation
const pgUniqueViolation = "23505"

// isDuplicateKey は一意制約違反かどうかを判定します。
// TranslateError が無効な接続でも pgconn のエラーコードで判定できるようにする
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
