package utils

import (
	"database/sql"
)

// NullStringToString convertit un sql.NullString en string ("" si NULL)
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullBoolToPointer convertit un sql.NullBool en *bool (nil si NULL)
func NullBoolToPointer(nb sql.NullBool) *bool {
	if nb.Valid {
		value := nb.Bool
		return &value
	}
	return nil
}

// PointerToNullBool convertit un *bool en sql.NullBool (NULL si nil)
func PointerToNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
