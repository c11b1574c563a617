package repository

import "strings"

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
