package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder общий squirrel builder с плейсхолдерами $1..$n для PostgreSQL
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с postgres-плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
