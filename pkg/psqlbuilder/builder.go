package psqlbuilder

import "github.com/Masterminds/squirrel"

// Builder squirrel pré-configurado com placeholders $1, $2, ... do PostgreSQL.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select inicia um SELECT com placeholder do PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert inicia um INSERT com placeholder do PostgreSQL
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update inicia um UPDATE com placeholder do PostgreSQL
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete inicia um DELETE com placeholder do PostgreSQL
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
