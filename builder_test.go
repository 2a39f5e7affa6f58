package fluentdb_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluentdb "github.com/biyonik/go-fluent-db"
	"github.com/biyonik/go-fluent-db/dialect"
	"github.com/biyonik/go-fluent-db/internal/validation"
)

func TestBuilder_WhereOrWhere_Scenario(t *testing.T) {
	for _, driver := range []dialect.Driver{dialect.SQLite, dialect.Postgres} {
		t.Run(driver.String(), func(t *testing.T) {
			sql, bindings, err := fluentdb.New(driver).
				Table("posts").
				Where("status", "published").
				OrWhere("featured", 1).
				ToSQL()

			require.NoError(t, err)
			assert.Equal(t, `SELECT * FROM "posts" WHERE "status" = ? OR "featured" = ?`, sql)
			assert.Equal(t, []dialect.Value{dialect.Cast("published"), dialect.Cast(1)}, bindings)
		})
	}
}

func TestBuilder_Update_SetBindingsFirst(t *testing.T) {
	sql, bindings, err := fluentdb.New(dialect.SQLite).
		Table("users").
		Where("id", 1).
		ToUpdateSQL(map[string]any{"name": "Jane"})

	require.NoError(t, err)
	assert.Equal(t, `UPDATE "users" SET "name" = ? WHERE "id" = ?`, sql)
	assert.Equal(t, []dialect.Value{dialect.Cast("Jane"), dialect.Cast(1)}, bindings)
}

func TestBuilder_InvalidOperator(t *testing.T) {
	b := fluentdb.New(dialect.MySQL).Table("users").Where("age", "1; DROP TABLE users;--", "x")

	require.Error(t, b.Err())
	assert.ErrorIs(t, b.Err(), fluentdb.ErrInvalidOperator)

	var opErr *validation.OperatorError
	assert.ErrorAs(t, b.Err(), &opErr)

	sql, bindings, err := b.ToSQL()
	assert.ErrorIs(t, err, fluentdb.ErrInvalidOperator)
	assert.Empty(t, sql)
	assert.Nil(t, bindings)
	assert.Empty(t, b.GetPredicates())
	assert.Empty(t, b.GetBindings())
}

func TestBuilder_WhereForms(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *fluentdb.Builder) *fluentdb.Builder
		wantSQL  string
		wantArgs []dialect.Value
	}{
		{
			name:     "two argument form",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("id", 1) },
			wantSQL:  "SELECT * FROM `users` WHERE `id` = ?",
			wantArgs: []dialect.Value{dialect.Cast(1)},
		},
		{
			name:     "three argument form",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", ">=", 18) },
			wantSQL:  "SELECT * FROM `users` WHERE `age` >= ?",
			wantArgs: []dialect.Value{dialect.Cast(18)},
		},
		{
			name:     "lowercase operator is normalized",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("name", "like", "J%") },
			wantSQL:  "SELECT * FROM `users` WHERE `name` LIKE ?",
			wantArgs: []dialect.Value{dialect.Cast("J%")},
		},
		{
			name:     "nil value binds NULL",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("deleted_at", nil) },
			wantSQL:  "SELECT * FROM `users` WHERE `deleted_at` = ?",
			wantArgs: []dialect.Value{dialect.Cast(nil)},
		},
		{
			name:    "IS nil renders IS NULL",
			build:   func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("deleted_at", "IS", nil) },
			wantSQL: "SELECT * FROM `users` WHERE `deleted_at` IS NULL",
		},
		{
			name:    "IS NOT nil renders IS NOT NULL",
			build:   func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("deleted_at", "is not", nil) },
			wantSQL: "SELECT * FROM `users` WHERE `deleted_at` IS NOT NULL",
		},
		{
			name:    "IS typed nil pointer renders IS NULL",
			build:   func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("deleted_at", "IS", (*time.Time)(nil)) },
			wantSQL: "SELECT * FROM `users` WHERE `deleted_at` IS NULL",
		},
		{
			name:    "IS NOT invalid sql.NullTime renders IS NOT NULL",
			build:   func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("deleted_at", "IS NOT", sql.NullTime{}) },
			wantSQL: "SELECT * FROM `users` WHERE `deleted_at` IS NOT NULL",
		},
		{
			name:     "IN operator delegates to list",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("id", "IN", []int{1, 2, 3}) },
			wantSQL:  "SELECT * FROM `users` WHERE `id` IN (?, ?, ?)",
			wantArgs: []dialect.Value{dialect.Cast(1), dialect.Cast(2), dialect.Cast(3)},
		},
		{
			name:     "NOT IN operator",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("id", "NOT IN", []any{1, "x"}) },
			wantSQL:  "SELECT * FROM `users` WHERE `id` NOT IN (?, ?)",
			wantArgs: []dialect.Value{dialect.Cast(1), dialect.Cast("x")},
		},
		{
			name:     "BETWEEN operator",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", "BETWEEN", [2]int{18, 65}) },
			wantSQL:  "SELECT * FROM `users` WHERE `age` BETWEEN ? AND ?",
			wantArgs: []dialect.Value{dialect.Cast(18), dialect.Cast(65)},
		},
		{
			name: "whereIn then whereNull then orWhereNotNull",
			build: func(b *fluentdb.Builder) *fluentdb.Builder {
				return b.WhereIn("role", []string{"admin", "editor"}).WhereNull("deleted_at").OrWhereNotNull("verified_at")
			},
			wantSQL:  "SELECT * FROM `users` WHERE `role` IN (?, ?) AND `deleted_at` IS NULL OR `verified_at` IS NOT NULL",
			wantArgs: []dialect.Value{dialect.Cast("admin"), dialect.Cast("editor")},
		},
		{
			name: "orWhereIn and whereNotIn",
			build: func(b *fluentdb.Builder) *fluentdb.Builder {
				return b.Where("active", true).OrWhereIn("id", []int64{7}).WhereNotIn("id", []int64{8})
			},
			wantSQL:  "SELECT * FROM `users` WHERE `active` = ? OR `id` IN (?) AND `id` NOT IN (?)",
			wantArgs: []dialect.Value{dialect.Cast(1), dialect.Cast(7), dialect.Cast(8)},
		},
		{
			name: "between and like helpers",
			build: func(b *fluentdb.Builder) *fluentdb.Builder {
				return b.WhereNotBetween("age", 1, 2).WhereLike("email", "%@example.com").WhereNotLike("name", "x%")
			},
			wantSQL:  "SELECT * FROM `users` WHERE `age` NOT BETWEEN ? AND ? AND `email` LIKE ? AND `name` NOT LIKE ?",
			wantArgs: []dialect.Value{dialect.Cast(1), dialect.Cast(2), dialect.Cast("%@example.com"), dialect.Cast("x%")},
		},
		{
			name:     "first predicate via orWhere has no connective",
			build:    func(b *fluentdb.Builder) *fluentdb.Builder { return b.OrWhere("id", 1) },
			wantSQL:  "SELECT * FROM `users` WHERE `id` = ?",
			wantArgs: []dialect.Value{dialect.Cast(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build(fluentdb.New(dialect.MySQL).Table("users"))
			sql, args, err := b.ToSQL()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}


func TestBuilder_WhereNullCheckWithTypedNil(t *testing.T) {
	var deletedAt *time.Time

	for _, driver := range []dialect.Driver{dialect.Postgres, dialect.SQLite} {
		t.Run(driver.String(), func(t *testing.T) {
			query, args, err := fluentdb.New(driver).Table("users").
				Where("deleted_at", "IS", deletedAt).
				Where("archived_at", "IS NOT", (*string)(nil)).
				ToSQL()

			require.NoError(t, err)
			assert.Equal(t, `SELECT * FROM "users" WHERE "deleted_at" IS NULL AND "archived_at" IS NOT NULL`, query)
			assert.Empty(t, args)
		})
	}
}

func TestBuilder_BindingsAlignWithPlaceholders(t *testing.T) {
	b := fluentdb.New(dialect.Postgres).Table("orders").
		Where("status", "paid").
		WhereIn("region", []string{"eu", "us", "apac"}).
		WhereBetween("total", 10, 100).
		WhereNull("refunded_at").
		OrWhere("priority", ">", 3)

	placeholders := 0
	for _, p := range b.GetPredicates() {
		placeholders += p.Fragment.Placeholders()
	}
	assert.Equal(t, placeholders, len(b.GetBindings()))

	sql, args, err := b.ToSQL()
	require.NoError(t, err)
	assert.Len(t, args, 7)

	assert.Equal(t,
		`SELECT * FROM "orders" WHERE "status" = $1 AND "region" IN ($2, $3, $4) AND "total" BETWEEN $5 AND $6 AND "refunded_at" IS NULL OR "priority" > $7`,
		dialect.For(dialect.Postgres).Rebind(sql),
	)
}

func TestBuilder_UsageErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *fluentdb.Builder) *fluentdb.Builder
		want  error
	}{
		{"empty whereIn", func(b *fluentdb.Builder) *fluentdb.Builder { return b.WhereIn("id", []int{}) }, fluentdb.ErrEmptyWhereIn},
		{"whereIn with scalar", func(b *fluentdb.Builder) *fluentdb.Builder { return b.WhereIn("id", 5) }, fluentdb.ErrInvalidArgument},
		{"whereIn with bytes", func(b *fluentdb.Builder) *fluentdb.Builder { return b.WhereIn("id", []byte("ab")) }, fluentdb.ErrInvalidArgument},
		{"IN with empty slice", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("id", "IN", []string{}) }, fluentdb.ErrEmptyWhereIn},
		{"BETWEEN with one value", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", "BETWEEN", []int{1}) }, fluentdb.ErrInvalidBetween},
		{"BETWEEN with scalar", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", "BETWEEN", 1) }, fluentdb.ErrInvalidBetween},
		{"non string operator", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", 1, 2) }, fluentdb.ErrInvalidArgument},
		{"too many values", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("age", "=", 1, 2) }, fluentdb.ErrInvalidArgument},
		{"negative limit", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Limit(-1) }, fluentdb.ErrNegativeLimit},
		{"negative offset", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Offset(-5) }, fluentdb.ErrNegativeLimit},
		{"unknown operator", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Where("id", "===", 1) }, fluentdb.ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build(fluentdb.New(dialect.SQLite).Table("users"))
			assert.ErrorIs(t, b.Err(), tt.want)

			_, _, err := b.ToSQL()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	b := fluentdb.New(dialect.SQLite).Table("users").
		Where("id", "bogus", 1).
		WhereIn("id", []int{}).
		Limit(-1)

	assert.ErrorIs(t, b.Err(), fluentdb.ErrInvalidOperator)
	assert.False(t, errors.Is(b.Err(), fluentdb.ErrEmptyWhereIn))
}

func TestBuilder_SelectReplacesProjection(t *testing.T) {
	sql, _, err := fluentdb.New(dialect.SQLite).
		Table("users").
		Select("id", "name").
		Select("email").
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, `SELECT "email" FROM "users"`, sql)
}

func TestBuilder_OrderAndPaging(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *fluentdb.Builder) *fluentdb.Builder
		want  string
	}{
		{"orderBy desc", func(b *fluentdb.Builder) *fluentdb.Builder { return b.OrderBy("name", "DESC") }, `SELECT * FROM "users" ORDER BY "name" DESC`},
		{"orderBy unknown direction", func(b *fluentdb.Builder) *fluentdb.Builder { return b.OrderBy("name", "sideways") }, `SELECT * FROM "users" ORDER BY "name" ASC`},
		{"latest and oldest", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Latest().Oldest() }, `SELECT * FROM "users" ORDER BY "created_at" DESC, "created_at" ASC`},
		{"take and skip", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Take(10).Skip(20) }, `SELECT * FROM "users" LIMIT 10 OFFSET 20`},
		{"forPage", func(b *fluentdb.Builder) *fluentdb.Builder { return b.ForPage(3, 15) }, `SELECT * FROM "users" LIMIT 15 OFFSET 30`},
		{"forPage clamps page", func(b *fluentdb.Builder) *fluentdb.Builder { return b.ForPage(0, 15) }, `SELECT * FROM "users" LIMIT 15 OFFSET 0`},
		{"offset only", func(b *fluentdb.Builder) *fluentdb.Builder { return b.Offset(5) }, `SELECT * FROM "users" LIMIT -1 OFFSET 5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := tt.build(fluentdb.New(dialect.SQLite).Table("users")).ToSQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestBuilder_Clone(t *testing.T) {
	base := fluentdb.New(dialect.SQLite).Table("users").Where("active", true).Limit(5)
	clone := base.Clone().Where("role", "admin").Limit(1)

	baseSQL, baseArgs, err := base.ToSQL()
	require.NoError(t, err)
	cloneSQL, cloneArgs, err := clone.ToSQL()
	require.NoError(t, err)

	assert.Equal(t, `SELECT * FROM "users" WHERE "active" = ? LIMIT 5`, baseSQL)
	assert.Len(t, baseArgs, 1)
	assert.Equal(t, `SELECT * FROM "users" WHERE "active" = ? AND "role" = ? LIMIT 1`, cloneSQL)
	assert.Len(t, cloneArgs, 2)
}

func TestBuilder_WhenUnless(t *testing.T) {
	filter := ""
	sql, _, err := fluentdb.New(dialect.SQLite).Table("users").
		When(filter != "", func(b *fluentdb.Builder) { b.Where("name", filter) }).
		Unless(filter != "", func(b *fluentdb.Builder) { b.WhereNotNull("name") }).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users" WHERE "name" IS NOT NULL`, sql)
}

func TestBuilder_CountIgnoresProjectionOrderLimit(t *testing.T) {
	sql, args, err := fluentdb.New(dialect.MySQL).Table("users").
		Select("id").
		Where("active", 1).
		OrderByDesc("id").
		Limit(3).
		ToCountSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS `aggregate` FROM `users` WHERE `active` = ?", sql)
	assert.Equal(t, []dialect.Value{dialect.Cast(1)}, args)
}

func TestBuilder_InsertSQL(t *testing.T) {
	sql, args, err := fluentdb.New(dialect.Postgres).Table("users").
		ToInsertSQL(map[string]any{"name": "John", "is_active": true})

	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("is_active", "name") VALUES (?, ?) RETURNING "id"`, sql)
	assert.Equal(t, []dialect.Value{dialect.Cast(1), dialect.Cast("John")}, args)

	sql, _, err = fluentdb.New(dialect.Postgres).Table("users").PrimaryKey("").
		ToInsertSQL(map[string]any{"name": "John"})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES (?)`, sql)
}

func TestBuilder_InsertManySQL(t *testing.T) {
	sql, args, err := fluentdb.New(dialect.SQLite).Table("users").ToInsertManySQL([]map[string]any{
		{"name": "John", "age": 30},
		{"name": "Jane", "age": 25},
	})

	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("age", "name") VALUES (?, ?), (?, ?)`, sql)
	assert.Len(t, args, 4)

	_, _, err = fluentdb.New(dialect.SQLite).Table("users").ToInsertManySQL([]map[string]any{
		{"name": "John"},
		{"email": "jane@example.com"},
	})
	assert.ErrorIs(t, err, fluentdb.ErrInconsistentBatch)
}

func TestBuilder_WithoutConnection(t *testing.T) {
	b := fluentdb.New(dialect.SQLite).Table("users")

	_, err := b.GetContext(context.Background())
	assert.ErrorIs(t, err, fluentdb.ErrNoExecutor)

	_, err = b.Count()
	assert.ErrorIs(t, err, fluentdb.ErrNoExecutor)

	_, err = b.Insert(map[string]any{"name": "x"})
	assert.ErrorIs(t, err, fluentdb.ErrNoExecutor)
}

func TestBuilder_NoTable(t *testing.T) {
	_, _, err := fluentdb.New(dialect.SQLite).Where("id", 1).ToSQL()
	assert.ErrorIs(t, err, fluentdb.ErrNoTable)
}
