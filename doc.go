// Package fluentdb provides a fluent SQL query builder and connection layer for Go.
//
// go-fluent-db offers a Laravel-inspired API for building and executing SQL
// against MySQL, PostgreSQL and SQLite, with identifier escaping, an operator
// whitelist and positional bindings for every value.
//
// # Quick Start
//
// Load the configuration and open a connection:
//
//	cfg, err := fluentdb.LoadConfigFile("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conn, err := fluentdb.Open(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
// # Select Queries
//
// Rows come back as ordered column/value pairs:
//
//	rows, err := conn.Table("users").
//	    Select("id", "name", "email").
//	    Where("status", "active").
//	    OrderBy("created_at", "desc").
//	    Limit(10).
//	    GetContext(ctx)
//
//	user, err := conn.Table("users").Find(1)
//	if user != nil {
//	    fmt.Println(user.Value("name"))
//	}
//
// # Where Clauses
//
// Multiple WHERE methods are available:
//
//	b.Where("age", ">", 18)
//	b.OrWhere("role", "admin")
//	b.WhereIn("status", []string{"active", "pending"})
//	b.WhereBetween("created_at", startDate, endDate)
//	b.WhereNull("deleted_at")
//
// Predicates form a flat AND/OR chain evaluated left to right; no parentheses
// are added, so "(a OR b) AND c" cannot be expressed.
//
// # Insert, Update, Delete
//
//	id, err := conn.Table("users").Insert(map[string]any{
//	    "name":      "John",
//	    "is_active": true,
//	})
//
//	n, err := conn.Table("users").
//	    Where("id", 1).
//	    Update(map[string]any{"status": "inactive"})
//
//	n, err = conn.Table("users").
//	    Where("status", "banned").
//	    Delete()
//
// Update and Delete without any WHERE predicate affect every row. Debug mode
// logs a warning when that happens; the statement still runs.
//
// # Transactions
//
// Transactions nest through savepoints:
//
//	err := conn.Transaction(ctx, func(tx *fluentdb.Connection) error {
//	    if _, err := tx.Table("accounts").Where("id", 1).UpdateContext(ctx, debit); err != nil {
//	        return err
//	    }
//	    return tx.Transaction(ctx, func(tx *fluentdb.Connection) error {
//	        _, err := tx.Table("audit").InsertContext(ctx, entry)
//	        return err
//	    })
//	})
//
// # Security
//
// go-fluent-db protects against SQL injection through:
//   - Positional bindings for all values
//   - Identifier escaping (table/column names)
//   - Operator whitelisting
//
// # Thread Safety
//
// Builder instances are NOT thread-safe. A Connection carries transaction
// state and belongs to a single worker; give each worker its own Connection.
//
// # Supported Databases
//
//   - MySQL / MariaDB (github.com/go-sql-driver/mysql)
//   - PostgreSQL (github.com/lib/pq)
//   - SQLite (modernc.org/sqlite)
package fluentdb
