package sqlseg_test

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/qjebbs/go-sqlseg"
	"github.com/qjebbs/go-sqlseg/dialect"
	_ "modernc.org/sqlite"
)

type employee struct {
	ID       int64
	Name     string
	HireDate string
}

var (
	employeesTable = sqlseg.Ident("employees")
	idField        = sqlseg.Ident("employee_id")
	nameField      = sqlseg.Ident("name")
	hireDateField  = sqlseg.Ident("hire_date")

	name1 = "O'Brien"
	name2 = `Doe "John"`

	createEmployees = sqlseg.SQL("CREATE TABLE", employeesTable, "(", []sqlseg.Segment{
		sqlseg.SQL(idField, "INT", "PRIMARY KEY"),
		sqlseg.SQL(nameField, "VARCHAR(50)"),
		sqlseg.SQL(hireDateField, "TEXT"),
	}, ")")

	insertEmployees = sqlseg.SQL(
		"INSERT INTO employees (", []sqlseg.Identifier{idField, nameField, hireDateField}, ") VALUES (",
		sqlseg.V([]any{1, name1, "2020-01-01"}),
		"), (",
		sqlseg.V([]any{2, name2, "2020-01-02"}),
		")",
	)

	selectEmployees = sqlseg.SQL("SELECT * FROM", employeesTable, "ORDER BY", idField)

	wantEmployees = []employee{
		{1, name1, "2020-01-01"},
		{2, name2, "2020-01-02"},
	}
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every connection has its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func queryEmployees(t *testing.T, db *sql.DB, query string, args ...any) []employee {
	t.Helper()
	rows, err := db.Query(query, args...)
	if err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	defer rows.Close()
	var r []employee
	for rows.Next() {
		var e employee
		if err := rows.Scan(&e.ID, &e.Name, &e.HireDate); err != nil {
			t.Fatal(err)
		}
		r = append(r, e)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSQLiteEscaped(t *testing.T) {
	db := openSQLite(t)
	escape := dialect.SQLite{}.EscapeValue
	for _, s := range []sqlseg.Segment{createEmployees, insertEmployees} {
		if _, err := db.Exec(s.Render(escape)); err != nil {
			t.Fatalf("exec %q: %v", s.Render(escape), err)
		}
	}
	got := queryEmployees(t, db, selectEmployees.Render(escape))
	if !reflect.DeepEqual(got, wantEmployees) {
		t.Fatalf("got %v, want %v", got, wantEmployees)
	}
}

func TestSQLitePrepared(t *testing.T) {
	db := openSQLite(t)
	for _, s := range []sqlseg.Segment{createEmployees, insertEmployees} {
		query, args := s.Query()
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}
	query, args := selectEmployees.Query()
	got := queryEmployees(t, db, query, args...)
	if !reflect.DeepEqual(got, wantEmployees) {
		t.Fatalf("got %v, want %v", got, wantEmployees)
	}
}

func TestSQLiteInjection(t *testing.T) {
	db := openSQLite(t)
	query, args := createEmployees.Query()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatal(err)
	}
	hostile := "x'); DROP TABLE employees; --"
	insert := sqlseg.SQL("INSERT INTO", employeesTable, "VALUES (", sqlseg.V([]any{3, hostile, "2021-01-01"}), ")")
	escape := dialect.SQLite{}.EscapeValue
	if _, err := db.Exec(insert.Render(escape)); err != nil {
		t.Fatal(err)
	}
	got := queryEmployees(t, db, selectEmployees.String())
	if len(got) != 1 || got[0].Name != hostile {
		t.Fatalf("got %v, want the hostile name stored verbatim", got)
	}
}
