// Package dbtest opens gorm on the MySQL dialector over a scripted database/sql
// driver, so tests can assert the SQL gorm renders without a server.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Kind int

const (
	Query Kind = iota
	Exec
)

// Step is one expected statement, consumed in order. Args nil accepts any arguments.
type Step struct {
	Kind    Kind
	Pattern *regexp.Regexp
	Args    []driver.Value
	Columns []string
	Rows    [][]driver.Value
	Err     error
	// Exec only. nil reports one affected row.
	Result driver.Result
}

// Call is a statement the driver received.
type Call struct {
	Query string
	Args  []driver.Value
}

type Script struct {
	mu    sync.Mutex
	steps []*Step
	calls []Call
}

// Verify reports steps that were never reached.
func (s *Script) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d, next %q", len(s.steps), s.steps[0].Pattern)
	}
	return nil
}

func (s *Script) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Script) next(kind Kind, query string, named []driver.NamedValue) (*Step, error) {
	args := make([]driver.Value, len(named))
	for i, nv := range named {
		args[i] = nv.Value
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Query: query, Args: args})
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	step := s.steps[0]
	if step.Kind != kind || !step.Pattern.MatchString(query) {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	if step.Args != nil {
		if len(step.Args) != len(args) {
			return nil, fmt.Errorf("unexpected arg count for %s: got %d want %d", query, len(args), len(step.Args))
		}
		for i := range args {
			if args[i] != step.Args[i] {
				return nil, fmt.Errorf("unexpected arg %d for %s: got %v want %v", i, query, args[i], step.Args[i])
			}
		}
	}
	s.steps = s.steps[1:]
	return step, nil
}

var driverSeq atomic.Int64

// Open registers a fresh driver for steps and returns a gorm handle on it.
// Default transactions are skipped since the driver has no Begin.
func Open(t testing.TB, steps ...*Step) (*gorm.DB, *Script) {
	t.Helper()
	script := &Script{steps: steps}
	name := fmt.Sprintf("dbtest_%d", driverSeq.Add(1))
	sql.Register(name, &scriptDriver{script: script})

	sqlDB, err := sql.Open(name, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}
	return db, script
}

type scriptDriver struct {
	script *Script
}

func (d *scriptDriver) Open(string) (driver.Conn, error) {
	return &scriptConn{script: d.script}, nil
}

type scriptConn struct {
	script *Script
}

func (c *scriptConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptConn) Close() error { return nil }

func (c *scriptConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *scriptConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	step, err := c.script.next(Query, query, args)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	return &scriptRows{columns: step.Columns, rows: step.Rows}, nil
}

func (c *scriptConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	step, err := c.script.next(Exec, query, args)
	if err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	if step.Result != nil {
		return step.Result, nil
	}
	return Affected(1), nil
}

// Affected is an exec result with n rows affected and no insert id.
type Affected int64

func (Affected) LastInsertId() (int64, error) { return 0, nil }

func (a Affected) RowsAffected() (int64, error) { return int64(a), nil }

type scriptRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptRows) Columns() []string { return r.columns }

func (r *scriptRows) Close() error { return nil }

func (r *scriptRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	for i := range dest {
		dest[i] = nil
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}
