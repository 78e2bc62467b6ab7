// Package ch provides a clickhouse client over the native protocol
package ch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL string

	// Role and Tag identify this process in server side query logs
	Role string
	Tag  string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH wraps a native protocol clickhouse connection
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and connects, verifying the server with a ping
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch parse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ch open: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ch ping: %w", err)
	}
	return &CH{conn: conn}, nil
}

// Insert appends rows to a prepared batch and sends it
// table should include the column list, eg "t (a, b)"
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil connection")
	}
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			_ = batch.Abort()
			return err
		}
	}
	return batch.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if c == nil || c.conn == nil {
		return nil, errors.New("ch: nil connection")
	}
	rs, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r: rs}, nil
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil connection")
	}
	return c.conn.Ping(ctx)
}

// Close closes the underlying connection
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// chRows adapts driver.Rows to the ch.Rows seam
type chRows struct{ r driver.Rows }

func (x chRows) Next() bool            { return x.r.Next() }
func (x chRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x chRows) Err() error            { return x.r.Err() }
func (x chRows) Close() error          { return x.r.Close() }
func (x chRows) Columns() []string     { return x.r.Columns() }
