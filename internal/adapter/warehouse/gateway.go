package warehouse

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"coop-sync/internal/config/configs"
	"coop-sync/internal/core/port"
)

//go:embed sql/*.sql
var queryFS embed.FS

// Gateway implements port.Warehouse against ClickHouse. Query text
// lives in embedded templates under sql/; callers address queries by
// template name (file name without extension). Parameters are rendered
// into the statement text, mirroring how the derived-table DDL is
// generated, so every parameter must originate from a validated config
// field.
type Gateway struct {
	conn      driver.Conn
	templates *template.Template
	logger    *slog.Logger
}

// NewGateway connects to the warehouse and parses the embedded query
// templates. The caller must Close the gateway when done.
func NewGateway(ctx context.Context, cfg configs.Warehouse, logger *slog.Logger) (*Gateway, error) {
	conn, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(queryFS, "sql/*.sql")
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("parse query templates: %w", err)
	}
	return &Gateway{conn: conn, templates: tmpl, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (g *Gateway) Close() error {
	return g.conn.Close()
}

func (g *Gateway) render(name string, params map[string]any) (string, error) {
	var sb strings.Builder
	if err := g.templates.ExecuteTemplate(&sb, name+".sql", params); err != nil {
		return "", fmt.Errorf("render query %s: %w", name, err)
	}
	return sb.String(), nil
}

// Query runs a templated query and returns its rows with values scanned
// into the driver's native Go types.
func (g *Gateway) Query(ctx context.Context, name string, params map[string]any) (*port.ResultSet, error) {
	stmt, err := g.render(name, params)
	if err != nil {
		return nil, err
	}
	rows, err := g.conn.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", port.ErrUnavailable, name, err)
	}
	defer rows.Close()

	rs := &port.ResultSet{Columns: rows.Columns()}
	types := rows.ColumnTypes()
	for rows.Next() {
		dest := make([]any, len(types))
		for i, ct := range types {
			dest[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", name, err)
		}
		record := make([]any, len(dest))
		for i, d := range dest {
			record[i] = reflect.ValueOf(d).Elem().Interface()
		}
		rs.Rows = append(rs.Rows, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", port.ErrUnavailable, name, err)
	}
	return rs, nil
}

// Exec runs a templated statement. Templates may contain several
// statements separated by semicolons; they are executed in order.
func (g *Gateway) Exec(ctx context.Context, name string, params map[string]any) error {
	script, err := g.render(name, params)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err = g.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: exec %s: %v", port.ErrUnavailable, name, err)
		}
	}
	return nil
}

// TableMetadata looks a table up in system.tables. The ref is a
// dot-separated database.table identifier.
func (g *Gateway) TableMetadata(ctx context.Context, ref string) (*port.TableMetadata, error) {
	database, table, ok := strings.Cut(ref, ".")
	if !ok {
		return nil, fmt.Errorf("table ref %q: missing database qualifier", ref)
	}
	var modified time.Time
	row := g.conn.QueryRow(ctx,
		`SELECT metadata_modification_time FROM system.tables WHERE database = ? AND name = ?`,
		database, table)
	if err := row.Scan(&modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("table %s: %w", ref, port.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: table metadata %s: %v", port.ErrUnavailable, ref, err)
	}
	return &port.TableMetadata{Ref: ref, LastModified: modified}, nil
}
