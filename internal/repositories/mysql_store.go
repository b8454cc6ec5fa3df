package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"travelsuggester/internal/domain"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

// NewMySQLStore wires MySQL-backed repositories that share db.
func NewMySQLStore(db *sql.DB, now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	return Store{
		Places:    PlaceRepository{DB: db, Now: now},
		Trips:     TripRepository{DB: db, Now: now},
		BusRoutes: BusRouteRepository{DB: db, Now: now},
		Reviews:   ReviewRepository{DB: db, Now: now},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func stamp(now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	return now().UTC()
}

// binaryEq compares text byte for byte, whatever collation the column has.
const binaryEq = " = ? COLLATE utf8mb4_bin"

// listSQL builds "SELECT cols FROM table [WHERE col = ? COLLATE utf8mb4_bin] ORDER BY id LIMIT ? OFFSET ?".
func listSQL(table, cols string, q domain.ListQuery, allowed []string) (string, []any, error) {
	if err := checkFilter(q.Filter, allowed); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	args := []any{}
	fmt.Fprintf(&b, "SELECT %s FROM %s", cols, table)
	if q.Filter != nil {
		// field is whitelisted by checkFilter
		fmt.Fprintf(&b, " WHERE %s%s", q.Filter.Field, binaryEq)
		args = append(args, q.Filter.Value)
	}
	b.WriteString(" ORDER BY id LIMIT ? OFFSET ?")

	limit := q.Page.Limit
	if limit < 0 {
		limit = math.MaxInt32
	}
	offset := q.Page.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	return b.String(), args, nil
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func countRows(db *sql.DB, ctxQuery func(dest *int) error) (int, error) {
	if db == nil {
		return 0, domain.InternalError{Msg: "database not configured"}
	}
	var n int
	if err := ctxQuery(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
