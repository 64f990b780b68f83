package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type stubRows struct{}

func (stubRows) Close()                                       {}
func (stubRows) Err() error                                   { return nil }
func (stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (stubRows) Next() bool                                   { return false }
func (stubRows) Scan(dest ...any) error                       { return nil }
func (stubRows) Values() ([]any, error)                       { return nil, nil }
func (stubRows) RawValues() [][]byte                          { return nil }
func (stubRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	ctx := context.Background()

	t.Run("panics when a fn is unset", func(t *testing.T) {
		db := &FakeDB{}
		require.Panics(t, func() { db.Exec(ctx, "", nil) })
		require.Panics(t, func() { db.Query(ctx, "") })
		require.Panics(t, func() { db.QueryRow(ctx, "") })
		require.Panics(t, func() { db.Ping(ctx) })
		// Close is the exception: safe with no fn.
		db.Close()
	})

	t.Run("delegates to the configured fns", func(t *testing.T) {
		called := map[string]bool{}
		db := &FakeDB{
			ExecFn: func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
				called["exec"] = true
				return pgconn.CommandTag{}, errors.New("e")
			},
			QueryFn: func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
				called["query"] = true
				return stubRows{}, nil
			},
			QueryRowFn: func(ctx context.Context, s string, args ...any) pgx.Row {
				called["queryRow"] = true
				return pgx.Row(stubRows{})
			},
			PingFn:  func(ctx context.Context) error { called["ping"] = true; return nil },
			CloseFn: func() { called["close"] = true },
		}

		_, err := db.Exec(ctx, "sql")
		require.Error(t, err)
		_, err = db.Query(ctx, "sql")
		require.NoError(t, err)
		_ = db.QueryRow(ctx, "sql")
		require.NoError(t, db.Ping(ctx))
		db.Close()

		for _, k := range []string{"exec", "query", "queryRow", "ping", "close"} {
			require.True(t, called[k], "missing call %s", k)
		}
	})
}
