package sqlstore

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/ericzzh/mattermost-plugin-offboard/server/bot"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// SQLStore works directly on the Mattermost database.
type SQLStore struct {
	log     bot.Logger
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// New wraps the server's master database.
func New(origDB *sql.DB, driverName string, logger bot.Logger) (*SQLStore, error) {
	if origDB == nil {
		return nil, errors.New("database is not set")
	}

	db := sqlx.NewDb(origDB, driverName)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if driverName == model.DatabaseDriverPostgres {
		builder = builder.PlaceholderFormat(sq.Dollar)
	} else {
		// Postgres folds column names to lower case, the others keep the case of the schema.
		db.MapperFunc(func(s string) string { return s })
	}

	return &SQLStore{
		log:     logger,
		db:      db,
		builder: builder,
	}, nil
}

type builder interface {
	ToSql() (string, []interface{}, error)
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (sqlStore *SQLStore) selectBuilder(q sqlx.Queryer, dest interface{}, b builder) error {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build sql")
	}

	return sqlx.Select(q, dest, sqlString, args...)
}

func (sqlStore *SQLStore) getBuilder(q sqlx.Queryer, dest interface{}, b builder) error {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build sql")
	}

	return sqlx.Get(q, dest, sqlString, args...)
}

func (sqlStore *SQLStore) execBuilder(e execer, b builder) (sql.Result, error) {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sql")
	}

	return e.Exec(sqlString, args...)
}

// execAffected runs the statement and returns the number of affected rows.
func (sqlStore *SQLStore) execAffected(e execer, b builder) (int64, error) {
	res, err := sqlStore.execBuilder(e, b)
	if err != nil {
		return 0, err
	}

	rc, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get affected rows")
	}
	return rc, nil
}

// finalizeTransaction ensures a transaction is closed after use, rolling back if not already committed.
func (sqlStore *SQLStore) finalizeTransaction(tx *sqlx.Tx) {
	// Rollback returns sql.ErrTxDone if the transaction was already closed.
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		sqlStore.log.Errorf("Offboard: failed to rollback transaction. err:%v", err)
	}
}

// inTransaction runs f in a transaction and commits when f succeeds.
func (sqlStore *SQLStore) inTransaction(f func(tx *sqlx.Tx) error) error {
	tx, err := sqlStore.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "failed to start transaction")
	}
	defer sqlStore.finalizeTransaction(tx)

	if err := f(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Stores exposes the SQL store as every repository of the deletion.
func (sqlStore *SQLStore) Stores() app.Stores {
	return app.Stores{
		Users:         sqlStore,
		Subscriptions: sqlStore,
		Roles:         sqlStore,
		Rooms:         sqlStore,
		Messages:      sqlStore,
		Integrations:  sqlStore,
	}
}
