package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stakebridge/stakebridge/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	reservationFields = "token, withdrawal_id, transaction_id, customer_address, amount, create_time"

	uniqueViolationCode = "23505"
)

type IRepository interface {
	AvailableBalance(context.Context, model.CustomerKey) (decimal.Decimal, error)
	Begin(context.Context) (IReservationTx, error)
	Reservations(context.Context, string) ([]model.Reservation, error)
	DeleteReservation(context.Context, model.Reservation) error
	IsTransactionConfirmed(context.Context, string) (bool, error)
}

// IReservationTx scopes one balance-check batch to a single storage
// transaction: reads and reservation inserts all see the same snapshot
// and become durable on Commit.
type IReservationTx interface {
	LockCustomer(ctx context.Context, customerAddress string) error
	AvailableBalance(context.Context, model.CustomerKey) (decimal.Decimal, error)
	ReservedAmount(ctx context.Context, token, customerAddress string) (decimal.Decimal, error)
	HasReservation(context.Context, model.Reservation) (bool, error)
	InsertReservation(context.Context, model.Reservation) (bool, error)
	Commit() error
	Rollback() error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations)
	if err = goose.Up(conn, "migrations"); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) AvailableBalance(ctx context.Context, key model.CustomerKey) (decimal.Decimal, error) {
	return availableBalance(ctx, r.Conn, key)
}

func (r Repository) Begin(ctx context.Context) (IReservationTx, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &ReservationTx{tx: tx}, nil
}

func (r Repository) Reservations(ctx context.Context, token string) ([]model.Reservation, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+reservationFields+" FROM reservation WHERE token = $1 ORDER BY create_time", token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var res model.Reservation
		err = rows.Scan(&res.Token, &res.WithdrawalID, &res.TransactionID, &res.CustomerAddress, &res.Amount, &res.CreateTime)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (r Repository) DeleteReservation(ctx context.Context, res model.Reservation) error {
	_, err := r.Conn.ExecContext(ctx,
		"DELETE FROM reservation WHERE token = $1 AND withdrawal_id = $2 AND transaction_id = $3 AND customer_address = $4",
		res.Token, res.WithdrawalID, res.TransactionID, res.CustomerAddress)
	return err
}

func (r Repository) IsTransactionConfirmed(ctx context.Context, txID string) (bool, error) {
	exist := false

	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM transactions WHERE tx_id=$1)", txID)
	err := row.Scan(&exist)
	if err != nil {
		return false, err
	}

	return exist, nil
}

type ReservationTx struct {
	tx *sql.Tx
}

// LockCustomer serializes overlapping authorization cycles on one
// customer: the lock is held until the transaction ends, so a concurrent
// cycle cannot read the reserved sum until this batch's reservations for
// the customer are committed.
func (t *ReservationTx) LockCustomer(ctx context.Context, customerAddress string) error {
	_, err := t.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", customerAddress)
	return err
}

func (t *ReservationTx) AvailableBalance(ctx context.Context, key model.CustomerKey) (decimal.Decimal, error) {
	return availableBalance(ctx, t.tx, key)
}

func (t *ReservationTx) ReservedAmount(ctx context.Context, token, customerAddress string) (decimal.Decimal, error) {
	var reserved decimal.Decimal

	row := t.tx.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM reservation WHERE token = $1 AND customer_address = $2",
		token, customerAddress)
	err := row.Scan(&reserved)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return reserved, nil
}

func (t *ReservationTx) HasReservation(ctx context.Context, res model.Reservation) (bool, error) {
	exist := false

	row := t.tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reservation WHERE token = $1 AND withdrawal_id = $2 AND transaction_id = $3 AND customer_address = $4)",
		res.Token, res.WithdrawalID, res.TransactionID, res.CustomerAddress)
	err := row.Scan(&exist)
	if err != nil {
		return false, err
	}

	return exist, nil
}

// InsertReservation stores a reservation and reports whether a new row was
// created. A re-run of an already approved withdrawal hits the unique key
// and is a no-op, not an error.
func (t *ReservationTx) InsertReservation(ctx context.Context, res model.Reservation) (bool, error) {
	result, err := t.tx.ExecContext(ctx,
		"INSERT INTO reservation ("+reservationFields+") VALUES ($1, $2, $3, $4, $5, $6)"+
			" ON CONFLICT (token, withdrawal_id, transaction_id, customer_address) DO NOTHING",
		res.Token, res.WithdrawalID, res.TransactionID, res.CustomerAddress, res.Amount, res.CreateTime)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (t *ReservationTx) Commit() error {
	return t.tx.Commit()
}

func (t *ReservationTx) Rollback() error {
	return t.tx.Rollback()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func availableBalance(ctx context.Context, q querier, key model.CustomerKey) (decimal.Decimal, error) {
	var vin, vout decimal.Decimal

	row := q.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(vin), 0), COALESCE(SUM(vout), 0) FROM staking"+
			" WHERE liquidity_address = $1 AND deposit_address = $2 AND customer_address = $3",
		key.LiquidityAddress, key.DepositAddress, key.CustomerAddress)
	err := row.Scan(&vin, &vout)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return vin.Sub(vout), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
