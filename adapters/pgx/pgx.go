// Package pgx persists the account collection and session in Postgres,
// for deployments that outgrow the key-value stores.
//
// Expected schema:
//
//	CREATE TABLE site_accounts (
//	    id              text PRIMARY KEY,
//	    user_id         text NOT NULL,
//	    name            text NOT NULL,
//	    phone           text NOT NULL,
//	    email           text NOT NULL,
//	    secret          text NOT NULL,
//	    company         text NOT NULL DEFAULT '',
//	    marketing_agree boolean NOT NULL DEFAULT false,
//	    created_at      timestamptz NOT NULL
//	);
//
//	CREATE TABLE site_session (
//	    slot       int PRIMARY KEY DEFAULT 1 CHECK (slot = 1),
//	    user_id    text NOT NULL,
//	    name       text NOT NULL,
//	    phone      text NOT NULL,
//	    email      text NOT NULL,
//	    logged_in  boolean NOT NULL,
//	    created_at timestamptz NOT NULL
//	);
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
)

type Adapter struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

var _ core.StorageAdapter = (*Adapter)(nil)

func New(pool *pgxpool.Pool, log *logrus.Logger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Adapter{pool: pool, log: log}
}

// LoadAccounts reads the whole collection. Query failures are logged
// and read as empty, matching the storage contract.
func (a *Adapter) LoadAccounts() []core.Account {
	ctx := context.Background()
	q := `SELECT id, user_id, name, phone, email, secret, company, marketing_agree, created_at
	      FROM site_accounts ORDER BY created_at`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		a.log.WithError(err).Warn("account collection unreadable, treating as empty")
		return nil
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var acc core.Account
		if err := rows.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Phone, &acc.Email,
			&acc.Secret, &acc.Company, &acc.MarketingOptIn, &acc.CreatedAt); err != nil {
			a.log.WithError(err).Warn("account row unreadable, treating collection as empty")
			return nil
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		a.log.WithError(err).Warn("account collection unreadable, treating as empty")
		return nil
	}
	return accounts
}

// SaveAccounts replaces the whole collection in one transaction,
// keeping the same overwrite semantics as the key-value stores.
func (a *Adapter) SaveAccounts(accounts []core.Account) error {
	ctx := context.Background()

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM site_accounts`); err != nil {
		return err
	}

	q := `INSERT INTO site_accounts (id, user_id, name, phone, email, secret, company, marketing_agree, created_at)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, acc := range accounts {
		if _, err := tx.Exec(ctx, q, acc.ID, acc.UserID, acc.Name, acc.Phone, acc.Email,
			acc.Secret, acc.Company, acc.MarketingOptIn, acc.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (a *Adapter) LoadSession() *core.Session {
	ctx := context.Background()
	q := `SELECT user_id, name, phone, email, logged_in, created_at FROM site_session WHERE slot = 1`

	sess := &core.Session{}
	err := a.pool.QueryRow(ctx, q).Scan(&sess.UserID, &sess.Name, &sess.Phone,
		&sess.Email, &sess.LoggedIn, &sess.CreatedAt)
	if err != nil {
		if err != pgx.ErrNoRows {
			a.log.WithError(err).Warn("session record unreadable, treating as absent")
		}
		return nil
	}
	return sess
}

func (a *Adapter) SaveSession(s *core.Session) error {
	ctx := context.Background()
	q := `INSERT INTO site_session (slot, user_id, name, phone, email, logged_in, created_at)
	      VALUES (1, $1, $2, $3, $4, $5, $6)
	      ON CONFLICT (slot) DO UPDATE SET
	          user_id = EXCLUDED.user_id, name = EXCLUDED.name, phone = EXCLUDED.phone,
	          email = EXCLUDED.email, logged_in = EXCLUDED.logged_in, created_at = EXCLUDED.created_at`

	_, err := a.pool.Exec(ctx, q, s.UserID, s.Name, s.Phone, s.Email, s.LoggedIn, s.CreatedAt)
	return err
}

func (a *Adapter) ClearSession() error {
	_, err := a.pool.Exec(context.Background(), `DELETE FROM site_session WHERE slot = 1`)
	return err
}
