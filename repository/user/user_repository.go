package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/repository/dialect"
	"golang.org/x/crypto/bcrypt"
)

type SQL struct {
	conn *sqlx.DB

	insertQuery string
	listQuery   string
	getQuery    string
	deleteQuery string
}

type UserRepository interface {
	Insert(ctx context.Context, data *model.UserEntity) error
	List(ctx context.Context) ([]model.UserEntity, error)
	GetByUserID(ctx context.Context, userID string) (*model.UserEntity, error)
	Delete(ctx context.Context, userID string) (bool, error)
	ValidateCredentials(ctx context.Context, userID, password string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	table := dialect.ForDriver(conn.DriverName()).UserTable()
	return &SQL{
		conn:        conn,
		insertQuery: conn.Rebind(fmt.Sprintf(insertUserQuery, table)),
		listQuery:   conn.Rebind(fmt.Sprintf(listUsersQuery, table)),
		getQuery:    conn.Rebind(fmt.Sprintf(getUserQuery, table)),
		deleteQuery: conn.Rebind(fmt.Sprintf(deleteUserQuery, table)),
	}
}

const (
	insertUserQuery = `INSERT INTO %s (userid, password, username) VALUES (?, ?, ?)`
	listUsersQuery  = `SELECT userid, username, password FROM %s`
	getUserQuery    = `SELECT userid, username, password FROM %s WHERE userid = ?`
	deleteUserQuery = `DELETE FROM %s WHERE userid = ?`
)

// Insert stores the entity as given; PasswordHash must already be hashed.
// It returns dialect.ErrUniqueViolation when the userid is already taken.
func (s *SQL) Insert(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, s.insertQuery, data.UserID, data.PasswordHash, data.Username)
	return dialect.Translate(err)
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, s.listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserEntity, 0)
	for rows.Next() {
		var it model.UserEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *SQL) GetByUserID(ctx context.Context, userID string) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, s.getQuery, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Delete(ctx context.Context, userID string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, s.deleteQuery, userID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ValidateCredentials loads the single row for userID and checks password against its bcrypt hash.
// An unknown userid and a wrong password both report false without error.
func (s *SQL) ValidateCredentials(ctx context.Context, userID, password string) (bool, error) {
	entity, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if entity == nil {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
