package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	bio TEXT,
	image TEXT,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS follows (
	follower_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	followed_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	PRIMARY KEY (follower_id, followed_id)
);

CREATE TABLE IF NOT EXISTS articles (
	article_id UUID PRIMARY KEY,
	slug VARCHAR(255) NOT NULL UNIQUE,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	body TEXT NOT NULL,
	author_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS article_tags (
	article_id UUID NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
	tag VARCHAR(100) NOT NULL,
	PRIMARY KEY (article_id, tag)
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id UUID PRIMARY KEY,
	article_id UUID NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
	author_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	body TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	article_id UUID NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, article_id)
);
`

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	_, err = db.Exec(testSchema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
