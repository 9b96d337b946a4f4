package database

import (
	"fmt"

	"talentbridge/config"
	"talentbridge/ent"

	// Registers the pgx stdlib driver used by ent.Open.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewEntClient opens an ent client over the pgx stdlib driver.
func NewEntClient(cfg config.DBConfig) (*ent.Client, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	entClient, err := ent.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ent client: %w", err)
	}

	return entClient, nil
}
