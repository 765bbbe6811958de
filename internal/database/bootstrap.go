package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap creates the experiment tables when they do not exist yet.
// The schema is idempotent so the service can start against an empty
// database without a separate migration step.  Personality vectors,
// travel histories, scenario tags and flight snapshots are stored as
// JSON columns; they are only ever read back whole.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS flights (
			id              VARCHAR(64)  NOT NULL,
			airline         VARCHAR(128) NOT NULL,
			origin          VARCHAR(64)  NOT NULL,
			destination     VARCHAR(64)  NOT NULL,
			departure_time  VARCHAR(32)  NOT NULL,
			arrival_time    VARCHAR(32)  NOT NULL,
			price           BIGINT       NOT NULL,
			available_seats INT          NOT NULL,
			quality_score   DOUBLE       NOT NULL,
			aircraft_type   VARCHAR(64)  NOT NULL,
			class_type      VARCHAR(32)  NOT NULL,
			allowed_luggage VARCHAR(32)  NOT NULL,
			scenario        JSON         NULL,
			created_at      DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_flights_route (origin, destination)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS users (
			id            VARCHAR(64)  NOT NULL,
			name          VARCHAR(128) NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(32)  NOT NULL,
			ab_group      VARCHAR(32)  NOT NULL,
			personality   JSON         NOT NULL,
			history       JSON         NOT NULL,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id             VARCHAR(64) NOT NULL,
			user_id        VARCHAR(64) NOT NULL,
			flight_id      VARCHAR(64) NOT NULL,
			booking_date   VARCHAR(32) NOT NULL,
			status         VARCHAR(32) NOT NULL,
			flight_snapshot JSON       NOT NULL,
			PRIMARY KEY (id),
			KEY idx_bookings_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS auto_reservations (
			id              VARCHAR(64) NOT NULL,
			user_id         VARCHAR(64) NOT NULL,
			origin          VARCHAR(64) NOT NULL,
			destination     VARCHAR(64) NOT NULL,
			desired_date    VARCHAR(32) NOT NULL,
			suggested_price DOUBLE      NOT NULL,
			status          VARCHAR(32) NOT NULL,
			created_at      VARCHAR(32) NOT NULL,
			PRIMARY KEY (id),
			KEY idx_auto_res_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS settings (
			id                 TINYINT     NOT NULL,
			auto_reserve_price DOUBLE      NOT NULL,
			auto_reserve_desc  TEXT        NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
