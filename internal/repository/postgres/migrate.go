package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(255) NOT NULL,
	date_of_birth DATE NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS medications (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	dosage     VARCHAR(100) NOT NULL,
	frequency  VARCHAR(100) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS assignments (
	id             BIGSERIAL PRIMARY KEY,
	start_date     DATE NOT NULL,
	number_of_days INTEGER NOT NULL CHECK (number_of_days > 0),
	patient_id     BIGINT NOT NULL REFERENCES patients (id) ON DELETE CASCADE,
	medication_id  BIGINT NOT NULL REFERENCES medications (id) ON DELETE CASCADE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_assignments_patient_id ON assignments (patient_id);
CREATE INDEX IF NOT EXISTS idx_assignments_medication_id ON assignments (medication_id);
`

// Migrate creates the schema if it does not exist yet. Assignments carry
// ON DELETE CASCADE foreign keys, so deleting a patient or medication
// removes its assignments at the store level.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
