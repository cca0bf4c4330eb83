// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports. The
// repository receives the database pool via constructor injection and
// reports failures as *domain.StoreError so the HTTP layer can translate
// them without knowing about pgx.
//
// Expected schema:
//
//	CREATE TABLE jokes (
//	    id         bigserial PRIMARY KEY,
//	    text       text NOT NULL,
//	    author     text,
//	    created_at timestamptz NOT NULL DEFAULT now()
//	);
package repo
