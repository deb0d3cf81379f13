package handlers

import (
	"io"

	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/admin"
)

type Deps struct {
	AdminHandler *AdminHandler
	BaseHandler  *BaseHandler

	// AccessLog receives the per-request access lines; nil means stdout.
	AccessLog io.Writer
}

// NewDeps builds the table registry and engine once for the process.
func NewDeps(db *sqlx.DB) *Deps {
	return &Deps{
		AdminHandler: &AdminHandler{Engine: admin.NewEngine(admin.NewTables(db))},
		BaseHandler:  &BaseHandler{DB: db},
	}
}
