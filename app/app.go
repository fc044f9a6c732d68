package app

import (
	"database/sql"

	"github.com/formlet/formlet/config"
)

type App struct {
	*sql.DB
	config.Config
}
