package main

import (
	"gorm.io/gorm"

	"github.com/solanaappkit/directory/models"
)

type AutoMigrateCmd struct {
	DSN string `required:"" help:"database connection string" env:"DATABASE_URL"`
}

func (a *AutoMigrateCmd) Run(ctx *Context) error {
	db, err := gorm.Open(newDialector(a.DSN), &ctx.Config)
	if err != nil {
		return err
	}
	return db.AutoMigrate(models.AllTables()...)
}
