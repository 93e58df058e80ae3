package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type Context struct {
	Debug bool

	gorm.Config
}

var cli struct {
	Debug bool `help:"Enable debug mode."`

	Serve       ServeCmd       `cmd:"" help:"Serve the apps directory."`
	AutoMigrate AutoMigrateCmd `cmd:"" help:"Create or update the database schema."`
	SyncMirror  SyncMirrorCmd  `cmd:"" help:"Push the apps table to the spreadsheet mirror."`
}

// baseContext carries the gorm config every command opens the database
// with. TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey, which the handlers rely on to answer 400.
func baseContext(debug bool) *Context {
	return &Context{
		Debug: debug,
		Config: gorm.Config{
			TranslateError: true,
		},
	}
}

func main() {
	godotenv.Load()
	ctx := kong.Parse(&cli)
	err := ctx.Run(baseContext(cli.Debug))
	ctx.FatalIfErrorf(err)
}
