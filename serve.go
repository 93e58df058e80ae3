package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
	"gorm.io/gorm"

	"github.com/solanaappkit/directory/directory"
	"github.com/solanaappkit/directory/internal/group"
	"github.com/solanaappkit/directory/sheets"
	"github.com/solanaappkit/directory/storage"
)

type ServeCmd struct {
	Addr           string `help:"address to listen" default:":4000" env:"ADDR"`
	DSN            string `required:"" help:"database connection string" env:"DATABASE_URL"`
	PublicURL      string `help:"public base URL for locally stored uploads" default:"http://localhost:4000" env:"PUBLIC_URL"`
	StorageBackend string `help:"where uploads are stored" enum:"local,cloudinary" default:"local" env:"STORAGE_BACKEND"`
	UploadDir      string `help:"directory for locally stored uploads" default:"public" env:"UPLOAD_DIR"`
	CloudinaryURL  string `help:"cloudinary credentials url" env:"CLOUDINARY_URL"`
	MirrorEnabled  bool   `help:"mirror the apps table to a spreadsheet" env:"SHEETS_MIRROR_ENABLED"`
	SpreadsheetID  string `help:"spreadsheet id of the mirror" env:"SHEETS_SPREADSHEET_ID"`
	SheetsEmail    string `help:"service account email for the mirror" env:"SHEETS_CLIENT_EMAIL"`
	SheetsKey      string `help:"service account private key (PEM) for the mirror" env:"SHEETS_PRIVATE_KEY"`
	ProtocolsURL   string `help:"external CSV source for the protocols list" env:"PROTOCOLS_CSV_URL"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	db, err := gorm.Open(newDialector(s.DSN), &ctx.Config)
	if err != nil {
		return err
	}
	if err := configureDB(db); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr))

	local := storage.NewLocal(s.UploadDir, s.PublicURL)
	var store storage.Store = local
	if s.StorageBackend == "cloudinary" {
		// a cloudinary outage degrades to local storage instead of
		// failing the upload
		store = storage.NewChain(logger, storage.NewCloudinary(s.CloudinaryURL), local)
	}

	var mirror *sheets.Mirror
	if s.MirrorEnabled {
		mirror = sheets.New(s.SpreadsheetID, s.SheetsEmail, s.SheetsKey)
	}

	env := &directory.Env{
		DB:           db,
		Logger:       logger,
		Store:        store,
		Mirror:       mirror,
		ProtocolsURL: s.ProtocolsURL,
	}

	c := chi.NewRouter()
	c.Use(middleware.RequestID)
	c.Use(middleware.RealIP)
	c.Use(middleware.Logger)
	c.Use(middleware.Recoverer)

	c.Route("/api", func(r chi.Router) {
		directory.Routes(r, env)
	})

	// locally stored uploads are served straight off disk
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(filepath.Join(s.UploadDir, "uploads"))))
	c.Handle("/uploads/*", uploads)

	c.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "User-agent: *\nDisallow: /api/admin/\n")
	})

	c.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://www.solanaappkit.com/", http.StatusFound)
	})

	if ctx.Debug {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			route = strings.Replace(route, "/*/", "/", -1)
			fmt.Printf("%s %s\n", method, route)
			return nil
		}
		if err := chi.Walk(c, walkFunc); err != nil {
			fmt.Printf("Logging err: %s\n", err.Error())
		}
	}

	svr := &http.Server{
		Addr:    s.Addr,
		Handler: c,
		// the protocols fetch may sit through several retries, so the
		// write timeout is generous
		WriteTimeout: 2 * time.Minute,
		ReadTimeout:  15 * time.Second,
	}

	g := group.New(context.Background())
	g.AddContext(func(ctx context.Context) error {
		logger.Info("listening", "addr", s.Addr)
		if err := svr.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.AddContext(func(ctx context.Context) error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		select {
		case <-sig:
		case <-ctx.Done():
		}
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdown)
	})
	return g.Wait()
}
