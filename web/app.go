package web

import (
	"log"
	"net/http"
	"os"
	"time"

	"blog/internal/config"
	"blog/internal/database"
)

type app struct {
	infoLog        *log.Logger
	errorLog       *log.Logger
	HTMLDir        string
	StaticDir      string
	Database       *database.Database
	UserService    *database.UserService
	SessionService *database.SessionService
	PostService    *database.PostService
}

func RunApp() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config.MustLoad()

	db, err := database.NewDatabase(cfg.Database.SQLitePath)
	if err != nil {
		errorLog.Fatal("Failed to open SQLite DB:", err)
	}
	defer db.Close()

	infoLog.Println("SQLite DB connected:", cfg.Database.SQLitePath)

	app := &app{
		errorLog:       errorLog,
		infoLog:        infoLog,
		HTMLDir:        cfg.UI.HTMLDir,
		StaticDir:      cfg.UI.StaticDir,
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db),
		PostService:    database.NewPostService(db),
	}

	if err := app.SessionService.CleanupExpiredSessions(); err != nil {
		app.infoLog.Printf("Warning: failed to cleanup expired sessions: %v", err)
	}

	srv := &http.Server{
		Addr:     cfg.Server.Addr,
		ErrorLog: app.errorLog,
		Handler:  app.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on http://localhost%s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
