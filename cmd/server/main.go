package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/yltimon/Yosemite-Voluteer/config"
	"github.com/yltimon/Yosemite-Voluteer/db"
	"github.com/yltimon/Yosemite-Voluteer/db/mongo"
	"github.com/yltimon/Yosemite-Voluteer/db/postgres"
	"github.com/yltimon/Yosemite-Voluteer/handlers"
	"github.com/yltimon/Yosemite-Voluteer/repository"
	"github.com/yltimon/Yosemite-Voluteer/routes"
	"github.com/yltimon/Yosemite-Voluteer/session"
	"github.com/yltimon/Yosemite-Voluteer/view"
)

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var postRepo repository.PostRepository
	var appRepo repository.ApplicationRepository

	switch cfg.DBType {
	case "postgres":
		// Migrations only apply to the Postgres backend
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		postRepo = repository.NewPostgresPostRepo(pg.Conn)
		appRepo = repository.NewPostgresApplicationRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		users := repository.NewMongoUserRepo(mg.Client, cfg.MongoDB)
		if err := users.EnsureIndexes(); err != nil {
			panic(err)
		}
		userRepo = users
		postRepo = repository.NewMongoPostRepo(mg.Client, cfg.MongoDB)
		appRepo = repository.NewMongoApplicationRepo(mg.Client, cfg.MongoDB)

	default:
		panic("DB_TYPE not supported")
	}

	renderer, err := view.New("templates")
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	sessions := session.NewStore(cfg.SessionSecret)
	auth := &handlers.AuthMiddleware{Sessions: sessions, Users: userRepo}

	authHandler := &handlers.AuthHandler{
		Users:         userRepo,
		Sessions:      sessions,
		Renderer:      renderer,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}
	postHandler := &handlers.PostHandler{
		Posts:     postRepo,
		Sessions:  sessions,
		Renderer:  renderer,
		UploadDir: cfg.UploadDir,
	}
	appHandler := &handlers.ApplicationHandler{
		Apps:     appRepo,
		Sessions: sessions,
		Renderer: renderer,
	}
	userHandler := &handlers.UserHandler{
		Users:    userRepo,
		Sessions: sessions,
		Renderer: renderer,
	}

	// Report handler with combined repository
	reportRepo := &repository.ReportRepository{AppRepo: appRepo}
	reportHandler := &handlers.ReportHandler{Repo: reportRepo, SavePath: cfg.PDFDir}

	handler := routes.Setup(auth, authHandler, postHandler, appHandler, userHandler, reportHandler, "public")

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		panic(err)
	}
}
