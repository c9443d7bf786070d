package main

import (
	"context"
	"filelink/config"
	_ "filelink/docs"
	"filelink/internal/filesystem"
	"filelink/internal/handler"
	"filelink/internal/repository"
	"filelink/internal/security"
	"filelink/internal/service"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title FileLink
// @version 1.0
// @description REST API для публичных ссылок на файлы из общей директории

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(config.ConfigPath())
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := config.ApplyMigrations(cfg.DatabaseConfig.DSN); err != nil {
		log.Fatalf("Ошибка подготовки БД: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	resolver, err := filesystem.NewPathResolver(cfg.Files.Root)
	if err != nil {
		log.Fatalf("Ошибка открытия корневой директории: %v", err)
	}
	log.Printf("Корневая директория: %s", resolver.Root())
	lister := filesystem.NewDirectoryLister(resolver)

	srv, router := config.SetupServer(cfg.ServerAddr)

	shareRepo := repository.NewShareRepository(db)
	downloadLogRepo := repository.NewDownloadLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.ShareCache)*time.Second)

	shareService := service.NewShareService(shareRepo, cacheRepo, resolver)
	fileService := service.NewFileService(resolver, lister, shareRepo)
	downloadService := service.NewDownloadService(shareRepo, downloadLogRepo, cacheRepo, resolver)

	jwtService := security.NewJWTService(&cfg.JWT)

	shareHandler := handler.NewShareHandler(shareService)
	fileHandler := handler.NewFileHandler(fileService)
	downloadHandler := handler.NewDownloadHandler(downloadService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupFileRoutes(router, fileHandler, jwtService)
	setupShareRoutes(router, shareHandler, jwtService)
	setupDownloadRoutes(router, downloadHandler)

	runServer(ctx, srv)
}

func setupFileRoutes(r chi.Router, h *handler.FileHandler, jwtService *security.JWTService) {
	r.Route("/api/files", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/", h.Browse)
	})
}

func setupShareRoutes(r chi.Router, h *handler.ShareHandler, jwtService *security.JWTService) {
	r.Route("/api/shares", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/", h.ListShares)
		r.Post("/", h.CreateShare)
		r.Get("/new", h.NewShareDraft)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetShare)
			r.Post("/edit", h.EditShare)
			r.Post("/delete", h.DeleteShare)
		})
	})
}

func setupDownloadRoutes(r chi.Router, h *handler.DownloadHandler) {
	r.Get("/download/{slug}", h.Download)
	r.Head("/download/{slug}", h.DownloadHead)
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
