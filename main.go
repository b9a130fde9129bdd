package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/mattn/go-isatty"

	"github.com/TWRT/taskboard/internal/api"
	"github.com/TWRT/taskboard/internal/client/taskapi"
	"github.com/TWRT/taskboard/internal/config"
	"github.com/TWRT/taskboard/internal/notify"
	"github.com/TWRT/taskboard/internal/repository"
	"github.com/TWRT/taskboard/internal/session"
)

const shutdownTimeout = 15 * time.Second

func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro ao carregar configuração: ", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Inicializar local storage
	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Erro ao inicializar BD:", err)
	}

	fmt.Println("✅ Local storage inicializado!")

	toaster, err := notify.NewToaster(repository.NewToastRepository(db), logger)
	if err != nil {
		log.Fatal("Erro ao inicializar notificações:", err)
	}

	sessions := session.NewManager(repository.NewStorageRepository(db), nil, logger)

	apiClient := taskapi.NewClient(cfg.APIBaseUrl,
		taskapi.WithLogger(logger),
		taskapi.WithMiddleware(
			taskapi.WithLogging(logger),
			taskapi.OnUnauthorized(sessions, logger),
			taskapi.OnError(toaster),
			taskapi.WithRequestID(),
			taskapi.WithToken(sessions, cfg.TokenScheme),
			taskapi.WithJSON(),
		),
	)
	sessions.SetAuth(apiClient)

	if err := sessions.Restore(context.Background()); err != nil {
		log.Fatal("Erro ao recuperar sessão:", err)
	}
	if user := sessions.CurrentUser(); user != nil {
		fmt.Printf("👤 Sessão restaurada para %s\n", user.Username)
	}

	router, err := api.SetupRouter(api.Deps{
		API:      apiClient,
		Sessions: sessions,
		Toaster:  toaster,
		Logger:   logger,
	})
	if err != nil {
		log.Fatal("Erro ao montar rotas:", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Erro ao iniciar servidor:", err)
		}
	}()

	fmt.Printf("🚀 Servidor rodando em http://%s\n", cfg.Addr)
	fmt.Printf("🔗 API: %s\n", apiClient.BaseUrl())

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	db.Close()
	os.Exit(exitCode)
}
