package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TWRT/taskboard/internal/client/taskapi"
	"golang.org/x/sync/errgroup"
)

// ErrRequiredFields is returned before any call when a form misses a required field.
var ErrRequiredFields = errors.New("Preencha todos os campos obrigatórios")

type fetch struct {
	name string
	run  func(ctx context.Context) error
}

// settle runs the fetches concurrently and waits for all of them. A failed
// fetch does not cancel its siblings and leaves its target as it was; only a
// 401 from any of them is reported back.
func settle(ctx context.Context, logger *slog.Logger, fetches ...fetch) error {
	var g errgroup.Group

	for _, f := range fetches {
		g.Go(func() error {
			err := f.run(ctx)
			if err == nil {
				return nil
			}
			logger.Error("Erro ao carregar dados", "fetch", f.name, "error", err)
			if errors.Is(err, taskapi.ErrUnauthorized) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
