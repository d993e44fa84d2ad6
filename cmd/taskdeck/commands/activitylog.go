package commands

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/app/activitylog"
)

// newActivityLogService wires the activity log service on the configured store.
func newActivityLogService(ctx context.Context, rootCmd *RootCommand) (*activitylog.Service, func() error, error) {
	repo, closeStore, err := rootCmd.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := activitylog.NewService(activitylog.ServiceConfig{
		LogRepository:     repo,
		SessionRepository: repo,
		Logger:            rootCmd.Logger,
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc, closeStore, nil
}
