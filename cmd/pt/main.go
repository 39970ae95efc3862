package main

import (
	"context"
	"fmt"
	"os"

	"project-tracker/internal/cli"
	"project-tracker/internal/config"
	"project-tracker/internal/logging"
	"project-tracker/internal/services"
	"project-tracker/internal/session"
	"project-tracker/internal/store"
	"project-tracker/internal/validation"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Storage.Dir, os.FileMode(cfg.Storage.DirPermissions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage directory: %v\n", err)
		os.Exit(1)
	}

	gateway, err := store.NewSQLiteStore(cfg.GetStoragePath(), cfg.Storage.WriteTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer gateway.Close()

	sess := session.New(gateway, cfg.Storage.Key)

	// Load once at startup. A failed load is not fatal: the session
	// starts from an empty tree and the next save will try again.
	if err := sess.Load(context.Background()); err != nil {
		logging.Debugf("load failed, starting empty: %v\n", err)
	}

	container := services.Container{
		Timer: services.NewTimerService(sess),
		Project: services.NewProjectService(
			sess,
			validation.NewProjectValidator(cfg.Validation.ProjectNameMinLength, cfg.Validation.ProjectNameMaxLength),
			validation.NewTaskValidator(cfg.Validation.TaskTextMaxLength),
		),
		Reporting: services.NewReportingService(sess),
	}

	root := cli.NewRootCommand(container, sess, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
