package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/ktsosno/graphql-code-generator/config"
	"github.com/ktsosno/graphql-code-generator/plugins"
)

func run(ctx context.Context) error {
	cfgFile := *configOption
	if cfgFile == "" {
		var err error
		cfgFile, err = config.FindConfigFile(".", []string{".javagen.yml", "javagen.yml", ".javagen.yaml", "javagen.yaml"})
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if err := generate(ctx, cfg); err != nil {
		return err
	}

	if *watchOption {
		return watch(ctx, cfg)
	}
	return nil
}

func generate(ctx context.Context, cfg *config.Config) error {
	if err := cfg.LoadSchema(ctx); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	if err := plugins.GenerateCode(cfg); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

// watch blocks, re-running generation whenever a schema file changes.
// A failed regeneration is reported and watching continues; the next
// write gets another chance.
func watch(ctx context.Context, cfg *config.Config) error {
	if len(cfg.Schema) == 0 {
		return errors.New("watch requires local schema files")
	}
	files, err := cfg.SchemaFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve schema files: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(event) {
				continue
			}
			if err := generate(ctx, cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			// Editors often replace files instead of writing in
			// place, which removes the watch.
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				_ = watcher.Add(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch failed: %w", err)
		}
	}
}

// shouldRegenerate filters watcher events down to the ones that change
// schema content.
func shouldRegenerate(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
