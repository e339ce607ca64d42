package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
	"github.com/KirkDiggler/pancasting/internal/store"
)

// app bundles what every command needs
type app struct {
	kv    kvstore.Store
	ids   idgen.Generator
	clock clock.Clock
	store *store.Store
}

func openApp(ctx context.Context) (*app, func(), error) {
	kv, err := kvstore.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewUUID("char")
	clk := clock.New()
	st, err := store.New(&store.Config{
		KV:          kv,
		IDGenerator: ids,
		Clock:       clk,
	})
	if err != nil {
		_ = kv.Close() // nolint:errcheck // safe to ignore in cleanup
		return nil, nil, err
	}

	cleanup := func() {
		if err := kv.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close store", "error", err)
		}
	}
	return &app{kv: kv, ids: ids, clock: clk, store: st}, cleanup, nil
}

// loadCharacter reads a character from a JSON file ("-" for stdin) or, when
// file is empty, from the configured store by id
func (a *app) loadCharacter(ctx context.Context, file, id string) (*character.Character, error) {
	switch {
	case file != "":
		data, err := readInput(file)
		if err != nil {
			return nil, err
		}
		if !a.store.ImportCharacter(string(data)) {
			return nil, a.store.Err()
		}
	case id != "":
		if !a.store.LoadCharacterByID(ctx, id) {
			if err := a.store.Err(); err != nil {
				return nil, err
			}
			return nil, errors.NotFoundf("character %s not found", id).WithMeta("character_id", id)
		}
	default:
		return nil, errors.InvalidArgument("either --file or --id is required")
	}
	return a.store.Current(), nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "file %s does not exist", file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", file)
	}
	return data, nil
}

// editionOrDefault falls back to the configured edition
func editionOrDefault(edition string) string {
	if edition == "" {
		return cfg.DefaultEdition
	}
	return edition
}
