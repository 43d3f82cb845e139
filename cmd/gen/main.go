package main

import (
	"pushkit/internal/infra/persistence/model"

	"gorm.io/gen"
)

// EventQuerier declares the queue queries generated next to the basic CRUD.
type EventQuerier interface {
	// SELECT * FROM @@table WHERE stream = @stream ORDER BY _id LIMIT @limit
	ListPending(stream string, limit int) ([]gen.T, error)

	// SELECT count(*) FROM @@table WHERE stream = @stream
	CountByStream(stream string) (int64, error)
}

func main() {
	models := []any{
		model.EventModel{},
		model.KVEntryModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)
	g.ApplyInterface(func(EventQuerier) {}, model.EventModel{})

	g.Execute()
}
