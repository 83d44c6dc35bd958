package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
)

// Origin tells where a listed record came from.
type Origin int

const (
	Persisted Origin = iota
	Seed
)

func (o Origin) String() string {
	if o == Seed {
		return "seed"
	}
	return "persisted"
}

func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Entry is a listed record tagged with its origin. Seed entries can only be
// promoted, never updated or deleted.
type Entry[T any] struct {
	Record T      `json:"record"`
	Origin Origin `json:"origin"`
}

func (e Entry[T]) IsSeed() bool { return e.Origin == Seed }

type Mode string

const (
	ModeDemo Mode = "demo"
	ModeLive Mode = "live"
)

// Records strips the origin tags.
func Records[T any](entries []Entry[T]) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record)
	}
	return out
}

// reconcile reads table newest first. It returns either every stored row or,
// when the read fails or finds nothing, the seeds. The two are never mixed.
func reconcile[T any](ctx context.Context, e *env, table string, seeds []T) ([]Entry[T], Mode) {
	var rows []T
	err := e.records.Select(ctx, table, store.Query{OrderBy: "created_at"}, &rows)
	switch {
	case apperrors.Is(err, apperrors.KindEmptyOrMissing):
		e.logger.WithFields(logrus.Fields{"table": table}).Info("Collection missing, serving default records")
	case err != nil:
		e.logger.WithFields(logrus.Fields{"table": table, "error": err.Error()}).Warn("Read failed, serving default records")
	case len(rows) > 0:
		out := make([]Entry[T], 0, len(rows))
		for _, r := range rows {
			out = append(out, Entry[T]{Record: r, Origin: Persisted})
		}
		return out, ModeLive
	}

	out := make([]Entry[T], 0, len(seeds))
	for _, s := range seeds {
		out = append(out, Entry[T]{Record: s, Origin: Seed})
	}
	return out, ModeDemo
}
