package catalog

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
)

// Service is the catalog's document store: plain reads for the storefront,
// the editor's Store contract for writes, and snapshot subscriptions for
// anything that wants to follow the collection live. Writes are
// last-write-wins; the store performs no conflict detection.
type Service struct {
	repo *Repo
	hub  *Hub
	log  *slog.Logger
}

func NewService(repo *Repo, log *slog.Logger) *Service {
	return &Service{repo: repo, hub: NewHub(), log: log}
}

func (s *Service) List(ctx context.Context, orderBy string) ([]Product, error) {
	return s.repo.List(ctx, orderBy)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Search(ctx context.Context, q string) ([]Product, error) {
	return s.repo.Search(ctx, q)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, apperr.NotFoundErr("Product not found.")
	}
	return p, err
}

// CreateRecord implements editor.Store.
func (s *Service) CreateRecord(ctx context.Context, rec editor.Record) (string, error) {
	row, err := fromRecord(rec)
	if err != nil {
		return "", apperr.StoreWriteErr("Failed to save product.", err)
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if IsDuplicateKey(err) {
			return "", apperr.ConflictErr("A product with this id already exists.")
		}
		return "", apperr.StoreWriteErr("Failed to save product.", err)
	}
	s.publish(ctx)
	return created.ID, nil
}

// UpdateRecord implements editor.Store. Last write wins.
func (s *Service) UpdateRecord(ctx context.Context, id string, rec editor.Record) error {
	row, err := fromRecord(rec)
	if err != nil {
		return apperr.StoreWriteErr("Failed to save product.", err)
	}
	if err := s.repo.Update(ctx, id, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr("Product not found.")
		}
		return apperr.StoreWriteErr("Failed to save product.", err)
	}
	s.publish(ctx)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.StoreWriteErr("Failed to delete product.", err)
	}
	s.publish(ctx)
	return nil
}

// Subscribe returns the current snapshot, a channel of subsequent
// snapshots, and a cancel func the caller must run on teardown.
func (s *Service) Subscribe(ctx context.Context, orderBy string) ([]Product, <-chan []Product, func(), error) {
	snapshot, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, nil, nil, err
	}
	ch, cancel := s.hub.Subscribe()
	return snapshot, ch, cancel, nil
}

// publish reloads the default-ordered collection and hands it to the hub.
// A failed reload only costs subscribers one notification.
func (s *Service) publish(ctx context.Context) {
	snapshot, err := s.repo.List(ctx, "")
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "catalog_snapshot_failed", slog.Any("err", err))
		return
	}
	s.hub.Publish(snapshot)
}
