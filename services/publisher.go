package services

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/Dosada05/volleyball-league/storage"
	"golang.org/x/crypto/blake2b"
)

// Broadcaster is the part of the websocket hub the publisher needs.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message brackets.WebSocketMessage)
}

type PlayoffUpdatePayload struct {
	DivisionID  int                   `json:"division_id"`
	Fingerprint string                `json:"fingerprint"`
	SnapshotURL string                `json:"snapshot_url,omitempty"`
	View        *brackets.PlayoffView `json:"view"`
}

// PlayoffPublisher recomputes the playoff view of every division in a season
// and pushes the ones that changed since the previous refresh.
type PlayoffPublisher struct {
	seasonID     int
	divisionRepo repositories.DivisionRepository
	playoffs     PlayoffService
	uploader     storage.FileUploader
	hub          Broadcaster
	logger       *slog.Logger

	mu        sync.Mutex
	broadcast map[int]string
	uploaded  map[int]string
}

// NewPlayoffPublisher builds a publisher. uploader may be nil, in which case
// snapshots are only broadcast.
func NewPlayoffPublisher(
	seasonID int,
	divisionRepo repositories.DivisionRepository,
	playoffs PlayoffService,
	uploader storage.FileUploader,
	hub Broadcaster,
	logger *slog.Logger,
) *PlayoffPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayoffPublisher{
		seasonID:     seasonID,
		divisionRepo: divisionRepo,
		playoffs:     playoffs,
		uploader:     uploader,
		hub:          hub,
		logger:       logger.With(slog.Int("season_id", seasonID)),
		broadcast:    make(map[int]string),
		uploaded:     make(map[int]string),
	}
}

// Fingerprint hashes the JSON encoding of a playoff view.
func Fingerprint(view *brackets.PlayoffView) (string, []byte, error) {
	body, err := json.Marshal(view)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode playoff view: %w", err)
	}
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:]), body, nil
}

// Refresh processes every division of the season once and returns how many
// of them changed. A failing division does not stop the others.
func (p *PlayoffPublisher) Refresh(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	divisions, err := p.divisionRepo.ListBySeason(ctx, p.seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to list divisions for season %d: %w", p.seasonID, err)
	}

	var (
		changed int
		errs    []error
	)
	for _, d := range divisions {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		ok, err := p.refreshDivision(ctx, d.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			changed++
		}
	}
	return changed, errors.Join(errs...)
}

func (p *PlayoffPublisher) refreshDivision(ctx context.Context, divisionID int) (bool, error) {
	log := p.logger.With(slog.Int("division_id", divisionID))

	view, err := p.playoffs.GetPlayoffView(ctx, divisionID)
	if err != nil {
		return false, fmt.Errorf("division %d: %w", divisionID, err)
	}
	fingerprint, body, err := Fingerprint(view)
	if err != nil {
		return false, fmt.Errorf("division %d: %w", divisionID, err)
	}

	var snapshotURL string
	if p.uploader != nil {
		key := storage.PlayoffSnapshotKey(p.seasonID, divisionID)
		_, published := p.uploaded[divisionID]
		switch {
		case isEmptyView(view):
			// A division whose playoffs were cleared loses its snapshot.
			if published {
				if err := p.uploader.Delete(ctx, key); err != nil {
					log.Error("failed to delete playoff snapshot", slog.String("key", key), slog.Any("error", err))
				} else {
					delete(p.uploaded, divisionID)
					log.Info("playoff snapshot deleted", slog.String("key", key))
				}
			}
		case p.uploaded[divisionID] != fingerprint:
			if _, err := p.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body)); err != nil {
				log.Error("failed to upload playoff snapshot", slog.String("key", key), slog.Any("error", err))
			} else {
				p.uploaded[divisionID] = fingerprint
				log.Info("playoff snapshot uploaded", slog.String("key", key))
			}
		}
		if p.uploaded[divisionID] == fingerprint {
			snapshotURL = p.uploader.GetPublicURL(key)
		}
	}

	if p.broadcast[divisionID] == fingerprint {
		return false, nil
	}
	p.broadcast[divisionID] = fingerprint

	if p.hub != nil {
		p.hub.BroadcastToRoom(brackets.DivisionRoom(divisionID), brackets.WebSocketMessage{
			Type: brackets.MessageBracketUpdated,
			Payload: PlayoffUpdatePayload{
				DivisionID:  divisionID,
				Fingerprint: fingerprint,
				SnapshotURL: snapshotURL,
				View:        view,
			},
		})
	}
	log.Info("playoff view changed", slog.String("fingerprint", fingerprint))
	return true, nil
}

func isEmptyView(view *brackets.PlayoffView) bool {
	return view.Bracket == nil && len(view.Schedule) == 0
}

// Run refreshes immediately and then on every tick until ctx is done.
func (p *PlayoffPublisher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	p.logger.Info("playoff publisher started", slog.Duration("interval", interval))

	p.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("playoff publisher stopped")
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *PlayoffPublisher) runOnce(ctx context.Context) {
	changed, err := p.Refresh(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		p.logger.Error("playoff refresh failed", slog.Any("error", err))
	}
	if changed > 0 {
		p.logger.Debug("playoff refresh complete", slog.Int("changed", changed))
	}
}
