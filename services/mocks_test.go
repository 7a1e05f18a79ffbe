package services

import (
	"context"
	"io"
	"sync"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/Dosada05/volleyball-league/storage"
)

type mockDivisionRepo struct {
	GetByIDFunc      func(ctx context.Context, id int) (*models.Division, error)
	ListBySeasonFunc func(ctx context.Context, seasonID int) ([]models.Division, error)
}

func (m *mockDivisionRepo) GetByID(ctx context.Context, id int) (*models.Division, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockDivisionRepo) ListBySeason(ctx context.Context, seasonID int) ([]models.Division, error) {
	return m.ListBySeasonFunc(ctx, seasonID)
}

type mockMatchRepo struct {
	ListByDivisionFunc  func(ctx context.Context, divisionID int, filter repositories.MatchFilter) ([]models.Match, error)
	ListByDivisionsFunc func(ctx context.Context, divisionIDs []int) ([]models.Match, error)
}

func (m *mockMatchRepo) ListByDivision(ctx context.Context, divisionID int, filter repositories.MatchFilter) ([]models.Match, error) {
	return m.ListByDivisionFunc(ctx, divisionID, filter)
}

func (m *mockMatchRepo) ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.Match, error) {
	return m.ListByDivisionsFunc(ctx, divisionIDs)
}

type mockBracketRepo struct {
	ListByDivisionFunc func(ctx context.Context, divisionID int) ([]models.BracketMeta, error)
}

func (m *mockBracketRepo) ListByDivision(ctx context.Context, divisionID int) ([]models.BracketMeta, error) {
	return m.ListByDivisionFunc(ctx, divisionID)
}

func (m *mockBracketRepo) ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.BracketMeta, error) {
	var out []models.BracketMeta
	for _, id := range divisionIDs {
		metas, err := m.ListByDivisionFunc(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, metas...)
	}
	return out, nil
}

type mockTeamRepo struct {
	ListByDivisionFunc func(ctx context.Context, divisionID int) ([]models.Team, error)
	ListBySeasonFunc   func(ctx context.Context, seasonID int) ([]models.Team, error)
}

func (m *mockTeamRepo) ListByDivision(ctx context.Context, divisionID int) ([]models.Team, error) {
	return m.ListByDivisionFunc(ctx, divisionID)
}

func (m *mockTeamRepo) ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	return m.ListBySeasonFunc(ctx, seasonID)
}

type uploadCall struct {
	Key         string
	ContentType string
	Body        []byte
}

type mockUploader struct {
	mu      sync.Mutex
	Err     error
	Uploads []uploadCall
	Deletes []string
}

func (m *mockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Uploads = append(m.Uploads, uploadCall{Key: key, ContentType: contentType, Body: body})
	return &storage.UploadResult{Key: key, Location: m.GetPublicURL(key)}, nil
}

func (m *mockUploader) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Deletes = append(m.Deletes, key)
	return nil
}

func (m *mockUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

type broadcastCall struct {
	Room    string
	Message brackets.WebSocketMessage
}

type mockBroadcaster struct {
	Calls []broadcastCall
}

func (m *mockBroadcaster) BroadcastToRoom(roomID string, message brackets.WebSocketMessage) {
	m.Calls = append(m.Calls, broadcastCall{Room: roomID, Message: message})
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
