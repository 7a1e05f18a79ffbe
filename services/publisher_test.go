package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(uploader *mockUploader, hub *mockBroadcaster) (*PlayoffPublisher, *mockMatchRepo) {
	d, m, b, tm := finalDivisionRepos()
	playoffs := NewPlayoffService(d, m, b, tm, nil, nil)
	if uploader == nil {
		return NewPlayoffPublisher(1, d, playoffs, nil, hub, nil), m
	}
	return NewPlayoffPublisher(1, d, playoffs, uploader, hub, nil), m
}

func TestFingerprintIsStable(t *testing.T) {
	view := &brackets.PlayoffView{DivisionID: 3}
	a, body, err := Fingerprint(view)
	require.NoError(t, err)
	b, _, err := Fingerprint(&brackets.PlayoffView{DivisionID: 3})
	require.NoError(t, err)
	c, _, err := Fingerprint(&brackets.PlayoffView{DivisionID: 4})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
	assert.True(t, json.Valid(body))
}

func TestPlayoffPublisher_RefreshBroadcastsAndUploadsOnChange(t *testing.T) {
	uploader := &mockUploader{}
	hub := &mockBroadcaster{}
	pub, matches := newTestPublisher(uploader, hub)
	ctx := context.Background()

	changed, err := pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	require.Len(t, uploader.Uploads, 1)
	assert.Equal(t, "seasons/1/divisions/7/playoffs.json", uploader.Uploads[0].Key)
	assert.Equal(t, "application/json", uploader.Uploads[0].ContentType)

	require.Len(t, hub.Calls, 1)
	call := hub.Calls[0]
	assert.Equal(t, "division_7", call.Room)
	assert.Equal(t, brackets.MessageBracketUpdated, call.Message.Type)
	payload, ok := call.Message.Payload.(PlayoffUpdatePayload)
	require.True(t, ok)
	assert.Equal(t, 7, payload.DivisionID)
	assert.Equal(t, "https://cdn.test/seasons/1/divisions/7/playoffs.json", payload.SnapshotURL)

	changed, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Len(t, uploader.Uploads, 1)
	assert.Len(t, hub.Calls, 1)

	base := matches.ListByDivisionFunc
	matches.ListByDivisionFunc = func(ctx context.Context, divisionID int, f repositories.MatchFilter) ([]models.Match, error) {
		rows, err := base(ctx, divisionID, f)
		if err != nil {
			return nil, err
		}
		rows[1].WinnerTeamID = intPtr(2)
		return rows, nil
	}
	changed, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Len(t, uploader.Uploads, 2)
	assert.Len(t, hub.Calls, 2)
}

func TestPlayoffPublisher_UploadFailureIsRetried(t *testing.T) {
	uploader := &mockUploader{Err: errors.New("bucket unavailable")}
	hub := &mockBroadcaster{}
	pub, _ := newTestPublisher(uploader, hub)
	ctx := context.Background()

	changed, err := pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	require.Len(t, hub.Calls, 1)
	payload := hub.Calls[0].Message.Payload.(PlayoffUpdatePayload)
	assert.Empty(t, payload.SnapshotURL)

	uploader.Err = nil
	changed, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Len(t, uploader.Uploads, 1)
	assert.Len(t, hub.Calls, 1)
}

func TestPlayoffPublisher_WithoutUploader(t *testing.T) {
	hub := &mockBroadcaster{}
	pub, _ := newTestPublisher(nil, hub)

	changed, err := pub.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	require.Len(t, hub.Calls, 1)
	assert.Empty(t, hub.Calls[0].Message.Payload.(PlayoffUpdatePayload).SnapshotURL)
}

func TestPlayoffPublisher_DivisionErrorsAreJoined(t *testing.T) {
	hub := &mockBroadcaster{}
	d, m, b, tm := finalDivisionRepos()
	d.ListBySeasonFunc = func(ctx context.Context, seasonID int) ([]models.Division, error) {
		return []models.Division{{ID: 7}, {ID: 99}}, nil
	}
	pub := NewPlayoffPublisher(1, d, NewPlayoffService(d, m, b, tm, nil, nil), nil, hub, nil)

	changed, err := pub.Refresh(context.Background())
	assert.Equal(t, 1, changed)
	assert.ErrorIs(t, err, ErrDivisionNotFound)
	assert.Len(t, hub.Calls, 1)
}

func TestPlayoffPublisher_DeletesSnapshotWhenPlayoffsCleared(t *testing.T) {
	uploader := &mockUploader{}
	hub := &mockBroadcaster{}
	d, m, b, tm := finalDivisionRepos()
	pub := NewPlayoffPublisher(1, d, NewPlayoffService(d, m, b, tm, nil, nil), uploader, hub, nil)
	ctx := context.Background()

	_, err := pub.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, uploader.Uploads, 1)

	fullMatches, fullMetas := m.ListByDivisionFunc, b.ListByDivisionFunc
	m.ListByDivisionFunc = func(ctx context.Context, divisionID int, f repositories.MatchFilter) ([]models.Match, error) {
		rows, err := fullMatches(ctx, divisionID, f)
		if err != nil {
			return nil, err
		}
		return rows[:1], nil
	}
	b.ListByDivisionFunc = func(ctx context.Context, divisionID int) ([]models.BracketMeta, error) {
		return nil, nil
	}

	uploader.Err = errors.New("bucket unavailable")
	changed, err := pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Empty(t, uploader.Deletes)
	require.Len(t, hub.Calls, 2)
	assert.Empty(t, hub.Calls[1].Message.Payload.(PlayoffUpdatePayload).SnapshotURL)

	uploader.Err = nil
	changed, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed, "view unchanged, only the failed delete is retried")
	assert.Equal(t, []string{"seasons/1/divisions/7/playoffs.json"}, uploader.Deletes)

	_, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, uploader.Deletes, 1)
	assert.Len(t, uploader.Uploads, 1)

	m.ListByDivisionFunc, b.ListByDivisionFunc = fullMatches, fullMetas
	changed, err = pub.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Len(t, uploader.Uploads, 2)
}

func TestPlayoffPublisher_EmptyDivisionIsNeverUploaded(t *testing.T) {
	uploader := &mockUploader{}
	d, m, b, tm := finalDivisionRepos()
	m.ListByDivisionFunc = func(ctx context.Context, divisionID int, f repositories.MatchFilter) ([]models.Match, error) {
		return nil, nil
	}
	b.ListByDivisionFunc = func(ctx context.Context, divisionID int) ([]models.BracketMeta, error) {
		return nil, nil
	}
	pub := NewPlayoffPublisher(1, d, NewPlayoffService(d, m, b, tm, nil, nil), uploader, &mockBroadcaster{}, nil)

	_, err := pub.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, uploader.Uploads)
	assert.Empty(t, uploader.Deletes)
}
