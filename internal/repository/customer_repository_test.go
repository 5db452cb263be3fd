package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/repository"
)

func TestCustomerRepository_Touch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCustomerRepository(db)
	ctx := ctxT(t)

	first, created, err := repo.Touch(ctx, "919876543210", "Priya")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.SegmentNew, first.Segment)
	assert.Equal(t, "en", first.Language)

	second, created, err := repo.Touch(ctx, "919876543210", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Priya", second.Name, "empty profile name keeps the stored one")
	assert.False(t, second.LastSeen.Before(first.LastSeen))
}

func TestCustomerRepository_Recipients(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCustomerRepository(db)
	ctx := ctxT(t)
	now := time.Now()

	insertTestCustomer(t, db, "919800000001", now, 0, 0)
	insertTestCustomer(t, db, "919800000002", now, 20000, 6)
	insertTestCustomer(t, db, "919800000003", now, 0, 0)
	insertTestCustomer(t, db, "919800000004", now, 0, 0)

	vip := models.SegmentVIP
	_, err := repo.Update(ctx, "919800000002", models.CustomerUpdate{Segment: &vip, Labels: []string{"bridal"}})
	require.NoError(t, err)
	require.NoError(t, repo.SetMarketingOptIn(ctx, "919800000003", false))
	blocked := true
	_, err = repo.Update(ctx, "919800000004", models.CustomerUpdate{IsBlocked: &blocked})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query repository.RecipientQuery
		want  []string
	}{
		{
			name:  "all skips opted-out and blocked",
			query: repository.RecipientQuery{Target: models.TargetAll},
			want:  []string{"919800000001", "919800000002"},
		},
		{
			name:  "segment",
			query: repository.RecipientQuery{Target: models.TargetSegment, Segment: models.SegmentVIP},
			want:  []string{"919800000002"},
		},
		{
			name:  "labels",
			query: repository.RecipientQuery{Target: models.TargetLabels, Labels: []string{"bridal", "festive"}},
			want:  []string{"919800000002"},
		},
		{
			name:  "custom keeps unknown numbers but drops blocked ones",
			query: repository.RecipientQuery{Target: models.TargetCustom, Phones: []string{"919800000004", "919811111111"}},
			want:  []string{"919811111111"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Recipients(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomerRepository_RecomputeSegments(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCustomerRepository(db)
	ctx := ctxT(t)
	now := time.Now()

	insertTestCustomer(t, db, "919800000001", now.Add(-61*24*time.Hour), 50000, 9)
	insertTestCustomer(t, db, "919800000002", now, 10000, 1)
	insertTestCustomer(t, db, "919800000003", now, 500, 2)
	insertTestCustomer(t, db, "919800000004", now, 0, 0)

	changed, err := repo.RecomputeSegments(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)

	want := map[string]models.Segment{
		"919800000001": models.SegmentInactive,
		"919800000002": models.SegmentVIP,
		"919800000003": models.SegmentRegular,
		"919800000004": models.SegmentNew,
	}
	for phone, segment := range want {
		c, err := repo.Get(ctx, phone)
		require.NoError(t, err)
		assert.Equal(t, segment, c.Segment, phone)
		assert.Equal(t, models.Classify(c, now), c.Segment, "sql and go rules agree for %s", phone)
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(1), stats.VIP)
}

func TestCustomerRepository_SoftDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCustomerRepository(db)
	ctx := ctxT(t)

	insertTestCustomer(t, db, "919800000001", time.Now(), 0, 0)

	require.NoError(t, repo.SoftDelete(ctx, "919800000001"))
	_, err := repo.Get(ctx, "919800000001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.SoftDelete(ctx, "919800000001"), repository.ErrNotFound)

	recipients, err := repo.Recipients(ctx, repository.RecipientQuery{Target: models.TargetAll})
	require.NoError(t, err)
	assert.Empty(t, recipients)
}
