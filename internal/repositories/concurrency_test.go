package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type versionedThing struct {
	id      string
	version int64
	value   string
}

func (v *versionedThing) GetID() string         { return v.id }
func (v *versionedThing) GetRowVersion() int64  { return v.version }
func (v *versionedThing) SetRowVersion(n int64) { v.version = n }

func TestWithRetrySucceedsFirstAttempt(t *testing.T) {
	stored := &versionedThing{id: "a", version: 3, value: "old"}

	err := WithRetry(context.Background(), 3, "a",
		func(_ context.Context, _ string) (*versionedThing, error) {
			cp := *stored
			return &cp, nil
		},
		func(_ context.Context, e *versionedThing, expected int64) (pgconn.CommandTag, error) {
			require.Equal(t, stored.version, expected)
			e.SetRowVersion(expected + 1)
			*stored = *e
			return pgconn.CommandTag("UPDATE 1"), nil
		},
		func(e *versionedThing) error {
			e.value = "new"
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.value)
	assert.Equal(t, int64(4), stored.version)
}

func TestWithRetryRecoversFromOneConflict(t *testing.T) {
	stored := &versionedThing{id: "a", version: 1}
	attempts := 0

	err := WithRetry(context.Background(), 3, "a",
		func(_ context.Context, _ string) (*versionedThing, error) {
			cp := *stored
			return &cp, nil
		},
		func(_ context.Context, e *versionedThing, expected int64) (pgconn.CommandTag, error) {
			attempts++
			if attempts == 1 {
				// Simulate a concurrent writer bumping the version.
				stored.version++
				return pgconn.CommandTag("UPDATE 0"), nil
			}
			*stored = *e
			return pgconn.CommandTag("UPDATE 1"), nil
		},
		func(e *versionedThing) error { return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestWithRetryGivesUpAfterMaxRetries(t *testing.T) {
	stored := &versionedThing{id: "a", version: 1}

	err := WithRetry(context.Background(), 3, "a",
		func(_ context.Context, _ string) (*versionedThing, error) {
			cp := *stored
			return &cp, nil
		},
		func(_ context.Context, _ *versionedThing, _ int64) (pgconn.CommandTag, error) {
			return pgconn.CommandTag("UPDATE 0"), nil
		},
		func(_ *versionedThing) error { return nil },
	)
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)
}

func TestWithRetryMissingRow(t *testing.T) {
	err := WithRetry(context.Background(), 3, "missing",
		func(_ context.Context, _ string) (*versionedThing, error) { return nil, nil },
		func(_ context.Context, _ *versionedThing, _ int64) (pgconn.CommandTag, error) {
			return pgconn.CommandTag("UPDATE 1"), nil
		},
		func(_ *versionedThing) error { return nil },
	)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestWithRetryPropagatesMutateError(t *testing.T) {
	boom := errors.New("boom")
	err := WithRetry(context.Background(), 3, "a",
		func(_ context.Context, _ string) (*versionedThing, error) {
			return &versionedThing{id: "a"}, nil
		},
		func(_ context.Context, _ *versionedThing, _ int64) (pgconn.CommandTag, error) {
			return pgconn.CommandTag("UPDATE 1"), nil
		},
		func(_ *versionedThing) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}
