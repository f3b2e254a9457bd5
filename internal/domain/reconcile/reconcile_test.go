package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	upserts []string
	deletes [][]string

	failOn string
}

func (r *recorder) upsert(_ context.Context, name string) error {
	if r.failOn != "" && name == r.failOn {
		return errors.New("put failed")
	}
	r.upserts = append(r.upserts, name)
	return nil
}

func (r *recorder) deleteBatch(_ context.Context, names []string) error {
	r.deletes = append(r.deletes, names)
	return nil
}

func TestNames_UpsertsAllDesiredAndDeletesStale(t *testing.T) {
	rec := &recorder{}
	existing := []string{"LowCPU-i1", "LowCPU-i2"}
	desired := []string{"LowCPU-i2", "LowCPU-i3"}

	res, err := Names(context.Background(), desired, existing, rec.upsert, rec.deleteBatch)
	require.NoError(t, err)

	assert.Equal(t, []string{"LowCPU-i2", "LowCPU-i3"}, res.Upserted)
	assert.Equal(t, []string{"LowCPU-i1"}, res.Deleted)
	assert.Equal(t, [][]string{{"LowCPU-i1"}}, rec.deletes, "delete must be one batch call")
}

func TestNames_UpsertSetIsDesiredRegardlessOfOverlap(t *testing.T) {
	tests := []struct {
		name     string
		desired  []string
		existing []string
		deleted  []string
	}{
		{"disjoint", []string{"a", "b"}, []string{"x", "y"}, []string{"x", "y"}},
		{"subset", []string{"a", "b"}, []string{"a"}, nil},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, nil},
		{"superset existing", []string{"a"}, []string{"a", "b", "c"}, []string{"b", "c"}},
		{"empty desired", nil, []string{"a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			res, err := Names(context.Background(), tt.desired, tt.existing, rec.upsert, rec.deleteBatch)
			require.NoError(t, err)

			want := append([]string(nil), tt.desired...)
			assert.ElementsMatch(t, want, res.Upserted)
			assert.Equal(t, tt.deleted, res.Deleted)
		})
	}
}

func TestNames_Idempotent(t *testing.T) {
	desired := []string{"ECS-LowCPU-api", "ECS-LowCPU-worker"}
	existing := []string{"ECS-LowCPU-api", "ECS-LowCPU-old"}

	rec := &recorder{}
	first, err := Names(context.Background(), desired, existing, rec.upsert, rec.deleteBatch)
	require.NoError(t, err)
	require.Equal(t, []string{"ECS-LowCPU-old"}, first.Deleted)

	// After the first run the remote set equals the desired set.
	rec2 := &recorder{}
	second, err := Names(context.Background(), desired, first.Upserted, rec2.upsert, rec2.deleteBatch)
	require.NoError(t, err)

	assert.Equal(t, first.Upserted, second.Upserted)
	assert.Empty(t, second.Deleted)
	assert.Empty(t, rec2.deletes, "second run must issue no delete call")
}

func TestNames_NoDeleteCallWhenNothingStale(t *testing.T) {
	rec := &recorder{}
	_, err := Names(context.Background(), []string{"a"}, []string{"a"}, rec.upsert, rec.deleteBatch)
	require.NoError(t, err)
	assert.Empty(t, rec.deletes)
}

func TestNames_FirstFailureAbortsAndKeepsApplied(t *testing.T) {
	rec := &recorder{failOn: "b"}
	res, err := Names(context.Background(), []string{"c", "a", "b"}, []string{"stale"}, rec.upsert, rec.deleteBatch)
	require.Error(t, err)

	// Sorted order: "a" applied, "b" failed, "c" never attempted.
	assert.Equal(t, []string{"a"}, res.Upserted)
	assert.Empty(t, res.Deleted)
	assert.Empty(t, rec.deletes, "delete must not run after a failed upsert")
}

func TestNames_DuplicateExistingNamesDeletedOnce(t *testing.T) {
	rec := &recorder{}
	res, err := Names(context.Background(), nil, []string{"x", "x"}, rec.upsert, rec.deleteBatch)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, res.Deleted)
}
