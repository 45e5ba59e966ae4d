package ingest_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/domain"
	"invoicehub/internal/ingest"
	"invoicehub/mocks"
)

func TestLoadSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"_id": "a", "fileSize": 12345678901234}, {"_id": "b"}]`), 0o600))

	recs, err := ingest.LoadSource(context.Background(), path, nil)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0]["_id"])
	assert.Equal(t, json.Number("12345678901234"), recs[0]["fileSize"])
}

func TestLoadSource_MissingFile(t *testing.T) {
	_, err := ingest.LoadSource(context.Background(), filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLoadSource_S3(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "seeds", "2024/data.json").Return([]byte(`[{"_id": "s3-1"}]`), nil)

	recs, err := ingest.LoadSource(context.Background(), "s3://seeds/2024/data.json", storage)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "s3-1", recs[0]["_id"])
	storage.AssertExpectations(t)
}

func TestLoadSource_S3WithoutStorage(t *testing.T) {
	_, err := ingest.LoadSource(context.Background(), "s3://seeds/data.json", nil)
	assert.Error(t, err)
}

func TestDecodeRecords_NotAnArray(t *testing.T) {
	_, err := ingest.DecodeRecords([]byte(`{"_id": "a"}`))
	assert.Error(t, err)
}

func TestDecodeRecords_NonObjectElementBecomesNil(t *testing.T) {
	recs, err := ingest.DecodeRecords([]byte(`[{"_id": "a"}, 42, null]`))
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.NotNil(t, recs[0])
	assert.Nil(t, recs[1])
	assert.Nil(t, recs[2])
}
