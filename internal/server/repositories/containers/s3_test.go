package containers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

func lastModified(t time.Time) *time.Time { return &t }

type fakeObject struct {
	body     []byte
	metadata map[string]string
}

type fakeS3 struct {
	objects map[string]fakeObject
	err     error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string]fakeObject{}} }

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = fakeObject{body: b, metadata: in.Metadata}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	o, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:         io.NopCloser(bytes.NewReader(o.body)),
		Metadata:     o.metadata,
		LastModified: lastModified(time.Unix(1700000000, 0)),
	}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Repository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	repo := NewS3Repository(fake, "vault")

	c := &models.Container{ID: "c1", Kind: "store", Owner: "a@b.com", Payload: []byte(`{"ct":"xx"}`)}
	require.NoError(t, repo.Save(ctx, c))

	_, ok := fake.objects["vault/containers/store/c1"]
	require.True(t, ok, "object key layout")

	got, err := repo.Get(ctx, "c1", "store")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "store", got.Kind)
	assert.Equal(t, "a@b.com", got.Owner)
	assert.Equal(t, []byte(`{"ct":"xx"}`), got.Payload)
	assert.Equal(t, time.Unix(1700000000, 0), got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, "c1", "store"))
	_, err = repo.Get(ctx, "c1", "store")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestS3Repository_KindIsPartOfKey(t *testing.T) {
	ctx := context.Background()
	repo := NewS3Repository(newFakeS3(), "vault")

	require.NoError(t, repo.Save(ctx, &models.Container{ID: "c1", Kind: "store", Payload: []byte(`{}`)}))

	_, err := repo.Get(ctx, "c1", "other")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestS3Repository_ErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.err = errors.New("connection refused")
	repo := NewS3Repository(fake, "vault")

	_, err := repo.Get(ctx, "c1", "store")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrorNotFound))
	assert.Contains(t, err.Error(), "s3 error")

	assert.Error(t, repo.Save(ctx, &models.Container{ID: "c1", Kind: "store"}))
	assert.Error(t, repo.Delete(ctx, "c1", "store"))
}

func TestNewS3Client_UsesOptions(t *testing.T) {
	c, err := NewS3Client(context.Background(), S3Options{
		Region:       "us-east-1",
		AccessKey:    "admin",
		SecretKey:    "secret",
		Bucket:       "vault",
		BaseEndpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)

	opts := c.Options()
	assert.Equal(t, "us-east-1", opts.Region)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
}

func TestNewS3Client_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Client(context.Background(), S3Options{Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load aws config")
}
