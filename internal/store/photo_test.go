package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func testPhoto(name string, content []byte) models.Photo {
	return models.Photo{
		Filename: name,
		Size:     int64(len(content)),
		Content:  bytes.NewReader(content),
	}
}

func TestPhotoKey(t *testing.T) {
	ids := fixedIDs{id: "abc"}

	tests := []struct {
		name     string
		photo    models.Photo
		wantKey  string
		wantType string
		wantErr  bool
	}{
		{name: "jpg", photo: testPhoto("me.jpg", []byte("x")), wantKey: "profiles/abc.jpg", wantType: "image/jpeg"},
		{name: "upper case extension", photo: testPhoto("ME.PNG", []byte("x")), wantKey: "profiles/abc.png", wantType: "image/png"},
		{name: "webp", photo: testPhoto("a.b.webp", []byte("x")), wantKey: "profiles/abc.webp", wantType: "image/webp"},
		{name: "executable", photo: testPhoto("run.exe", []byte("x")), wantErr: true},
		{name: "no extension", photo: testPhoto("photo", []byte("x")), wantErr: true},
		{name: "too large", photo: models.Photo{Filename: "a.gif", Size: MaxPhotoSize + 1, Content: strings.NewReader("")}, wantErr: true},
		{name: "no content", photo: models.Photo{Filename: "a.gif"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, contentType, err := photoKey(ids, tt.photo)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPhoto)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func TestLocalPhotoStorage_SavePhoto(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, "/uploads/", fixedIDs{id: "p1"}, logger.Nop())
	require.NoError(t, err)

	url, err := storage.SavePhoto(testContext(), testPhoto("face.jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profiles/p1.jpeg", url)

	content, err := os.ReadFile(filepath.Join(dir, "profiles", "p1.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestLocalPhotoStorage_RejectsOversizedStream(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, "/uploads", fixedIDs{id: "big"}, logger.Nop())
	require.NoError(t, err)

	// the declared size lies about the stream length
	photo := models.Photo{
		Filename: "big.png",
		Size:     1,
		Content:  io.LimitReader(zeroReader{}, MaxPhotoSize+10),
	}
	_, err = storage.SavePhoto(testContext(), photo)
	require.ErrorIs(t, err, ErrUnsupportedPhoto)

	_, statErr := os.Stat(filepath.Join(dir, "profiles", "big.png"))
	assert.True(t, os.IsNotExist(statErr))
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type fakePutter struct {
	input   *s3.PutObjectInput
	body    []byte
	err     error
	deleted *s3.DeleteObjectInput
}

func (f *fakePutter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = in
	return &s3.DeleteObjectOutput{}, f.err
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	return &s3.PutObjectOutput{}, f.err
}

func TestS3PhotoStorage_SavePhoto(t *testing.T) {
	t.Run("uploads with content type", func(t *testing.T) {
		putter := &fakePutter{}
		storage := NewS3PhotoStorage(putter, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		url, err := storage.SavePhoto(testContext(), testPhoto("me.png", []byte("png")))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/profiles/k1.png", url)

		require.NotNil(t, putter.input)
		assert.Equal(t, "photos", *putter.input.Bucket)
		assert.Equal(t, "profiles/k1.png", *putter.input.Key)
		assert.Equal(t, "image/png", *putter.input.ContentType)
		assert.Equal(t, int64(3), *putter.input.ContentLength)
		assert.Equal(t, []byte("png"), putter.body)
	})

	t.Run("rejects extension before upload", func(t *testing.T) {
		putter := &fakePutter{}
		storage := NewS3PhotoStorage(putter, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		_, err := storage.SavePhoto(testContext(), testPhoto("me.svg", []byte("<svg/>")))
		require.ErrorIs(t, err, ErrUnsupportedPhoto)
		assert.Nil(t, putter.input)
	})

	t.Run("upload failure", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("access denied")}
		storage := NewS3PhotoStorage(putter, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		_, err := storage.SavePhoto(testContext(), testPhoto("me.gif", []byte("gif")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}

func TestPhotoKeyFromURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{name: "issued url", base: "https://cdn.example.com", url: "https://cdn.example.com/profiles/k1.png", wantKey: "profiles/k1.png", wantOK: true},
		{name: "base with trailing slash", base: "/uploads/", url: "/uploads/profiles/p1.jpeg", wantKey: "profiles/p1.jpeg", wantOK: true},
		{name: "default placeholder", base: "/uploads", url: models.DefaultPhotoURL},
		{name: "foreign host", base: "https://cdn.example.com", url: "https://evil.example.com/profiles/k1.png"},
		{name: "outside prefix", base: "/uploads", url: "/uploads/other/k1.png"},
		{name: "path traversal", base: "/uploads", url: "/uploads/profiles/../../etc/passwd"},
		{name: "nested", base: "/uploads", url: "/uploads/profiles/a/b.png"},
		{name: "bare prefix", base: "/uploads", url: "/uploads/profiles/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := photoKeyFromURL(tt.base, tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestLocalPhotoStorage_DeletePhoto(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, "/uploads", fixedIDs{id: "p1"}, logger.Nop())
	require.NoError(t, err)

	url, err := storage.SavePhoto(testContext(), testPhoto("face.png", []byte("png")))
	require.NoError(t, err)

	require.NoError(t, storage.DeletePhoto(testContext(), url))
	_, statErr := os.Stat(filepath.Join(dir, "profiles", "p1.png"))
	assert.True(t, os.IsNotExist(statErr))

	// already gone
	require.NoError(t, storage.DeletePhoto(testContext(), url))

	// files outside the photo directory are left alone
	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	require.NoError(t, storage.DeletePhoto(testContext(), "/uploads/profiles/../keep.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestS3PhotoStorage_DeletePhoto(t *testing.T) {
	t.Run("deletes issued key", func(t *testing.T) {
		client := &fakePutter{}
		storage := NewS3PhotoStorage(client, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		require.NoError(t, storage.DeletePhoto(testContext(), "https://cdn.example.com/profiles/k1.png"))
		require.NotNil(t, client.deleted)
		assert.Equal(t, "photos", *client.deleted.Bucket)
		assert.Equal(t, "profiles/k1.png", *client.deleted.Key)
	})

	t.Run("ignores foreign url", func(t *testing.T) {
		client := &fakePutter{}
		storage := NewS3PhotoStorage(client, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		require.NoError(t, storage.DeletePhoto(testContext(), "https://i.pravatar.cc/150?img=1"))
		assert.Nil(t, client.deleted)
	})

	t.Run("delete failure", func(t *testing.T) {
		client := &fakePutter{err: errors.New("access denied")}
		storage := NewS3PhotoStorage(client, "photos", "https://cdn.example.com", fixedIDs{id: "k1"}, logger.Nop())

		err := storage.DeletePhoto(testContext(), "https://cdn.example.com/profiles/k1.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}
