package logostore

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, w, h int, format imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 10, G: 120, B: 200, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestSave(t *testing.T) {
	tests := []struct {
		name   string
		format imaging.Format
		w, h   int
	}{
		{"png wide", imaging.PNG, 600, 200},
		{"jpeg tall", imaging.JPEG, 50, 120},
		{"gif square", imaging.GIF, 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(t.TempDir(), 0)
			path, err := s.Save(context.Background(), bytes.NewReader(encoded(t, tt.w, tt.h, tt.format)))
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(s.Dir, "logos"), filepath.Dir(path))
			assert.True(t, strings.HasPrefix(filepath.Base(path), "logo_"))
			assert.Equal(t, ".png", filepath.Ext(path))

			img, err := imaging.Open(path)
			require.NoError(t, err)
			assert.Equal(t, Side, img.Bounds().Dx())
			assert.Equal(t, Side, img.Bounds().Dy())

			got, err := s.Resolve(filepath.Base(path))
			require.NoError(t, err)
			assert.Equal(t, path, got)
		})
	}
}

func TestSaveRejects(t *testing.T) {
	s := New(t.TempDir(), 2048)
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"text", []byte("hello, this is not an image"), ErrUnsupportedType},
		{"too large", bytes.Repeat([]byte{0x89}, 4096), ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(context.Background(), bytes.NewReader(tt.data))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSaveConcurrentNamesUnique(t *testing.T) {
	s := New(t.TempDir(), 0)
	data := encoded(t, 32, 32, imaging.PNG)

	const n = 8
	var wg sync.WaitGroup
	paths := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = s.Save(context.Background(), bytes.NewReader(data))
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := range paths {
		require.NoError(t, errs[i])
		assert.False(t, seen[paths[i]], "duplicate %s", paths[i])
		seen[paths[i]] = true
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	s := New(t.TempDir(), 0)
	for _, name := range []string{"", "..", "../secret.png", "a/b.png", "missing.png"} {
		_, err := s.Resolve(name)
		assert.True(t, errors.Is(err, ErrNotFound), name)
	}
}

func TestSaveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(t.TempDir(), 0).Save(ctx, bytes.NewReader(encoded(t, 10, 10, imaging.PNG)))
	assert.ErrorIs(t, err, context.Canceled)
}
