package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bue221/music-downloader/internal/naming"
	"github.com/bue221/music-downloader/internal/source"
)

func TestGatherReferences_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	refFile := filepath.Join(tmpDir, "urls.txt")

	content := `https://www.youtube.com/watch?v=abc123
https://open.spotify.com/track/def456

  https://youtu.be/ghi789
`
	err := os.WriteFile(refFile, []byte(content), 0o644)
	require.NoError(t, err)

	refs, err := gatherReferences(nil, refFile)
	require.NoError(t, err)

	want := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://open.spotify.com/track/def456",
		"https://youtu.be/ghi789",
	}
	assert.Equal(t, want, refs)
}

func TestGatherReferences_MergesArgsAndFile(t *testing.T) {
	tmpDir := t.TempDir()
	refFile := filepath.Join(tmpDir, "urls.txt")

	err := os.WriteFile(refFile, []byte("https://youtu.be/fromfile\n"), 0o644)
	require.NoError(t, err)

	refs, err := gatherReferences([]string{"https://youtu.be/fromargs"}, refFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://youtu.be/fromargs", "https://youtu.be/fromfile"}, refs)
}

func TestGatherReferences_ArgsOnly(t *testing.T) {
	refs, err := gatherReferences([]string{"a", "b"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, refs)
}

func TestGatherReferences_FileNotFound(t *testing.T) {
	_, err := gatherReferences(nil, "/nonexistent/urls.txt")
	assert.Error(t, err)
}

func TestGatherReferences_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	refFile := filepath.Join(tmpDir, "empty.txt")

	err := os.WriteFile(refFile, []byte(""), 0o644)
	require.NoError(t, err)

	refs, err := gatherReferences(nil, refFile)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    naming.Platform
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "youtube", want: naming.PlatformYouTube},
		{input: "spotify", want: naming.PlatformSpotify},
		{input: "soundcloud", wantErr: true},
		{input: "YouTube", wantErr: true},
	}

	for _, tt := range tests {
		name := tt.input
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			got, err := parsePlatform(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		desc source.Descriptor
		want string
	}{
		{
			name: "artist and title",
			desc: source.Descriptor{ID: "abc", Title: "Song", Artist: "Band"},
			want: "Band - Song",
		},
		{
			name: "title only",
			desc: source.Descriptor{ID: "abc", Title: "Song"},
			want: "Song",
		},
		{
			name: "id fallback",
			desc: source.Descriptor{ID: "abc"},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.desc))
		})
	}
}
