package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hasanfaesal/fight-judge/internal/domain/entity"
	"github.com/hasanfaesal/fight-judge/internal/domain/port"
)

type fakeRenderer struct {
	annotated  map[string][]entity.Object // outPath -> objects drawn
	copied     []string                   // outPaths copied verbatim
	unreadable map[string]bool            // image basename -> fails to decode
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		annotated:  map[string][]entity.Object{},
		unreadable: map[string]bool{},
	}
}

func (f *fakeRenderer) Annotate(imagePath string, objects []entity.Object, outPath string) error {
	if f.unreadable[filepath.Base(imagePath)] {
		return fmt.Errorf("%s: %w", imagePath, port.ErrUnreadableImage)
	}
	f.annotated[outPath] = objects
	return os.WriteFile(outPath, []byte("annotated"), 0644)
}

func (f *fakeRenderer) CopyImage(imagePath, outPath string) error {
	if f.unreadable[filepath.Base(imagePath)] {
		return fmt.Errorf("%s: %w", imagePath, port.ErrUnreadableImage)
	}
	f.copied = append(f.copied, outPath)
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}

// newDataset builds <root>/images and <root>/labels populated from the maps.
func newDataset(t *testing.T, images map[string]string, labels map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "labels"), 0755))
	for name, content := range images {
		require.NoError(t, os.WriteFile(filepath.Join(root, "images", name), []byte(content), 0644))
	}
	for name, content := range labels {
		require.NoError(t, os.WriteFile(filepath.Join(root, "labels", name), []byte(content), 0644))
	}
	return root
}

func TestVisualizerMissingSubdirsFailsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name string
		keep string
	}{
		{"missing labels", "images"},
		{"missing images", "labels"},
		{"missing both", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.keep != "" {
				require.NoError(t, os.MkdirAll(filepath.Join(root, tt.keep), 0755))
			}
			outDir := filepath.Join(t.TempDir(), "out")
			renderer := newFakeRenderer()

			_, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "'images' or 'labels' subdirectories not found")
			assert.Empty(t, renderer.annotated)
			assert.Empty(t, renderer.copied)
			_, statErr := os.Stat(outDir)
			assert.True(t, os.IsNotExist(statErr), "output dir must not be created")
		})
	}
}

func TestVisualizerAnnotatesAndCopies(t *testing.T) {
	root := newDataset(t,
		map[string]string{"a.jpg": "image-a", "b.png": "image-b"},
		map[string]string{"a.txt": "0 0.5 0.5 0.2 0.4\n1 0.4 0.4 0.1 0.1 0.2 0.3 0.4 0.5\n"},
	)
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := newFakeRenderer()

	result, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Annotated)
	assert.Equal(t, 1, result.Copied)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.LinesSkipped)

	objects := renderer.annotated[filepath.Join(outDir, "a.jpg")]
	require.Len(t, objects, 2)
	assert.Equal(t, []entity.Keypoint{{X: 0.2, Y: 0.3}, {X: 0.4, Y: 0.5}}, objects[1].Keypoints)

	// b.png has no label file: copied byte-for-byte under its own name.
	assert.Equal(t, []string{filepath.Join(outDir, "b.png")}, renderer.copied)
	data, err := os.ReadFile(filepath.Join(outDir, "b.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-b", string(data))
}

func TestVisualizerCountsMalformedLines(t *testing.T) {
	root := newDataset(t,
		map[string]string{"a.jpg": "image-a"},
		map[string]string{"a.txt": "0 0.5 0.5\n0 0.5 0.5 0.2 0.4\n"},
	)
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := newFakeRenderer()

	result, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Annotated)
	assert.Equal(t, 1, result.LinesSkipped)
	assert.Len(t, renderer.annotated[filepath.Join(outDir, "a.jpg")], 1)
}

func TestVisualizerSkipsUnreadableImageAndContinues(t *testing.T) {
	root := newDataset(t,
		map[string]string{"bad.jpg": "junk", "good.jpg": "image"},
		map[string]string{"bad.txt": "0 0.5 0.5 0.2 0.4\n", "good.txt": "0 0.5 0.5 0.2 0.4\n"},
	)
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := newFakeRenderer()
	renderer.unreadable["bad.jpg"] = true

	result, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Annotated)
	_, statErr := os.Stat(filepath.Join(outDir, "bad.jpg"))
	assert.True(t, os.IsNotExist(statErr), "no output for the unreadable image")
	assert.Contains(t, renderer.annotated, filepath.Join(outDir, "good.jpg"))
}

func TestVisualizerLabelPathReplacesExtension(t *testing.T) {
	// The label stem strips only the final extension.
	root := newDataset(t,
		map[string]string{"clip.0001.jpeg": "image"},
		map[string]string{"clip.0001.txt": "0 0.5 0.5 0.2 0.4\n"},
	)
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := newFakeRenderer()

	result, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Annotated)
	assert.Zero(t, result.Copied)
	assert.Contains(t, renderer.annotated, filepath.Join(outDir, "clip.0001.jpeg"))
}

func TestVisualizerIgnoresSubdirectories(t *testing.T) {
	root := newDataset(t, map[string]string{"a.jpg": "image"}, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "nested"), 0755))
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := newFakeRenderer()

	result, err := NewVisualizer(renderer, zap.NewNop()).Execute(context.Background(), root, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Copied)
	assert.Zero(t, result.Skipped)
}
