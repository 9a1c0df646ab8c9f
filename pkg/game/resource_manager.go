package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/drcat/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager loads game assets from disk and caches them by path.
//
// All paths passed to the Load* methods are relative to the asset root.
// Sheets are cached as shared *components.Sheet handles, so every sprite
// (and every clone of it) that references the same file draws from the
// same decoded image.
type ResourceManager struct {
	root string

	audioContext *audio.Context

	imageCache    map[string]*ebiten.Image
	sheetCache    map[string]*components.Sheet
	audioCache    map[string]*audio.Player
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager creates a resource manager rooted at root.
// ctx may be nil when the caller never loads audio (tools, tests).
func NewResourceManager(root string, ctx *audio.Context) *ResourceManager {
	return &ResourceManager{
		root:          root,
		audioContext:  ctx,
		imageCache:    make(map[string]*ebiten.Image),
		sheetCache:    make(map[string]*components.Sheet),
		audioCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// Root returns the asset root directory.
func (rm *ResourceManager) Root() string {
	return rm.root
}

func (rm *ResourceManager) resolve(path string) string {
	if rm.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rm.root, path)
}

// LoadImage decodes an image file and caches the result.
// Repeated calls with the same path return the cached image.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		return img, nil
	}

	file, err := os.Open(rm.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[path] = img
	return img, nil
}

// LoadSheet loads a sprite sheet. It satisfies components.SheetProvider.
func (rm *ResourceManager) LoadSheet(path string) (*components.Sheet, error) {
	if sheet, ok := rm.sheetCache[path]; ok {
		return sheet, nil
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		return nil, err
	}

	sheet := components.NewSheet(path, img)
	rm.sheetCache[path] = sheet
	log.Printf("[ResourceManager] Loaded sheet %s (%dx%d)", path, sheet.Width, sheet.Height)
	return sheet, nil
}

// decodeAudio reads a whole MP3 or OGG Vorbis file into memory and decodes it.
// Keeping the data in memory lets the player seek without holding the file open.
func (rm *ResourceManager) decodeAudio(path string) (io.ReadSeeker, int64, error) {
	if rm.audioContext == nil {
		return nil, 0, fmt.Errorf("no audio context for %s", path)
	}

	data, err := os.ReadFile(rm.resolve(path))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// LoadSoundEffect loads a one-shot sound cue and caches its player.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	key := "once:" + path
	if player, ok := rm.audioCache[key]; ok {
		return player, nil
	}

	stream, _, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	rm.audioCache[key] = player
	return player, nil
}

// LoadLoop loads a sound wrapped in an infinite loop (e.g. footsteps while moving).
func (rm *ResourceManager) LoadLoop(path string) (*audio.Player, error) {
	key := "loop:" + path
	if player, ok := rm.audioCache[key]; ok {
		return player, nil
	}

	stream, length, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	rm.audioCache[key] = player
	return player, nil
}

// LoadFont loads a TrueType/OpenType font at the given size.
// An empty path selects the bundled Go Regular font.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	key := fmt.Sprintf("%s:%.1f", path, size)
	if face, ok := rm.fontFaceCache[key]; ok {
		return face, nil
	}

	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(rm.resolve(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[key] = face
	return face, nil
}
