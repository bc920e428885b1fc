package wicket

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot requests a capture of the frame being drawn. Requests queue up
// and are all written from the same frame at the end of Stage.Draw, one PNG
// per label, into ScreenshotDir. Interaction scripts use this to record the
// screen state between steps.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from the finished frame.
// Runs at the end of Stage.Draw; failures go to stderr, never to the caller,
// since Draw has no error path.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "[wicket] screenshot dir %s: %v\n", s.ScreenshotDir, err)
		return
	}

	img := frameImage(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(s.ScreenshotDir, name), img); err != nil {
			fmt.Fprintf(os.Stderr, "[wicket] screenshot %s: %v\n", name, err)
		}
	}
}

// frameImage copies the screen into an NRGBA image. ReadPixels hands back
// premultiplied alpha, which PNG does not use, so translucent pixels are
// unpremultiplied on the way.
func frameImage(screen *ebiten.Image) *image.NRGBA {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	screen.ReadPixels(img.Pix)

	for i := 3; i < len(img.Pix); i += 4 {
		a := img.Pix[i]
		if a == 0 || a == 255 {
			continue
		}
		for j := i - 3; j < i; j++ {
			img.Pix[j] = uint8(min(int(img.Pix[j])*255/int(a), 255))
		}
	}
	return img
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel maps a screenshot label to something safe in a file name:
// letters, digits, '-' and '.' pass through, everything else becomes '_'.
// A blank label falls back to "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	out := []byte(label)
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9', c == '-', c == '.':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
