package analyzer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const minFontSize = 8

// WordCloudOptions controls GenerateWordCloud.
type WordCloudOptions struct {
	Width    int
	Height   int
	MaxWords int
	Seed     int64
}

func (o WordCloudOptions) withDefaults() WordCloudOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.MaxWords <= 0 {
		o.MaxWords = 200
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	return o
}

var cloudPalette = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	{R: 0x27, G: 0xad, B: 0x81, A: 0xff},
	{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	{R: 0xb5, G: 0x8f, B: 0x00, A: 0xff},
}

// WordCloudPath returns the image path used for a column inside dir.
func WordCloudPath(dir, column string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", string(filepath.Separator), "_").Replace(column)
	return filepath.Join(dir, fmt.Sprintf("wordcloud_%s.png", name))
}

type wordCount struct {
	word  string
	count int
}

// GenerateWordCloud renders the term frequencies of texts into a PNG at path and
// returns the path. When there is no text, or no term survives stopword
// filtering, it returns "" and writes nothing.
func GenerateWordCloud(texts []string, path string, opts WordCloudOptions) (string, error) {
	combined := strings.Join(nonBlank(texts), " ")
	if isBlank(combined) {
		return "", nil
	}
	words := countWords(combined, opts.withDefaults().MaxWords)
	if len(words) == 0 {
		return "", nil
	}
	img, err := renderWordCloud(words, opts.withDefaults())
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create wordcloud dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create wordcloud: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode wordcloud: %w", err)
	}
	return path, nil
}

func countWords(text string, limit int) []wordCount {
	counts := make(map[string]int)
	for _, tok := range contentTokens(text) {
		counts[tok]++
	}
	words := make([]wordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, wordCount{word: w, count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].count == words[j].count {
			return words[i].word < words[j].word
		}
		return words[i].count > words[j].count
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func renderWordCloud(words []wordCount, opts WordCloudOptions) (*image.RGBA, error) {
	ttf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	rng := rand.New(rand.NewSource(opts.Seed))
	maxSize := float64(opts.Height) / 3
	maxCount := float64(words[0].count)
	var placed []image.Rectangle
	faces := make(map[int]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()
	faceFor := func(size int) (font.Face, error) {
		if f, ok := faces[size]; ok {
			return f, nil
		}
		f, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, err
		}
		faces[size] = f
		return f, nil
	}

	// ceiling only shrinks: once a size fails to fit, later words never try a larger one.
	ceiling := int(maxSize)
	for _, w := range words {
		if ceiling < minFontSize {
			break
		}
		size := int(math.Round(maxSize * (0.5*float64(w.count)/maxCount + 0.5)))
		if size > ceiling {
			size = ceiling
		}
		for ; size >= minFontSize; size -= 2 {
			face, err := faceFor(size)
			if err != nil {
				return nil, fmt.Errorf("load font face: %w", err)
			}
			box, ok := placeWord(face, w.word, img.Bounds(), placed)
			if !ok {
				ceiling = size - 2
				continue
			}
			placed = append(placed, box)
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(cloudPalette[rng.Intn(len(cloudPalette))]),
				Face: face,
				Dot:  fixed.P(box.Min.X, box.Min.Y+face.Metrics().Ascent.Ceil()),
			}
			d.DrawString(w.word)
			break
		}
	}
	return img, nil
}

// placeWord walks an Archimedean spiral out from the centre and returns the first
// box for word that stays inside bounds without touching any placed box.
func placeWord(face font.Face, word string, bounds image.Rectangle, placed []image.Rectangle) (image.Rectangle, bool) {
	m := face.Metrics()
	w := font.MeasureString(face, word).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w >= bounds.Dx() || h >= bounds.Dy() {
		return image.Rectangle{}, false
	}
	cx, cy := bounds.Dx()/2, bounds.Dy()/2
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	maxRadius := math.Hypot(float64(bounds.Dx()), float64(bounds.Dy())) / 2
	for theta := 0.0; ; theta += 0.1 {
		r := 2 * theta
		if r > maxRadius {
			return image.Rectangle{}, false
		}
		x := cx + int(r*math.Cos(theta)*aspect) - w/2
		y := cy + int(r*math.Sin(theta)) - h/2
		box := image.Rect(x, y, x+w, y+h)
		if !box.In(bounds) {
			continue
		}
		if !overlapsAny(box.Inset(-1), placed) {
			return box, true
		}
	}
}

func overlapsAny(box image.Rectangle, placed []image.Rectangle) bool {
	for _, p := range placed {
		if box.Overlaps(p) {
			return true
		}
	}
	return false
}
