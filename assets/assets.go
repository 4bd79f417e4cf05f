package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path/filepath"

	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// SkierSpawn is the skier start position parsed from a course file.
type SkierSpawn struct {
	X float64
	Y float64
}

// ObstacleSpawn is a hand-placed obstacle parsed from a course file.
type ObstacleSpawn struct {
	X      float64
	Y      float64
	Sprite string
}

// Course is the authored portion of a slope. Procedural spawning extends
// it below the last authored row.
type Course struct {
	Name       string
	Width      int
	Height     int
	SkierSpawn SkierSpawn
	Obstacles  []ObstacleSpawn
}

type imageLoader struct {
	cache     map[string]*ebiten.Image
	sizeCache map[string]image.Point
}

var loader = &imageLoader{
	cache:     make(map[string]*ebiten.Image),
	sizeCache: make(map[string]image.Point),
}

func (l *imageLoader) mustLoadImage(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(fmt.Sprintf("images/%s.png", name))
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", name, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", name, err))
	}

	l.cache[name] = img

	return img
}

// GetImage returns the sprite with the given name, loading and caching it
// on first use. Panics on unknown names.
func GetImage(name string) *ebiten.Image {
	return loader.mustLoadImage(name)
}

// ImageSize returns a sprite's dimensions without creating a GPU texture,
// so collision code works headless. Unknown names return ok=false.
func ImageSize(name string) (w, h float64, ok bool) {
	if p, found := loader.sizeCache[name]; found {
		return float64(p.X), float64(p.Y), true
	}

	imgBytes, err := imageFS.ReadFile(fmt.Sprintf("images/%s.png", name))
	if err != nil {
		return 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imgBytes))
	if err != nil {
		return 0, 0, false
	}
	loader.sizeCache[name] = image.Point{X: cfg.Width, Y: cfg.Height}
	return float64(cfg.Width), float64(cfg.Height), true
}

// RegisterImageSize records a sprite size directly, bypassing the embedded
// files. Used by tests to define synthetic sprites.
func RegisterImageSize(name string, w, h float64) {
	loader.sizeCache[name] = image.Point{X: int(w), Y: int(h)}
}

type CourseLoader struct{}

func NewCourseLoader() *CourseLoader {
	return &CourseLoader{}
}

func (l *CourseLoader) MustLoadCourses() []Course {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var courses []Course
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			courses = append(courses, l.MustLoadCourse(filepath.Join("levels", entry.Name())))
		}
	}

	if len(courses) == 0 {
		panic("No course files found in assets/levels directory")
	}

	return courses
}

func (l *CourseLoader) MustLoadCourse(path string) Course {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	course := Course{
		Name:   path,
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "SkierSpawn":
			for _, o := range og.Objects {
				course.SkierSpawn = SkierSpawn{X: o.X, Y: o.Y}
			}
		case "Obstacles":
			for _, o := range og.Objects {
				sprite := o.Properties.GetString("sprite")
				if sprite == "" {
					continue
				}
				course.Obstacles = append(course.Obstacles, ObstacleSpawn{
					X:      o.X,
					Y:      o.Y,
					Sprite: sprite,
				})
			}
		}
	}

	return course
}
