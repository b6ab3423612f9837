package grid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"
)

const (
	thumbnailSize     = defaultCellSize
	thumbnailQueueCap = 100
	thumbnailWorkers  = 4
)

type thumbnailRequest struct {
	path     string
	callback func(image.Image)
}

// ThumbnailManager loads and scales box art in the background. Requests are
// never cancelled, callers decide whether a result is still wanted.
type ThumbnailManager struct {
	cache    sync.Map // map[string]image.Image
	requests []thumbnailRequest
	reqLock  sync.Mutex
	reqCond  *sync.Cond
	cacheDir string
}

var (
	MaxCacheSize  int64 = 200 * 1024 * 1024 // 200MB
	MaxCacheFiles int   = 10000
)

var (
	instance *ThumbnailManager
	once     sync.Once
)

// GetThumbnailManager returns the shared manager, caching on disk under the
// user cache directory.
func GetThumbnailManager() *ThumbnailManager {
	once.Do(func() {
		cacheDir := ""
		if userCache, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(userCache, "xpagegrid")
		}
		instance = newThumbnailManager(cacheDir, thumbnailWorkers)
	})
	return instance
}

func newThumbnailManager(cacheDir string, workers int) *ThumbnailManager {
	m := &ThumbnailManager{
		requests: make([]thumbnailRequest, 0, thumbnailQueueCap),
		cacheDir: cacheDir,
	}
	m.reqCond = sync.NewCond(&m.reqLock)

	if m.cacheDir != "" {
		if err := os.MkdirAll(m.cacheDir, 0o755); err != nil {
			fyne.LogError("could not create thumbnail cache", err)
			m.cacheDir = ""
		} else {
			go m.cleanupCache()
		}
	}

	for range workers {
		go m.worker()
	}
	return m
}

// LoadMemoryOnly returns a thumbnail already held in memory, or nil.
func (m *ThumbnailManager) LoadMemoryOnly(path string) image.Image {
	if cached, ok := m.cache.Load(path); ok {
		return cached.(image.Image)
	}
	return nil
}

// Load calls back with the thumbnail of the image at path. The callback runs
// at most once, on an arbitrary goroutine, and not at all for unsupported or
// unreadable files.
func (m *ThumbnailManager) Load(path string, callback func(image.Image)) {
	if path == "" || !isSupportedImage(strings.ToLower(filepath.Ext(path))) {
		return
	}

	if cached, ok := m.cache.Load(path); ok {
		callback(cached.(image.Image))
		return
	}

	if img := m.loadFromDisk(path); img != nil {
		callback(img)
		return
	}

	m.reqLock.Lock()
	// Keep the newest requests, they belong to the page on screen.
	if len(m.requests) >= thumbnailQueueCap {
		m.requests = m.requests[1:]
	}
	m.requests = append(m.requests, thumbnailRequest{path: path, callback: callback})
	m.reqCond.Signal()
	m.reqLock.Unlock()
}

// Prewarm pulls disk-cached thumbnails into memory in the background.
func (m *ThumbnailManager) Prewarm(paths []string) {
	if m.cacheDir == "" {
		return
	}

	go func() {
		for _, path := range paths {
			if _, ok := m.cache.Load(path); ok {
				continue
			}
			m.loadFromDisk(path)
			time.Sleep(5 * time.Millisecond)
		}
	}()
}

func (m *ThumbnailManager) loadFromDisk(path string) image.Image {
	if m.cacheDir == "" {
		return nil
	}
	key, err := m.generateCacheKey(path)
	if err != nil {
		return nil
	}
	img, err := loadImage(filepath.Join(m.cacheDir, key+".jpg"))
	if err != nil {
		return nil
	}
	m.cache.Store(path, img)
	return img
}

func (m *ThumbnailManager) worker() {
	for {
		m.reqLock.Lock()
		for len(m.requests) == 0 {
			m.reqCond.Wait()
		}
		last := len(m.requests) - 1
		req := m.requests[last]
		m.requests = m.requests[:last]
		m.reqLock.Unlock()

		if cached, ok := m.cache.Load(req.path); ok {
			req.callback(cached.(image.Image))
			continue
		}

		src, err := loadImage(req.path)
		if err != nil {
			continue
		}
		dst := letterbox(src, thumbnailSize)
		if dst == nil {
			continue
		}

		m.cache.Store(req.path, dst)
		m.saveToDisk(req.path, dst)
		req.callback(dst)
	}
}

// letterbox scales src to fit a size×size black square, keeping its aspect.
func letterbox(src image.Image, size int) *image.RGBA {
	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{image.Black}, image.Point{}, draw.Src)

	var scaledW, scaledH int
	ratio := float64(srcW) / float64(srcH)
	if ratio > 1 {
		scaledW = size
		scaledH = int(float64(size) / ratio)
	} else {
		scaledH = size
		scaledW = int(float64(size) * ratio)
	}

	xBase := (size - scaledW) / 2
	yBase := (size - scaledH) / 2
	target := image.Rect(xBase, yBase, xBase+scaledW, yBase+scaledH)
	draw.ApproxBiLinear.Scale(dst, target, src, srcBounds, draw.Over, nil)
	return dst
}

func (m *ThumbnailManager) saveToDisk(path string, img image.Image) {
	if m.cacheDir == "" {
		return
	}
	key, err := m.generateCacheKey(path)
	if err != nil {
		return
	}
	f, err := os.Create(filepath.Join(m.cacheDir, key+".jpg"))
	if err != nil {
		fyne.LogError("could not write thumbnail cache", err)
		return
	}
	defer f.Close()
	_ = jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func isSupportedImage(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png"
}

func (m *ThumbnailManager) generateCacheKey(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(absPath))
	h.Write([]byte(info.ModTime().String()))
	h.Write([]byte(fmt.Sprintf("%d", info.Size())))

	// First 32KB, so a rewrite within the same second still changes the key.
	f, err := os.Open(absPath)
	if err == nil {
		defer f.Close()
		buf := make([]byte, 32*1024)
		n, _ := f.Read(buf)
		h.Write(buf[:n])
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (m *ThumbnailManager) cleanupCache() {
	if m.cacheDir == "" {
		return
	}

	files, err := os.ReadDir(m.cacheDir)
	if err != nil {
		return
	}

	type fileInfo struct {
		name string
		size int64
		time time.Time
	}

	var cachedFiles []fileInfo
	var totalSize int64

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".jpg" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		cachedFiles = append(cachedFiles, fileInfo{
			name: f.Name(),
			size: info.Size(),
			time: info.ModTime(),
		})
		totalSize += info.Size()
	}

	if totalSize <= MaxCacheSize && len(cachedFiles) <= MaxCacheFiles {
		return
	}

	// Oldest first.
	sort.Slice(cachedFiles, func(i, j int) bool {
		return cachedFiles[i].time.Before(cachedFiles[j].time)
	})

	for len(cachedFiles) > 0 {
		if totalSize <= int64(float64(MaxCacheSize)*0.8) && len(cachedFiles) <= int(float64(MaxCacheFiles)*0.8) {
			break
		}
		f := cachedFiles[0]
		_ = os.Remove(filepath.Join(m.cacheDir, f.name))
		totalSize -= f.size
		cachedFiles = cachedFiles[1:]
	}
}
