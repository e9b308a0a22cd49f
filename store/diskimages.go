package store

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DiskImageStore saves product images under a local directory that the
// server exposes statically, mirroring how the hosted storage bucket
// resolves uploads to public URLs.
type DiskImageStore struct {
	dir        string // filesystem directory images are written to
	publicPath string // URL prefix the directory is served under
}

func NewDiskImageStore(dir, publicPath string) *DiskImageStore {
	return &DiskImageStore{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}
}

// Upload stores image bytes under a timestamp-based name so concurrent
// uploads never collide, and returns the public URL. Non-image content
// is rejected before anything touches disk.
func (s *DiskImageStore) Upload(data []byte, originalFilename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrValidation)
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: unsupported content type %s", ErrValidation, contentType)
	}

	ext := filepath.Ext(originalFilename)
	filename := fmt.Sprintf("product_%d%s", time.Now().UnixNano(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return s.publicPath + "/" + filename, nil
}

// Remove deletes the binary behind a URL previously returned by Upload.
// Callers treat failures as best-effort cleanup and only log them.
func (s *DiskImageStore) Remove(imageURL string) error {
	filename := path.Base(imageURL)
	if filename == "." || filename == "/" || filename == "" {
		return fmt.Errorf("no filename in image URL %q", imageURL)
	}
	return os.Remove(filepath.Join(s.dir, filename))
}

// StartDailyBackup copies the uploads directory into backupDir once a
// day at the given hour and prunes backups older than retention. Runs
// until the process exits.
func (s *DiskImageStore) StartDailyBackup(backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next image backup scheduled at %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		dest := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := copyDir(s.dir, dest); err != nil {
			log.Printf("❌ Image backup failed: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", dest)
		}
		pruneOldBackups(backupDir, retention)
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = copyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func pruneOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folder)
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(folder); err != nil {
			log.Printf("❌ Failed to remove old backup %s: %v", folder, err)
		} else {
			log.Printf("🗑️ Removed old backup: %s", folder)
		}
	}
}
