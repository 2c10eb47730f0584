package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const mb = 1000000

// rollingFileWriter appends to name.log until it grows past maxSize, then shifts it
// to name-1.log (name-1.log to name-2.log, ...) and starts a fresh file.
// At most maxFiles files, the live one included, are kept.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize  int64
	maxFiles int

	mu *sync.Mutex
}

func NewRollingFileWriter(fileDir string, fileName string, maxSizeMB float64, maxFiles int) (rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return rollingFileWriter{}, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return rollingFileWriter{}, err
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       int64(maxSizeMB * mb),
		maxFiles:      max(1, maxFiles),
		mu:            &sync.Mutex{},
	}, nil
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLogPath(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if stats, err := os.Stat(w.mainLogPath()); err == nil && stats.Size()+int64(len(b)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

func (w rollingFileWriter) rotate() error {
	indices, err := w.archivedIndices()
	if err != nil {
		return err
	}

	// highest first so renames never collide
	slices.Sort(indices)
	slices.Reverse(indices)

	for _, index := range indices {
		if index+1 >= w.maxFiles {
			if err := os.Remove(w.indexedLogPath(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.indexedLogPath(index), w.indexedLogPath(index+1)); err != nil {
			return err
		}
	}

	if w.maxFiles == 1 {
		return os.Remove(w.mainLogPath())
	}

	return os.Rename(w.mainLogPath(), w.indexedLogPath(1))
}

// archivedIndices lists the n of every name-n.log file, ignoring anything that doesn't parse
func (w rollingFileWriter) archivedIndices() ([]int, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(logMatches, func(fileName string, _ int) (int, bool) {
		index, err := getLogIndex(w.FileName, fileName)
		return index, err == nil && index > 0
	}), nil
}

func getLogIndex(baseFileName string, filePath string) (int, error) {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, _ := strings.CutPrefix(fileName, baseFileName+"-")

	return strconv.Atoi(indexStr)
}
