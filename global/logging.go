package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type rollingFileWriter struct {
	FileDirectory string
	FileName      string
}

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
	}
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLogPath(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

// archivedLogs returns the full paths of the rotated log files, name-1.log and up
func (w rollingFileWriter) archivedLogs() ([]string, error) {
	fileSystem := os.DirFS(w.FileDirectory)

	matches, err := fs.Glob(fileSystem, w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	return lo.Map(matches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	}), nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	mainLogFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	stats, err := mainLogFile.Stat()
	if err != nil {
		mainLogFile.Close()
		return 0, err
	}

	// small enough, just append
	if stats.Size() < maxLogSize {
		defer mainLogFile.Close()
		return mainLogFile.Write(b)
	}

	// close since we are about to rename the main file
	mainLogFile.Close()
	if err := w.rotate(); err != nil {
		return 0, err
	}

	mainLogFile, err = os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate shifts name.log to name-1.log, name-1.log to name-2.log and so on,
// dropping anything past maxLogs
func (w rollingFileWriter) rotate() error {
	logs, err := w.archivedLogs()
	if err != nil {
		return err
	}

	maxIndex := 0
	for _, log := range logs {
		if index := logIndex(w.FileName, log); index > maxIndex {
			maxIndex = index
		}
	}

	// highest index first so renames don't collide
	for index := maxIndex; index >= 1; index-- {
		current := w.indexedLogPath(index)
		if _, err := os.Stat(current); err != nil {
			continue
		}

		if index+1 > maxLogs {
			if err := os.Remove(current); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(current, w.indexedLogPath(index+1)); err != nil {
			return err
		}
	}

	return os.Rename(w.mainLogPath(), w.indexedLogPath(1))
}

// logIndex pulls the n out of name-n.log, -1 for anything malformed
func logIndex(baseFileName string, filePath string) int {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, _ := strings.CutPrefix(fileName, baseFileName+"-")

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return -1
	}

	return index
}
