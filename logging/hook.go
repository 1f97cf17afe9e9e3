package logging

import (
	"github.com/sirupsen/logrus"
	"io"
	"sync"
)

type levelHook struct {
	lock      sync.Mutex
	writer    io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

func (h *levelHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= h.level {
			levels = append(levels, level)
		}
	}

	return levels
}

func (h *levelHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	_, err = h.writer.Write(line)
	return err
}
