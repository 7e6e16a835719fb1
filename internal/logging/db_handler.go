package logging

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskmanager/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
)

// DBHandler is an slog.Handler that persists ERROR+ records to the
// system_logs table. Records flow through a buffered channel into a single
// writer goroutine; when the channel is full the record is dropped rather
// than blocking the request path.
type DBHandler struct {
	db      *gorm.DB
	records chan models.SystemLog
	quit    chan struct{}
	stopped chan struct{}
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	h := &DBHandler{
		db:      db,
		records: make(chan models.SystemLog, 256),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *DBHandler) run() {
	defer close(h.stopped)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]models.SystemLog, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		// stdlib log here: going through slog would re-enter this handler
		if err := h.db.CreateInBatches(batch, batchSize).Error; err != nil {
			log.Printf("failed to flush %d system logs: %v", len(batch), err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-h.records:
			batch = append(batch, entry)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.quit:
			for {
				select {
				case entry := <-h.records:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Stop drains pending records and blocks until the writer exits.
func (h *DBHandler) Stop() {
	close(h.quit)
	<-h.stopped
}

func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]any)
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "userid":
			entry.Userid = a.Value.String()
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if raw, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(raw)
		}
	}

	select {
	case h.records <- entry:
	default:
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }

func (h *DBHandler) WithGroup(name string) slog.Handler { return h }
