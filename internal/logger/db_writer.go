package logger

import (
	"context"
	"fmt"
	"time"

	"go-orderboard/internal/config"
	"go-orderboard/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Caller  string
}

// LogRecord is the document stored in the logs collection.
type LogRecord struct {
	App       string    `bson:"app"`
	Level     string    `bson:"level"`
	Message   string    `bson:"message"`
	Caller    string    `bson:"caller,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000),
		appId:   cfg.AppId,
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop rather than block the request path
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		record := LogRecord{
			App:       w.appId,
			Level:     entry.Level.String(),
			Message:   entry.Message,
			Caller:    entry.Caller,
			CreatedAt: time.Now().UTC(),
		}

		// Insert errors are ignored so logging can never take the app down
		w.db.Collection("logs").InsertOne(context.Background(), record)
	}
}
