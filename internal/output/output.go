// Package output routes serialized promo events to a destination: console,
// Kafka, or partitioned JSON files.
package output

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends events as JSON lines under
// basePath/folder/topic/year=YYYY/month=MM/day=DD/data.json.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return fmt.Errorf("invalid timestamp")
	}

	eventTime := time.Unix(int64(timestamp), 0)
	year, month, day := eventTime.Date()

	partitionPath := fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day)
	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath)

	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	file, ok := j.files[fileKey]
	if !ok {
		var err error
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Determine picks the destination from config: Kafka when enabled, JSON
// files when an output path is set, console otherwise.
func Determine(cfg *models.Config) Destination {
	if cfg.KafkaEnabled {
		producer, err := NewSaramaProducer(cfg)
		if err != nil {
			log.Fatalf("Failed to create Sarama producer: %v", err)
		}
		return producer
	}
	if cfg.OutputPath != "" {
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder)
	}
	return &ConsoleOutput{}
}
