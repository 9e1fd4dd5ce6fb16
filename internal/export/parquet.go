// Package export writes the order ledger out as parquet, locally or to
// object storage.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aklbites/jamwhopper/internal/cloudwriter"
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// orderRecord is the flat parquet projection of an order. Timestamps travel
// as RFC3339 text, same as the JSON ledger.
type orderRecord struct {
	ID           int64  `parquet:"name=id, type=INT64"`
	CustomerName string `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Location     string `parquet:"name=location, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedAt    string `parquet:"name=created_at, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status       string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type Exporter struct {
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

// NewExporter configures the export target. Without a cloud provider it
// writes local files.
func NewExporter(cfg *models.Config) (*Exporter, error) {
	e := &Exporter{}

	switch cfg.CloudStorage.Provider {
	case "":
	case "s3":
		factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		e.cloudWriterFactory = factory
		e.cloudBucketName = cfg.CloudStorage.BucketName
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
	}

	return e, nil
}

// Export writes all orders to a parquet file at path (or the same object
// path in the configured bucket).
func (e *Exporter) Export(orders []models.Order, path string) error {
	fw, err := e.openFile(path)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(orderRecord), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, order := range orders {
		record := orderRecord{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			Location:     order.Location,
			CreatedAt:    order.CreatedAt.Format(time.RFC3339),
			Status:       order.Status,
		}
		if err := pw.Write(record); err != nil {
			return fmt.Errorf("failed to write order %d: %w", order.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

func (e *Exporter) openFile(path string) (source.ParquetFile, error) {
	if e.cloudWriterFactory != nil {
		cw, err := e.cloudWriterFactory.NewWriter(e.cloudBucketName, path)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return newCloudParquetFile(cw), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// Only sequential writes are supported; cloud objects are not seekable.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
