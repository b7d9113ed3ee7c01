package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"edupath_backend/internal/config"
	"edupath_backend/internal/model"
	"edupath_backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ArchiveService writes a JSON report to object storage whenever a path
// reaches full completion. Archival is best-effort and never blocks the
// mutation that triggered it.
type ArchiveService struct {
	client *minio.Client
	bucket string
}

func NewArchiveService(cfg *config.StorageConfig) (*ArchiveService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &ArchiveService{client: client, bucket: cfg.MinioBucket}, nil
}

func (s *ArchiveService) ArchivePathReport(ctx context.Context, path *model.LearningPath) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	report := struct {
		Path        *model.LearningPath      `json:"path"`
		Metrics     model.PerformanceMetrics `json:"metrics"`
		GeneratedAt string                   `json:"generatedAt"`
	}{
		Path:        path,
		Metrics:     path.PerformanceMetrics,
		GeneratedAt: path.LastAccessed.Format("2006-01-02T15:04:05Z07:00"),
	}

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	objectName := fmt.Sprintf("reports/%s/%s.json", path.LearnerID, path.ID)
	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return err
	}

	logger.Log.Info("path report archived",
		zap.String("pathId", path.ID),
		zap.String("object", objectName))
	return nil
}
