package routes

import (
	"context"
	"errors"
	"fmt"

	"laporan_zakat/internal/adapter/persistence/memory"
	"laporan_zakat/internal/adapter/persistence/repository"
	"laporan_zakat/internal/infrastructure/config"
	"laporan_zakat/internal/infrastructure/database"
	"laporan_zakat/internal/infrastructure/oracle"
	"laporan_zakat/internal/infrastructure/storage"
	"laporan_zakat/internal/usecase/interfaces"

	"go.uber.org/zap"
)

func newRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IReportRepository, interfaces.IOperatorRepository, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memory.NewReportMemoryRepository(), memory.NewOperatorMemoryRepository(), nil
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		logger.Info("using dynamodb store",
			zap.String("reports_table", cfg.ReportsTable),
			zap.String("operators_table", cfg.OperatorsTable),
			zap.String("counters_table", cfg.CountersTable),
		)
		return repository.NewReportDynamoRepository(ddb, cfg.ReportsTable, cfg.CountersTable),
			repository.NewOperatorDynamoRepository(ddb, cfg.OperatorsTable), nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

// newAttachmentStorage returns a nil storage when uploads are only recorded by name.
func newAttachmentStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IAttachmentStorage, error) {
	switch cfg.AttachmentStorage {
	case config.AttachmentStorageNone, "":
		return nil, nil
	case config.AttachmentStorageLocal:
		logger.Info("storing attachments on disk", zap.String("dir", cfg.AttachmentDir))
		return storage.NewLocalStorage(cfg.AttachmentDir), nil
	case config.AttachmentStorageS3:
		client, err := database.ConnectS3(ctx, cfg.S3Endpoint)
		if err != nil {
			return nil, fmt.Errorf("connect s3: %w", err)
		}
		return storage.NewS3Storage(client, cfg.S3Bucket, logger), nil
	default:
		return nil, fmt.Errorf("unknown ATTACHMENT_STORAGE %q", cfg.AttachmentStorage)
	}
}

// newOracle falls back to mock mode when no API key is configured.
func newOracle(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IIntentOracle, error) {
	o, err := oracle.NewGeminiOracle(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.OracleMock, logger)
	if errors.Is(err, oracle.ErrMissingAPIKey) {
		logger.Warn("GEMINI_API_KEY is not set, running the intent oracle in mock mode")
		return oracle.NewGeminiOracle(ctx, "", cfg.GeminiModel, true, logger)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
