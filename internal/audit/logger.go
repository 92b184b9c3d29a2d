package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// Logger grava eventos na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		SessionID: ev.SessionID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metadataJSON(ev.Metadata),
	}
	return l.db.WithContext(ctx).Create(&row).Error
}

// ZapSink é usado quando não há banco configurado: o evento vira uma linha
// de log estruturado.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) Log(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.String("session_id", ev.SessionID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.EntityID != nil {
		fields = append(fields, zap.Int64("entity_id", *ev.EntityID))
	}
	if meta := metadataJSON(ev.Metadata); meta != "" {
		fields = append(fields, zap.String("metadata", meta))
	}
	s.log.Info("audit", fields...)
	return nil
}

func metadataJSON(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
