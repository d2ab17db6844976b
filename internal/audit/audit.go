package audit

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"hotelops/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// Recorder persists audit entries best-effort: a failed write is logged and
// never fails the business operation that produced it.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) Record(ctx context.Context, hotelID, userID int64, action string, metadata any) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("audit metadata marshal failed")
		raw = []byte("{}")
	}

	entry := &domain.AuditLog{
		HotelID:  hotelID,
		UserID:   userID,
		Action:   action,
		Metadata: string(raw),
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", action).Int64("hotel_id", hotelID).Msg("audit write failed")
	}
}
