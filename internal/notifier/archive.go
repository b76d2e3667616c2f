package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"cabwise/infras/s3"

	"github.com/rs/zerolog/log"
)

const archiveDirectory = "bookings"

type archiveNotifier struct {
	store s3.S3
}

// NewArchive mirrors each persisted row as an immutable JSON snapshot in the
// archive bucket.
func NewArchive(store s3.S3) Notifier {
	return &archiveNotifier{store: store}
}

func (n *archiveNotifier) Name() string {
	return "archive"
}

func (n *archiveNotifier) Notify(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking snapshot: %w", err)
	}

	objectName := event.Booking.ID + ".json"

	url, err := n.store.UploadJSON(ctx, archiveDirectory, objectName, payload)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if url != "" {
		log.Info().Str("booking_id", event.Booking.ID).Str("url", url).Msg("booking snapshot archived")
	}

	return nil
}
