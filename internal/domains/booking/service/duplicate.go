package service

import (
	"context"
	"strings"
	"time"

	"cabwise/internal/domains/booking/model"
	"cabwise/shared"
	"cabwise/shared/constant"
	"cabwise/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	fingerprintKeyPrefix = "booking:fingerprint"

	// duplicateWindow matches the fingerprint cache TTL: a resubmission of
	// the same booking inside it is absorbed silently.
	duplicateWindow       = 2 * time.Minute
	duplicateCacheSeconds = 120

	recentScanLimit = 50
)

// Fingerprint identifies a booking by its customer-visible core fields,
// lowercased and trimmed.
func Fingerprint(b model.Booking) string {
	parts := []string{
		b.Email,
		b.Name,
		b.Phone,
		b.BookingType,
		b.Vehicle,
		b.Pickup,
		b.Drop,
		b.TravelDate,
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(part))
	}

	return strings.Join(parts, "|")
}

// isDuplicate applies the two-layer guard: a write-once cache entry keyed by
// fingerprint, then a scan of the most recent rows. Guard failures never
// block a booking.
func (s *serviceImpl) isDuplicate(ctx context.Context, booking model.Booking) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.isDuplicate")
	defer scope.End()

	fingerprint := Fingerprint(booking)
	cacheKey := shared.BuildCacheKey(fingerprintKeyPrefix, fingerprint)

	acquired, err := s.cache.AcquireOnce(ctx, cacheKey, duplicateCacheSeconds)
	if err != nil {
		log.Warn().Err(err).Msg("fingerprint cache unavailable, continuing with row scan")
	} else if !acquired {
		log.Info().Str("booking_id", booking.ID).Msg("duplicate booking detected (cache)")

		return true
	}

	recent, err := s.repo.Recent(ctx, recentScanLimit)
	if err != nil {
		// Fail open: a broken scan must not block writes.
		log.Warn().Err(err).Msg("recent rows scan failed, allowing booking")

		return false
	}

	now := timezone.Now()

	for _, row := range recent {
		if Fingerprint(row) != fingerprint {
			continue
		}

		if row.Timestamp.IsZero() {
			log.Info().Str("booking_id", booking.ID).Msg("duplicate booking detected (recent rows, no timestamp)")

			return true
		}

		age := now.Sub(row.Timestamp)
		if age >= 0 && age <= duplicateWindow {
			log.Info().Str("booking_id", booking.ID).Msg("duplicate booking detected (recent rows)")

			return true
		}
	}

	return false
}
