package shared

import (
	"context"
	"fmt"
	"math"
	"strings"

	"cabwise/shared/cache"
	"cabwise/shared/constant"
	"cabwise/shared/dto"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FirstNonEmpty returns the first candidate that is not blank after trimming.
// The booking widget historically posted the same logical field under several
// names, so lookups are expressed as ordered candidate lists.
func FirstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	return constant.Empty
}

// RoundMoney rounds to two decimal places, the precision used for every
// currency and kilometer figure persisted or returned by the service.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}

func FilterByID(id, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    field,
				Operator: dto.FilterOperatorEq,
				Value:    id,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%v", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, args)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
