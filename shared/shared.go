package shared

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins the prefix and parts with ':'. Empty parts are kept so positions stay stable.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends a digest of the JSON form of each query value to the prefix.
func BuildCacheKeyWithQuery(prefix string, queries ...any) string {
	hash := sha1.New() //nolint:gosec

	for _, query := range queries {
		raw, err := json.Marshal(query)
		if err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

			continue
		}

		hash.Write(raw)
	}

	return BuildCacheKey(prefix, hex.EncodeToString(hash.Sum(nil)))
}
