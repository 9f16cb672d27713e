package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingQueueNameKey     = "queue_name"
	LoggingRedisKey         = "redis_key"
	LoggingEventCountKey    = "event_count"
	LoggingSegmentCountKey  = "segment_count"
	LoggingReservationIDKey = "reservation_id"
	LoggingMessageIDKey     = "message_id"
	LoggingFailedCountKey   = "failed_count"
	LoggingEventIDKey       = "event_id"
	LoggingObjectNameKey    = "object_name"

	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
