package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"url":       "must be a valid URL",
	"hhmm":      "must be a time of day in HH:MM format",
	"ymd_slash": "must be a date in YYYY/MM/DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientEventNotFound                 = "the event could not be found"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCannotParseTime        = "cannot parse time value"
	ErrDevServerProcess          = "failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Authentication messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Mongo DB messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "provided string is not an object id"
	ErrDevDBDocumentNotFound         = "document not found"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data from redis with key: %s"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to acquire redis lock"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"
	ErrDevRabbitMQConsume = "failed to consume message from queue: %s"
	ErrDevRabbitMQAck     = "failed to ack message from queue"

	// Minio messages
	ErrDevMinioFailedToPresignObject = "failed to presign object from bucket: %s"
)
