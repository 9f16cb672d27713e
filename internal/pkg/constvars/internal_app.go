package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_SUBJECT_KEY        ContextKey = "admin_subject"
)

const (
	REQUEST_ID_PREFIX = "KRB_SVC_"
)

const (
	AppServiceName  = "kurabi-reservation-log"
	AppServiceUsage = "GET/POST ?path=log&reservation_id=XXX&utm_source=...&utm_medium=...&utm_content=..."
)

const (
	MongoCollectionEvents          = "events"
	MongoCollectionReservationLogs = "reservation_logs"
)

const (
	RedisKeyEventList             = "kurabi:events:list"
	RedisKeyReservationWorkerLock = "kurabi:reservation:worker:lock"
)
