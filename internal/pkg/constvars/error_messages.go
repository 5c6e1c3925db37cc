package constvars

// Validation messages for request DTOs, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of: %s",
	"language_code": "must be a recognized language code",
	"urgency_level": "must be a number between 1 and 10",
}

// TagsWithParams marks validator tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSessionEnded                  = "your session ended, please start again"
	ErrClientDiagnosisUnavailable          = "we could not analyze your symptoms right now, please try again"
	ErrClientConsultationNotFound          = "consultation not found"
	ErrClientDiagnosisInFlight             = "a diagnosis is already being processed for this session"
	ErrClientWorkflowInvalidStep           = "this action is not available at the current step"
	ErrClientReassignNotAllowed            = "this consultation already has a doctor assigned"
	ErrClientCompleteNotAllowed            = "this consultation cannot be completed yet"
	ErrClientCancelNotAllowed              = "this consultation can no longer be cancelled"
	ErrClientUploadInvalidType             = "%s is not a supported file type"
	ErrClientUploadTooLarge                = "%s exceeds the %dMB limit"
	ErrClientSymptomsRequired              = "please describe your symptoms first"
	ErrClientTranscriptionFailed           = "we could not transcribe your recording, please try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "failed to process request"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevAuthTokenMissing         = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevInvalidAPIKey            = "invalid API key"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not an object id"

	// Redis
	ErrDevRedisGetNoData   = "no data found in redis for key %s"
	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data to redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisAcquireLock = "failed to acquire redis lock"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// Collaborators
	ErrDevOpenAIRequestFailed      = "openai chat completion request failed"
	ErrDevOpenAIAPIError           = "openai API returned an error: %s"
	ErrDevOpenAIMalformedResponse  = "openai returned 2xx but the payload violates the contract"
	ErrDevTranslationFailed        = "translation request failed"
	ErrDevTranscriptionFailed      = "audio transcription request failed"
	ErrDevHospitalResolverFailed   = "hospital recommendation backend failed"

	// Consultation domain
	ErrDevConsultationNotFound        = "consultation does not exist"
	ErrDevConsultationNotScheduled    = "consultation status is not scheduled"
	ErrDevConsultationNotInProgress   = "consultation status is not in_progress"
	ErrDevConsultationAlreadyCompleted = "consultation is already completed"
	ErrDevWorkflowSessionNotFound     = "workflow session does not exist"
	ErrDevWorkflowInvalidTransition   = "transition not allowed from current workflow state"
	ErrDevWorkflowDiagnosisInFlight   = "diagnosis request already in flight for session"
	ErrDevUploadValidationFailed      = "upload validation failed"
)

const ResponseUnknown = "unknown"
