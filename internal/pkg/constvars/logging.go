package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingPatientIDKey         = "patient_id"
	LoggingDoctorIDKey          = "doctor_id"
	LoggingConsultationIDKey    = "consultation_id"
	LoggingSessionIDKey         = "session_id"
	LoggingUrgencyLevelKey      = "urgency_level"
	LoggingConditionKey         = "condition"
	LoggingLanguageKey          = "language"
	LoggingRecommendationsKey   = "recommendation_count"
	LoggingConsultationCountKey = "consultation_count"
	LoggingObjectNameKey        = "object_name"
	LoggingQueueNameKey         = "queue_name"
)
