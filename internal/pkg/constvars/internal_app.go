package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "MYCARE_SVC_"
)

const (
	MongoCollectionPatients       = "patients"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionConsultations  = "consultations"
)

const (
	RedisKeyWorkflowSession = "workflow:session:%s"
	RedisKeyDiagnosisLock   = "workflow:diagnosis-lock:%s"
)

const (
	URLParamPatientID      = "patient_id"
	URLParamDoctorID       = "doctor_id"
	URLParamConsultationID = "consultation_id"
)

const (
	// Default language applied when a request carries no recognized code.
	LanguageEnglish = "en"
	LanguageMalay   = "ms"
	LanguageChinese = "zh"
	LanguageTamil   = "ta"
)

// RecognizedLanguages maps the language codes accepted by the platform to
// their English display names, used in translation prompts.
var RecognizedLanguages = map[string]string{
	LanguageEnglish: "English",
	LanguageMalay:   "Malay (Bahasa Malaysia)",
	LanguageChinese: "Chinese",
	LanguageTamil:   "Tamil",
}

const (
	// Urgency scores at or above this threshold flag the consultation as
	// urgent and publish a priority notification.
	UrgencyThresholdUrgent = 8

	UrgencyLevelMin = 1
	UrgencyLevelMax = 10
)

const (
	DiagnosisFallbackCondition = "Unspecified"
	TreatmentFallbackText      = "None prescribed"
)

// Placeholder profile fields for patients created on first reference and for
// completed-record doctor names while there is no doctor profile store.
const (
	PlaceholderPatientName        = "Demo Patient"
	PlaceholderPatientDateOfBirth = "1990-01-01"
	PlaceholderPatientContact     = "+60123456789"
	PlaceholderDoctorName         = "Dr. Example"
)

const UrgentCaseNotificationMessage = "This case has been flagged as urgent. Prioritizing in the queue."
