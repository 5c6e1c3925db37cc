package constvars

const (
	// Upload size cap applied to both audio and medical record uploads.
	UploadMaxSizeInMB    = 10
	UploadMaxSizeInBytes = UploadMaxSizeInMB * 1024 * 1024

	MultipartFieldAudio    = "audio"
	MultipartFieldRecords  = "files"
	MultipartFieldLanguage = "language"
)

// AllowedAudioMIMETypes is the accepted set for the audio upload endpoint.
var AllowedAudioMIMETypes = map[string]bool{
	"audio/webm": true,
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/mp4":  true,
	"audio/wav":  true,
	"audio/ogg":  true,
}

// AllowedRecordMIMETypes is the accepted set for medical record uploads.
var AllowedRecordMIMETypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/xml": true,
	"text/xml":        true,
	"application/dicom": true,
}
