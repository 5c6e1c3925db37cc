package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"mycare-service/internal/pkg/dto/responses"
)

// TranscriptionClient is the speech-to-text collaborator.
type TranscriptionClient interface {
	Transcribe(ctx context.Context, audio io.Reader, fileName string) (string, error)
}

type TranscriptionUsecase interface {
	// TranscribeUpload validates, stores, transcribes, and translates an
	// uploaded recording into English and Malay.
	TranscribeUpload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Transcription, error)
	// UploadRecords stores medical record documents and returns the object
	// names to feed the workflow upload step.
	UploadRecords(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type MeetingUsecase interface {
	CreateMeeting(ctx context.Context) (*responses.Meeting, error)
}

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error)
}
