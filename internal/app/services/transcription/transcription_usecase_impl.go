package transcription

import (
	"context"
	"mime/multipart"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/responses"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type transcriptionUsecase struct {
	TranscriptionClient contracts.TranscriptionClient
	Translator          contracts.Translator
	Storage             contracts.Storage
	Log                 *zap.Logger
}

var (
	transcriptionUsecaseInstance contracts.TranscriptionUsecase
	onceTranscriptionUsecase     sync.Once
)

func NewTranscriptionUsecase(
	transcriptionClient contracts.TranscriptionClient,
	translator contracts.Translator,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.TranscriptionUsecase {
	onceTranscriptionUsecase.Do(func() {
		instance := &transcriptionUsecase{
			TranscriptionClient: transcriptionClient,
			Translator:          translator,
			Storage:             storage,
			Log:                 logger,
		}
		transcriptionUsecaseInstance = instance
	})
	return transcriptionUsecaseInstance
}

// TranscribeUpload validates the recording, archives it, then produces the
// transcript plus English and Malay renderings. Validation happens before any
// byte leaves this process.
func (uc *transcriptionUsecase) TranscribeUpload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Transcription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.Log.Info("transcriptionUsecase.TranscribeUpload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, fileHeader.Filename),
	)

	if err := validateUpload(fileHeader, constvars.AllowedAudioMIMETypes); err != nil {
		return nil, err
	}

	objectName := utils.GenerateObjectName("audio", fileHeader.Filename)
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if _, err := uc.Storage.UploadFile(ctx, file, objectName, contentType, fileHeader.Size); err != nil {
		return nil, err
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, exceptions.ErrTranscriptionUnavailable(err)
	}

	transcript, err := uc.TranscriptionClient.Transcribe(ctx, file, fileHeader.Filename)
	if err != nil {
		uc.Log.Error("transcriptionUsecase.TranscribeUpload transcription failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	english, err := uc.Translator.Translate(ctx, transcript, "", constvars.LanguageEnglish)
	if err != nil {
		return nil, err
	}
	malay, err := uc.Translator.Translate(ctx, transcript, "", constvars.LanguageMalay)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("transcriptionUsecase.TranscribeUpload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.Transcription{
		Transcript: transcript,
		English:    english,
		Malay:      malay,
	}, nil
}

func (uc *transcriptionUsecase) UploadRecords(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.Log.Info("transcriptionUsecase.UploadRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("file_count", len(files)),
	)

	// All files are validated before any of them is stored, so a bad file in
	// the batch does not leave partial uploads behind.
	for _, fileHeader := range files {
		if err := validateUpload(fileHeader, constvars.AllowedRecordMIMETypes); err != nil {
			return nil, err
		}
	}

	references := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}

		objectName := utils.GenerateObjectName("record", fileHeader.Filename)
		contentType := fileHeader.Header.Get(constvars.HeaderContentType)
		_, err = uc.Storage.UploadFile(ctx, file, objectName, contentType, fileHeader.Size)
		file.Close()
		if err != nil {
			return nil, err
		}
		references = append(references, objectName)
	}

	return references, nil
}

func validateUpload(fileHeader *multipart.FileHeader, allowedTypes map[string]bool) error {
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if !allowedTypes[contentType] {
		return exceptions.ErrUploadInvalidType(fileHeader.Filename)
	}
	if fileHeader.Size > constvars.UploadMaxSizeInBytes {
		return exceptions.ErrUploadTooLarge(fileHeader.Filename)
	}
	return nil
}
