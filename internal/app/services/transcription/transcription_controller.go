package transcription

import (
	"context"
	"net/http"
	"sync"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type TranscriptionController struct {
	Log                  *zap.Logger
	TranscriptionUsecase contracts.TranscriptionUsecase
}

var (
	transcriptionControllerInstance *TranscriptionController
	onceTranscriptionController     sync.Once
)

func NewTranscriptionController(logger *zap.Logger, transcriptionUsecase contracts.TranscriptionUsecase) *TranscriptionController {
	onceTranscriptionController.Do(func() {
		instance := &TranscriptionController{
			Log:                  logger,
			TranscriptionUsecase: transcriptionUsecase,
		}
		transcriptionControllerInstance = instance
	})
	return transcriptionControllerInstance
}

func (ctrl *TranscriptionController) UploadAudio(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TranscriptionController.UploadAudio requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TranscriptionController.UploadAudio called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseMultipartForm(constvars.UploadMaxSizeInBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartFieldAudio)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	response, err := ctrl.TranscriptionUsecase.TranscribeUpload(ctx, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("TranscriptionController.UploadAudio error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TranscriptionController.UploadAudio succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AudioTranscribedSuccessMessage, response)
}

func (ctrl *TranscriptionController) UploadRecords(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TranscriptionController.UploadRecords requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TranscriptionController.UploadRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseMultipartForm(constvars.UploadMaxSizeInBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	files := r.MultipartForm.File[constvars.MultipartFieldRecords]
	if len(files) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	references, err := ctrl.TranscriptionUsecase.UploadRecords(ctx, files)
	if err != nil {
		ctrl.Log.Error("TranscriptionController.UploadRecords error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordsUploadedSuccessMessage, map[string]interface{}{
		"fileReferences": references,
	})
}
