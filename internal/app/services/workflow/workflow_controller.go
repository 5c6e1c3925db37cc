package workflow

import (
	"context"
	"net/http"
	"sync"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/requests"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

var (
	workflowControllerInstance *WorkflowController
	onceWorkflowController     sync.Once
)

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *WorkflowController {
	onceWorkflowController.Do(func() {
		instance := &WorkflowController{
			Log:             logger,
			WorkflowUsecase: workflowUsecase,
		}
		workflowControllerInstance = instance
	})
	return workflowControllerInstance
}

func (ctrl *WorkflowController) Start(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkflowController.Start requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkflowController.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StartWorkflowRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.Start(ctx, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.Start error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WorkflowStartedSuccessMessage, response)
}

func (ctrl *WorkflowController) CompleteUpload(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "CompleteUpload")
	if !valid {
		return
	}

	request := new(requests.CompleteUploadRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.CompleteUpload(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.CompleteUpload error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) SkipUpload(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "SkipUpload")
	if !valid {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.SkipUpload(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("WorkflowController.SkipUpload error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) SubmitSymptoms(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "SubmitSymptoms")
	if !valid {
		return
	}

	request := new(requests.SubmitSymptomsRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.SubmitSymptoms(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.SubmitSymptoms error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) TranscribeSubmit(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "TranscribeSubmit")
	if !valid {
		return
	}

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

	language := r.FormValue(constvars.MultipartFieldLanguage)

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.TranscribeSubmit(ctx, sessionID, file, fileHeader, language)
	if err != nil {
		ctrl.Log.Error("WorkflowController.TranscribeSubmit error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) RequestDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "RequestDoctor")
	if !valid {
		return
	}

	request := new(requests.RequestDoctorRequest)
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.RequestDoctor(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.RequestDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) StartNew(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "StartNew")
	if !valid {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.StartNew(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("WorkflowController.StartNew error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowUpdatedSuccessMessage, response)
}

func (ctrl *WorkflowController) Exit(w http.ResponseWriter, r *http.Request) {
	requestID, sessionID, valid := ctrl.requestContext(w, r, "Exit")
	if !valid {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.WorkflowUsecase.Exit(ctx, sessionID); err != nil {
		ctrl.Log.Error("WorkflowController.Exit error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowExitedSuccessMessage, nil)
}

// requestContext pulls the request id and authenticated workflow session id
// out of the request context, writing the error response itself when either
// is missing.
func (ctrl *WorkflowController) requestContext(w http.ResponseWriter, r *http.Request, operation string) (requestID, sessionID string, valid bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkflowController." + operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}

	sessionID, ok = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionID == "" {
		ctrl.Log.Error("WorkflowController."+operation+" sessionID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return "", "", false
	}

	ctrl.Log.Info("WorkflowController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return requestID, sessionID, true
}
