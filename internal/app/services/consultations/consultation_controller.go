package consultations

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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

var (
	consultationControllerInstance *ConsultationController
	onceConsultationController     sync.Once
)

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	onceConsultationController.Do(func() {
		instance := &ConsultationController{
			Log:                 logger,
			ConsultationUsecase: consultationUsecase,
		}
		consultationControllerInstance = instance
	})
	return consultationControllerInstance
}

func (ctrl *ConsultationController) InitiateConsultation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.InitiateConsultation requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsultationController.InitiateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.InitiateConsultationRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ConsultationController.InitiateConsultation error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ConsultationController.InitiateConsultation validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Diagnosis calls an external collaborator; give it more room than the
	// default read path.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	consultation, err := ctrl.ConsultationUsecase.InitiateConsultation(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsultationController.InitiateConsultation error from usecase",
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

	ctrl.Log.Info("ConsultationController.InitiateConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationInitiatedSuccessMessage, consultation)
}

func (ctrl *ConsultationController) GetPatientConsultations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.GetPatientConsultations requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("ConsultationController.GetPatientConsultations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultations, err := ctrl.ConsultationUsecase.GetPatientConsultations(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("ConsultationController.GetPatientConsultations error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationListSuccessMessage, consultations)
}

func (ctrl *ConsultationController) GetDoctorConsultations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.GetDoctorConsultations requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("ConsultationController.GetDoctorConsultations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultations, err := ctrl.ConsultationUsecase.GetDoctorConsultations(ctx, doctorID)
	if err != nil {
		ctrl.Log.Error("ConsultationController.GetDoctorConsultations error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationListSuccessMessage, consultations)
}

func (ctrl *ConsultationController) AssignDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.AssignDoctor requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	ctrl.Log.Info("ConsultationController.AssignDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	request := new(requests.AssignDoctorRequest)
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

	consultation, err := ctrl.ConsultationUsecase.AssignDoctorToConsultation(ctx, consultationID, request.DoctorID)
	if err != nil {
		ctrl.Log.Error("ConsultationController.AssignDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if consultation == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConsultationNotFound(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationAssignedSuccessMessage, consultation)
}

func (ctrl *ConsultationController) CompleteConsultation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.CompleteConsultation requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	ctrl.Log.Info("ConsultationController.CompleteConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	request := new(requests.CompleteConsultationRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ConsultationID = consultationID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.CompleteConsultation(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsultationController.CompleteConsultation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if response == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConsultationNotFound(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationCompletedSuccessMessage, response)
}

func (ctrl *ConsultationController) CancelConsultation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.CancelConsultation requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	ctrl.Log.Info("ConsultationController.CancelConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultation, err := ctrl.ConsultationUsecase.CancelConsultation(ctx, consultationID)
	if err != nil {
		ctrl.Log.Error("ConsultationController.CancelConsultation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if consultation == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConsultationNotFound(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationCancelledSuccessMessage, consultation)
}

func (ctrl *ConsultationController) InitializeMockData(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsultationController.InitializeMockData requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsultationController.InitializeMockData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsultationUsecase.InitializeMockData(ctx); err != nil {
		ctrl.Log.Error("ConsultationController.InitializeMockData error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MockDataInitializedSuccessMessage, nil)
}
