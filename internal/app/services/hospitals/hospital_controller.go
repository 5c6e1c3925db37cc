package hospitals

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

type HospitalController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

var (
	hospitalControllerInstance *HospitalController
	onceHospitalController     sync.Once
)

func NewHospitalController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *HospitalController {
	onceHospitalController.Do(func() {
		instance := &HospitalController{
			Log:                 logger,
			ConsultationUsecase: consultationUsecase,
		}
		hospitalControllerInstance = instance
	})
	return hospitalControllerInstance
}

func (ctrl *HospitalController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("HospitalController.GetRecommendations requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("HospitalController.GetRecommendations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.HospitalRecommendationRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("HospitalController.GetRecommendations error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("HospitalController.GetRecommendations validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	recommendations, err := ctrl.ConsultationUsecase.GetHospitalRecommendations(ctx, request)
	if err != nil {
		ctrl.Log.Error("HospitalController.GetRecommendations error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HospitalController.GetRecommendations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecommendationsKey, len(recommendations)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalRecommendationSuccessMessage, recommendations)
}
