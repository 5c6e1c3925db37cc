package assistant

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

type AssistantController struct {
	Log              *zap.Logger
	AssistantUsecase contracts.AssistantUsecase
}

var (
	assistantControllerInstance *AssistantController
	onceAssistantController     sync.Once
)

func NewAssistantController(logger *zap.Logger, assistantUsecase contracts.AssistantUsecase) *AssistantController {
	onceAssistantController.Do(func() {
		instance := &AssistantController{
			Log:              logger,
			AssistantUsecase: assistantUsecase,
		}
		assistantControllerInstance = instance
	})
	return assistantControllerInstance
}

func (ctrl *AssistantController) Chat(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AssistantController.Chat requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AssistantController.Chat called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ChatRequest)
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

	answer, err := ctrl.AssistantUsecase.Answer(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssistantController.Chat error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssistantAnswerSuccessMessage, answer)
}
