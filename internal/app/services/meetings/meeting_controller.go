package meetings

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

type MeetingController struct {
	Log            *zap.Logger
	MeetingUsecase contracts.MeetingUsecase
}

var (
	meetingControllerInstance *MeetingController
	onceMeetingController     sync.Once
)

func NewMeetingController(logger *zap.Logger, meetingUsecase contracts.MeetingUsecase) *MeetingController {
	onceMeetingController.Do(func() {
		instance := &MeetingController{
			Log:            logger,
			MeetingUsecase: meetingUsecase,
		}
		meetingControllerInstance = instance
	})
	return meetingControllerInstance
}

func (ctrl *MeetingController) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MeetingController.CreateMeeting requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MeetingController.CreateMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	meeting, err := ctrl.MeetingUsecase.CreateMeeting(ctx)
	if err != nil {
		ctrl.Log.Error("MeetingController.CreateMeeting error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MeetingCreatedSuccessMessage, meeting)
}
