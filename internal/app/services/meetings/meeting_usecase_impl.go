package meetings

import (
	"context"
	"fmt"
	"sync"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/dto/responses"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const meetingIDLength = 8

// meetingUsecase hands out mock video meeting links. No upstream video
// provider is called; the ids are random and the URLs follow the provider's
// public link shape.
type meetingUsecase struct {
	Log *zap.Logger
}

var (
	meetingUsecaseInstance contracts.MeetingUsecase
	onceMeetingUsecase     sync.Once
)

func NewMeetingUsecase(logger *zap.Logger) contracts.MeetingUsecase {
	onceMeetingUsecase.Do(func() {
		meetingUsecaseInstance = &meetingUsecase{Log: logger}
	})
	return meetingUsecaseInstance
}

func (uc *meetingUsecase) CreateMeeting(ctx context.Context) (*responses.Meeting, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	meetingID, err := utils.GenerateMeetingID(meetingIDLength)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	uc.Log.Info("meetingUsecase.CreateMeeting succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return &responses.Meeting{
		JoinURL:  fmt.Sprintf("https://zoom.us/j/%s", meetingID),
		StartURL: fmt.Sprintf("https://zoom.us/s/%s", meetingID),
	}, nil
}
