package routers

import (
	"mycare-service/internal/app/services/meetings"
	"mycare-service/internal/app/services/transcription"

	"github.com/go-chi/chi/v5"
)

func attachMediaRoutes(router chi.Router, transcriptionController *transcription.TranscriptionController, meetingController *meetings.MeetingController) {
	router.Post("/upload-audio", transcriptionController.UploadAudio)
	router.Post("/upload-records", transcriptionController.UploadRecords)
	router.Post("/create-zoom-meeting", meetingController.CreateMeeting)
}
