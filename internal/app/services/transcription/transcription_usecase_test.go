package transcription

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTranscriptionClient struct {
	transcript string
	err        error
	calls      int
}

func (f *fakeTranscriptionClient) Transcribe(ctx context.Context, audio io.Reader, fileName string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

type fakeTranslator struct {
	byTarget map[string]string
}

func (f *fakeTranslator) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	return f.byTarget[targetLanguage], nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects []string
	err     error
}

func (f *fakeStorage) UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects = append(f.objects, objectName)
	return objectName, nil
}

// memoryFile implements multipart.File over a strings.Reader.
type memoryFile struct {
	*strings.Reader
}

func (memoryFile) Close() error { return nil }

func newFileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			constvars.HeaderContentType: []string{contentType},
		},
	}
}

func newTranscriptionFixture() (*transcriptionUsecase, *fakeTranscriptionClient, *fakeStorage) {
	client := &fakeTranscriptionClient{transcript: "sakit perut sejak semalam"}
	storage := &fakeStorage{}
	usecase := &transcriptionUsecase{
		TranscriptionClient: client,
		Translator: &fakeTranslator{byTarget: map[string]string{
			constvars.LanguageEnglish: "stomach pain since yesterday",
			constvars.LanguageMalay:   "sakit perut sejak semalam",
		}},
		Storage: storage,
		Log:     zap.NewNop(),
	}
	return usecase, client, storage
}

func TestTranscribeUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path archives and translates", func(t *testing.T) {
		usecase, _, storage := newTranscriptionFixture()

		file := memoryFile{strings.NewReader("fake audio bytes")}
		header := newFileHeader("symptoms.webm", "audio/webm", 16)

		result, err := usecase.TranscribeUpload(ctx, file, header)
		require.NoError(t, err)

		assert.Equal(t, "sakit perut sejak semalam", result.Transcript)
		assert.Equal(t, "stomach pain since yesterday", result.English)
		assert.Equal(t, "sakit perut sejak semalam", result.Malay)

		require.Len(t, storage.objects, 1)
		assert.True(t, strings.HasPrefix(storage.objects[0], "audio_"))
		assert.True(t, strings.HasSuffix(storage.objects[0], "symptoms.webm"))
	})

	t.Run("unsupported MIME type rejected before any upload", func(t *testing.T) {
		usecase, client, storage := newTranscriptionFixture()

		file := memoryFile{strings.NewReader("plain text")}
		header := newFileHeader("notes.txt", "text/plain", 10)

		_, err := usecase.TranscribeUpload(ctx, file, header)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "notes.txt")
		assert.Contains(t, customErr.ClientMessage, "not a supported file type")

		assert.Empty(t, storage.objects)
		assert.Zero(t, client.calls)
	})

	t.Run("oversized file rejected with the size limit in the message", func(t *testing.T) {
		usecase, client, storage := newTranscriptionFixture()

		file := memoryFile{strings.NewReader("fake audio bytes")}
		header := newFileHeader("long-recording.webm", "audio/webm", constvars.UploadMaxSizeInBytes+1)

		_, err := usecase.TranscribeUpload(ctx, file, header)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "10MB")

		assert.Empty(t, storage.objects)
		assert.Zero(t, client.calls)
	})

	t.Run("transcription failure surfaces after the upload", func(t *testing.T) {
		usecase, client, storage := newTranscriptionFixture()
		client.err = errors.New("whisper down")

		file := memoryFile{strings.NewReader("fake audio bytes")}
		header := newFileHeader("symptoms.webm", "audio/webm", 16)

		_, err := usecase.TranscribeUpload(ctx, file, header)
		require.Error(t, err)
		assert.Len(t, storage.objects, 1)
	})
}

func TestUploadRecordsValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("one bad file fails the whole batch before storing", func(t *testing.T) {
		usecase, _, storage := newTranscriptionFixture()

		files := []*multipart.FileHeader{
			newFileHeader("report.pdf", "application/pdf", 2048),
			newFileHeader("malware.exe", "application/octet-stream", 2048),
		}

		_, err := usecase.UploadRecords(ctx, files)
		require.Error(t, err)
		assert.Empty(t, storage.objects)
	})

	t.Run("oversized record rejected", func(t *testing.T) {
		usecase, _, storage := newTranscriptionFixture()

		files := []*multipart.FileHeader{
			newFileHeader("scan.png", "image/png", constvars.UploadMaxSizeInBytes+1),
		}

		_, err := usecase.UploadRecords(ctx, files)
		require.Error(t, err)
		assert.Empty(t, storage.objects)
	})
}
