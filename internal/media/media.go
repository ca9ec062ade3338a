// Package media готовит загруженные фото и видео к отправке во внешний сервис анализа.
package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedMedia = errors.New("unsupported file type")
	ErrImageRequired    = errors.New("an image file is required")
	ErrUnseekableMedia  = errors.New("media has no seekable duration")
	ErrSeekTimeout      = errors.New("timed out waiting for video seek")
)

// Frame - один закодированный кадр, готовый к передаче
type Frame struct {
	Data     []byte
	MIMEType string
}

// VideoDecoder абстрагирует декодирование видео: длительность и кадр на момент времени
type VideoDecoder interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
	FrameAt(ctx context.Context, path string, at time.Duration) (image.Image, error)
}

// Preprocessor превращает загруженный файл в набор кадров
type Preprocessor struct {
	decoder     VideoDecoder
	frameCount  int
	seekTimeout time.Duration
	tempDir     string
	logger      *logrus.Logger
}

func NewPreprocessor(decoder VideoDecoder, frameCount int, seekTimeout time.Duration, logger *logrus.Logger) *Preprocessor {
	return &Preprocessor{
		decoder:     decoder,
		frameCount:  frameCount,
		seekTimeout: seekTimeout,
		logger:      logger,
	}
}

// Process возвращает один кадр для изображения или frameCount равномерно
// распределенных кадров для видео.
func (p *Preprocessor) Process(ctx context.Context, r io.Reader, filename string) ([]Frame, error) {
	path, cleanup, err := p.spool(r, filename)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	mimeType, err := detectMIME(path)
	if err != nil {
		return nil, err
	}

	log := p.logger.WithFields(logrus.Fields{
		"component": "media",
		"method":    "Process",
		"mime_type": mimeType,
	})

	switch {
	case strings.HasPrefix(mimeType, "image/"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read spooled image: %w", err)
		}
		log.Debug("Using still image as single frame")
		return []Frame{{Data: data, MIMEType: mimeType}}, nil
	case strings.HasPrefix(mimeType, "video/"):
		frames, err := p.extractVideoFrames(ctx, path)
		if err != nil {
			log.WithError(err).Warn("Failed to extract video frames")
			return nil, err
		}
		log.WithField("frames", len(frames)).Debug("Video frames extracted")
		return frames, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, mimeType)
	}
}

// ProcessImage принимает только изображения и возвращает их без изменений
func (p *Preprocessor) ProcessImage(ctx context.Context, r io.Reader, filename string) (Frame, error) {
	path, cleanup, err := p.spool(r, filename)
	if err != nil {
		return Frame{}, err
	}
	defer cleanup()

	mimeType, err := detectMIME(path)
	if err != nil {
		return Frame{}, err
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return Frame{}, fmt.Errorf("%w: got %s", ErrImageRequired, mimeType)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to read spooled image: %w", err)
	}
	return Frame{Data: data, MIMEType: mimeType}, nil
}

func (p *Preprocessor) extractVideoFrames(ctx context.Context, path string) ([]Frame, error) {
	duration, err := p.decoder.Duration(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read video duration: %w", err)
	}
	if duration <= 0 {
		return nil, ErrUnseekableMedia
	}

	timestamps := SampleTimestamps(duration, p.frameCount)
	frames := make([]Frame, 0, len(timestamps))
	for _, at := range timestamps {
		seekCtx, cancel := context.WithTimeout(ctx, p.seekTimeout)
		img, err := p.decoder.FrameAt(seekCtx, path, at)
		timedOut := errors.Is(seekCtx.Err(), context.DeadlineExceeded)
		cancel()
		if err != nil {
			if timedOut {
				return nil, fmt.Errorf("%w at %s", ErrSeekTimeout, at)
			}
			return nil, fmt.Errorf("failed to decode frame at %s: %w", at, err)
		}

		data, err := EncodeFrame(img)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Data: data, MIMEType: "image/jpeg"})
	}
	return frames, nil
}

// SampleTimestamps возвращает n моментов duration/(n+1)*i для i=1..n
// в строго возрастающем порядке.
func SampleTimestamps(duration time.Duration, n int) []time.Duration {
	if n < 1 {
		return nil
	}
	interval := duration / time.Duration(n+1)
	timestamps := make([]time.Duration, n)
	for i := 1; i <= n; i++ {
		timestamps[i-1] = interval * time.Duration(i)
	}
	return timestamps
}

// spool сохраняет загрузку во временный файл. cleanup удаляет его на любом пути выхода.
func (p *Preprocessor) spool(r io.Reader, filename string) (string, func(), error) {
	f, err := os.CreateTemp(p.tempDir, "infra-vision-*"+filepath.Ext(filename))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	cleanup := func() {
		_ = f.Close()
		if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
			p.logger.WithError(err).WithField("path", f.Name()).Warn("Failed to remove temp media file")
		}
	}

	if _, err := io.Copy(f, r); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to flush upload: %w", err)
	}
	return f.Name(), cleanup, nil
}

func detectMIME(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect media type: %w", err)
	}
	mimeType, _, _ := strings.Cut(mt.String(), ";")
	return strings.TrimSpace(mimeType), nil
}
